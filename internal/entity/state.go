// internal/entity/state.go
package entity

import (
	"go-wyrm-hunt/internal/component"
	"go-wyrm-hunt/internal/types"
)

// VolcanicState — всё живое состояние вулканической зоны.
type VolcanicState struct {
	Bounds     types.Rect
	Enemies    []*component.Magmawyrm
	Trails     []*component.LavaTrail
	Geysers    []*component.Geyser
	Egg        *component.VolcanicEgg
	BoostTimer float64
}

// AliveEnemies считает живых врагов зоны.
func (z *VolcanicState) AliveEnemies() int {
	n := 0
	for _, e := range z.Enemies {
		if e.Alive {
			n++
		}
	}
	return n
}

// GlacialState — состояние ледниковой зоны. Плиты накапливаются и не
// исчезают до конца уровня.
type GlacialState struct {
	Bounds  types.Rect
	Enemies []*component.Frostwyrm
	Tiles   []component.FrozenTile
	Bullets []*component.IceBullet
	Egg     *component.GlacialEgg
}

func (z *GlacialState) AliveEnemies() int {
	n := 0
	for _, e := range z.Enemies {
		if e.Alive {
			n++
		}
	}
	return n
}

// CanopyState — состояние зоны крон. TeleportRange общий на зону и
// раздаётся каждому живому врагу.
type CanopyState struct {
	Bounds        types.Rect
	Enemies       []*component.Thornwyrm
	Obstacles     []*component.Foliage
	Egg           *component.CanopyEgg
	SpawnTimer    float64 // тикает только пока игрок вне зоны
	TeleportTimer float64
	TeleportRange float64
	WaveTimer     float64
	WaveCount     int
}

func (z *CanopyState) AliveEnemies() int {
	n := 0
	for _, e := range z.Enemies {
		if e.Alive {
			n++
		}
	}
	return n
}

// ReefState — состояние рифовой зоны. WaveTime — общая фаза стаи,
// Tier — текущая сложность формации (0..4).
type ReefState struct {
	Bounds     types.Rect
	Enemies    []*component.Tidewyrm
	Bouncers   []*component.Bouncer
	Egg        *component.ReefEgg
	SpawnTimer float64
	TierTimer  float64
	Tier       int
	WaveTime   float64
	Spawned    int // всего заспавнено, задаёт фазовый сдвиг новичка
}

func (z *ReefState) AliveEnemies() int {
	n := 0
	for _, e := range z.Enemies {
		if e.Alive {
			n++
		}
	}
	return n
}

// State — одна живая запись симуляции на уровень. Целиком выбрасывается
// и строится заново в Init(level); между уровнями ничего не выживает.
type State struct {
	Level           int
	SpeedMultiplier float64
	ElapsedTime     float64

	// Память для детекции фронтов.
	PlayerMoved      bool
	HasPrevPlayerPos bool
	PrevPlayerX      float64
	PrevPlayerY      float64
	PrevAbilityCD    float64

	Volcanic VolcanicState
	Glacial  GlacialState
	Canopy   CanopyState
	Reef     ReefState

	SafeZone component.SafeZone

	Cleared bool // все четыре яйца собраны

	// Фазы чисто визуальных осцилляций, на геймплей не влияют.
	VolcanicGlowPhase float64
	CanopySwayPhase   float64
	ReefShimmerPhase  float64
}

// EggsCollected считает собранные яйца.
func (s *State) EggsCollected() int {
	n := 0
	if s.Volcanic.Egg != nil && s.Volcanic.Egg.Collected {
		n++
	}
	if s.Glacial.Egg != nil && s.Glacial.Egg.Collected {
		n++
	}
	if s.Canopy.Egg != nil && s.Canopy.Egg.Collected {
		n++
	}
	if s.Reef.Egg != nil && s.Reef.Egg.Collected {
		n++
	}
	return n
}

// UnfreezeAll снимает стартовую заморозку со всех врагов. Одноразово:
// обратно флаг не ставится.
func (s *State) UnfreezeAll() {
	for _, e := range s.Volcanic.Enemies {
		e.Frozen = false
	}
	for _, e := range s.Glacial.Enemies {
		e.Frozen = false
	}
	for _, e := range s.Canopy.Enemies {
		e.Frozen = false
	}
	for _, e := range s.Reef.Enemies {
		e.Frozen = false
	}
}
