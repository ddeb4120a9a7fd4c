// internal/system/volcanic.go
package system

import (
	"go-wyrm-hunt/internal/component"
	"go-wyrm-hunt/internal/config"
	"go-wyrm-hunt/internal/entity"
	"go-wyrm-hunt/internal/event"
	"go-wyrm-hunt/internal/types"
	"go-wyrm-hunt/internal/utils"
)

// VolcanicSystem — симулятор вулканической зоны: магмавирмы-преследователи,
// лавовые следы, гейзеры и деление от всплеска способности.
type VolcanicSystem struct {
	state      *entity.State
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
	safe       *SafeZoneSystem
}

func NewVolcanicSystem(state *entity.State, rng *utils.PRNGService, dispatcher *event.Dispatcher, safe *SafeZoneSystem) *VolcanicSystem {
	return &VolcanicSystem{state: state, rng: rng, dispatcher: dispatcher, safe: safe}
}

// Reset заселяет зону для нового уровня.
func (s *VolcanicSystem) Reset() {
	z := &s.state.Volcanic
	z.Enemies = z.Enemies[:0]
	z.Trails = nil
	z.BoostTimer = 0

	for i := 0; i < config.MagmawyrmCount; i++ {
		z.Enemies = append(z.Enemies, s.newWyrm(
			s.rng.Range(z.Bounds.X+100, z.Bounds.X+z.Bounds.W-100),
			s.rng.Range(z.Bounds.Y+100, z.Bounds.Y+z.Bounds.H-100),
			1.0, 1.0, true,
		))
	}

	// Пять гейзеров квинкунксом вокруг центра зоны, фазы разнесены случайно.
	cx, cy := z.Bounds.Center()
	offsets := [][2]float64{{0, 0}, {-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
	z.Geysers = z.Geysers[:0]
	for _, o := range offsets {
		z.Geysers = append(z.Geysers, &component.Geyser{
			X:      cx + o[0]*config.GeyserGridOffset,
			Y:      cy + o[1]*config.GeyserGridOffset,
			Radius: config.GeyserRadius,
			Timer:  s.rng.Float64() * config.GeyserDormantTime,
		})
	}

	// Яйцо лежит на центральном гейзере.
	z.Egg = &component.VolcanicEgg{
		Egg:         component.Egg{X: cx, Y: cy, Radius: config.EggRadius},
		GeyserIndex: 0,
	}
}

func (s *VolcanicSystem) newWyrm(x, y, sizeMult, boost float64, frozen bool) *component.Magmawyrm {
	return &component.Magmawyrm{
		EnemyCore: component.EnemyCore{
			X: x, Y: y,
			Radius:    config.MagmawyrmRadius * sizeMult,
			BaseSpeed: config.MagmawyrmSpeed * s.state.SpeedMultiplier,
			Alive:     true,
			Frozen:    frozen,
		},
		SizeMult:       sizeMult,
		SpeedBoostMult: boost,
	}
}

// Update — полный шаг зоны. abilityJustUsed — фронт срабатывания
// способности игрока, детектированный драйвером кадра.
func (s *VolcanicSystem) Update(dt float64, player *component.Player, abilityJustUsed bool) {
	z := &s.state.Volcanic

	for _, e := range z.Enemies {
		if e.Alive {
			e.TickEffects(dt)
		}
	}

	// Каждые 5 секунд вся зона получает постоянный прирост скорости.
	z.BoostTimer += dt
	for z.BoostTimer >= config.VolcanicBoostInterval {
		z.BoostTimer -= config.VolcanicBoostInterval
		for _, e := range z.Enemies {
			if e.Alive {
				e.SpeedBoostMult *= config.VolcanicBoostFactor
			}
		}
	}

	if abilityJustUsed {
		s.split(player)
	}

	for _, e := range z.Enemies {
		if !e.Alive {
			continue
		}
		if e.CanMove() {
			step := e.Speed() * dt
			e.X, e.Y = SeekToward(e.X, e.Y, player.X, player.Y, step)

			// Капли падают только во время активного движения.
			e.TrailTimer += dt
			if e.TrailTimer >= config.LavaTrailInterval {
				e.TrailTimer -= config.LavaTrailInterval
				z.Trails = append(z.Trails, &component.LavaTrail{
					X: e.X, Y: e.Y,
					Radius:  e.Radius * config.LavaTrailRadiusFactor,
					Life:    config.LavaTrailLife,
					MaxLife: config.LavaTrailLife,
				})
			}
		}
		e.X, e.Y = z.Bounds.ClampPoint(e.X, e.Y, e.Radius)
		s.safe.Repel(&e.EnemyCore)
	}

	s.updateHazards(dt, player, true)
	s.updateEgg(player)
	s.purge()
}

// UpdateAmbient тикает гейзеры и остывание лавы до первого шага игрока.
// Враги при этом не двигаются, игрока никто не толкает.
func (s *VolcanicSystem) UpdateAmbient(dt float64) {
	s.updateHazards(dt, nil, false)
}

func (s *VolcanicSystem) updateHazards(dt float64, player *component.Player, repel bool) {
	z := &s.state.Volcanic

	for _, g := range z.Geysers {
		g.Timer += dt
		if g.Erupting {
			if g.Timer >= config.GeyserEruptTime {
				g.Timer -= config.GeyserEruptTime
				g.Erupting = false
			}
		} else if g.Timer >= config.GeyserDormantTime {
			g.Timer -= config.GeyserDormantTime
			g.Erupting = true
		}
		if repel && g.Erupting {
			player.X, player.Y, _ = PushOutOfCircle(player.X, player.Y, player.Radius, g.X, g.Y, g.Radius)
		}
	}

	alive := z.Trails[:0]
	for _, t := range z.Trails {
		t.Life -= dt
		if t.Life <= 0 {
			continue
		}
		if repel {
			player.X, player.Y, _ = PushOutOfCircle(player.X, player.Y, player.Radius, t.X, t.Y, t.Radius)
		}
		alive = append(alive, t)
	}
	z.Trails = alive
}

// split убивает крупных магмавирмов рядом со всплеском способности и,
// если кап позволяет, порождает двух детей помельче и пошустрее.
func (s *VolcanicSystem) split(player *component.Player) {
	z := &s.state.Volcanic
	parents := z.Enemies // дети дописываются в конец, их не перебираем
	for _, e := range parents {
		if !e.Alive || e.SizeMult <= config.SplitMinSizeMult {
			continue
		}
		if Dist(e.X, e.Y, player.X, player.Y) > config.SplitTriggerRange {
			continue
		}
		canSpawn := z.AliveEnemies()+2 <= config.ZoneEnemyCap
		e.Alive = false
		if !canSpawn {
			continue
		}
		for i := 0; i < 2; i++ {
			child := s.newWyrm(
				e.X+s.rng.Spread(e.Radius*2),
				e.Y+s.rng.Spread(e.Radius*2),
				e.SizeMult*config.SplitChildSizeFactor,
				e.SpeedBoostMult*config.SplitChildSpeedBoost,
				false,
			)
			child.X, child.Y = z.Bounds.ClampPoint(child.X, child.Y, child.Radius)
			z.Enemies = append(z.Enemies, child)
		}
		s.dispatcher.Dispatch(event.Event{Type: event.EnemySplit, Data: types.ZoneVolcanic})
	}
}

func (s *VolcanicSystem) updateEgg(player *component.Player) {
	z := &s.state.Volcanic
	egg := z.Egg
	if egg == nil || egg.Collected {
		return
	}
	// Яйцо недоступно, пока его гейзер извергается.
	if egg.GeyserIndex >= 0 && egg.GeyserIndex < len(z.Geysers) && z.Geysers[egg.GeyserIndex].Erupting {
		return
	}
	if Dist(player.X, player.Y, egg.X, egg.Y) <= player.Radius+config.EggPickupMargin {
		egg.Collected = true
		s.dispatcher.Dispatch(event.Event{Type: event.EggCollected, Data: types.ZoneVolcanic})
	}
}

// purge вычищает мёртвых из списка. Выполняется каждый кадр.
func (s *VolcanicSystem) purge() {
	z := &s.state.Volcanic
	alive := z.Enemies[:0]
	for _, e := range z.Enemies {
		if e.Alive {
			alive = append(alive, e)
		}
	}
	z.Enemies = alive
}
