// internal/system/canopy.go
package system

import (
	"go-wyrm-hunt/internal/component"
	"go-wyrm-hunt/internal/config"
	"go-wyrm-hunt/internal/entity"
	"go-wyrm-hunt/internal/event"
	"go-wyrm-hunt/internal/types"
	"go-wyrm-hunt/internal/utils"
)

// CanopySystem — симулятор зоны крон: невидимые торнвирмы с рывком и
// телепортом, кусты-препятствия и спрятанное в них яйцо.
type CanopySystem struct {
	state      *entity.State
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
	safe       *SafeZoneSystem
}

func NewCanopySystem(state *entity.State, rng *utils.PRNGService, dispatcher *event.Dispatcher, safe *SafeZoneSystem) *CanopySystem {
	return &CanopySystem{state: state, rng: rng, dispatcher: dispatcher, safe: safe}
}

// Reset заселяет зону для нового уровня.
func (s *CanopySystem) Reset() {
	z := &s.state.Canopy
	z.Enemies = z.Enemies[:0]
	z.Obstacles = nil
	z.SpawnTimer = 0
	z.TeleportTimer = 0
	z.TeleportRange = config.TeleportRangeBase
	z.WaveTimer = 0
	z.WaveCount = 0

	for i := 0; i < config.ThornwyrmCount; i++ {
		z.Enemies = append(z.Enemies, s.newWyrm(true))
	}

	// Стартовая пара кустов, в одном из них яйцо.
	for i := 0; i < 2; i++ {
		s.addObstacle()
	}
	z.Egg = &component.CanopyEgg{
		Egg:       component.Egg{Radius: config.EggRadius},
		HostIndex: s.rng.Intn(len(z.Obstacles)),
	}
	host := z.Obstacles[z.Egg.HostIndex]
	z.Egg.X, z.Egg.Y = host.X, host.Y
}

func (s *CanopySystem) newWyrm(frozen bool) *component.Thornwyrm {
	z := &s.state.Canopy
	return &component.Thornwyrm{
		EnemyCore: component.EnemyCore{
			X:         s.rng.Range(z.Bounds.X+80, z.Bounds.X+z.Bounds.W-80),
			Y:         s.rng.Range(z.Bounds.Y+80, z.Bounds.Y+z.Bounds.H-80),
			Radius:    config.ThornwyrmRadius,
			BaseSpeed: config.ThornwyrmSpeed * s.state.SpeedMultiplier,
			Alive:     true,
			Frozen:    frozen,
		},
		TeleportRange: z.TeleportRange,
	}
}

func (s *CanopySystem) addObstacle() {
	z := &s.state.Canopy
	z.Obstacles = append(z.Obstacles, &component.Foliage{
		X:      s.rng.Range(z.Bounds.X+60, z.Bounds.X+z.Bounds.W-60),
		Y:      s.rng.Range(z.Bounds.Y+60, z.Bounds.Y+z.Bounds.H-60),
		Radius: config.FoliageRadius,
	})
}

func (s *CanopySystem) Update(dt float64, player *component.Player) {
	z := &s.state.Canopy

	// Тихий прирост населения: таймер тикает только пока игрока нет в зоне.
	if !z.Bounds.Contains(player.X, player.Y) {
		z.SpawnTimer += dt
		for z.SpawnTimer >= config.CanopySpawnInterval {
			z.SpawnTimer -= config.CanopySpawnInterval
			if z.AliveEnemies() < config.ZoneEnemyCap {
				z.Enemies = append(z.Enemies, s.newWyrm(false))
			}
		}
	}

	// Радиус телепорта растёт и раздаётся всем живым.
	z.TeleportTimer += dt
	for z.TeleportTimer >= config.TeleportRangeInterval {
		z.TeleportTimer -= config.TeleportRangeInterval
		z.TeleportRange += config.TeleportRangeStep
	}
	for _, e := range z.Enemies {
		if e.Alive {
			e.TeleportRange = z.TeleportRange
		}
	}

	s.updateObstacles(dt)

	for _, e := range z.Enemies {
		if !e.Alive {
			continue
		}
		e.TickEffects(dt)
		if e.CanMove() {
			s.updateWyrm(dt, e, player)
			e.X, e.Y = z.Bounds.ClampPoint(e.X, e.Y, e.Radius)
		}
		// Выталкивание не зависит от способности двигаться: обездвиженный
		// враг тоже не может стоять внутри убежища.
		s.safe.Repel(&e.EnemyCore)
	}

	s.updateEgg(player)
	s.purge()
}

// updateWyrm: невидимый ждёт, обнаруженный делает рывок по зафиксированному
// вектору, после рывка переходит в обычную погоню.
func (s *CanopySystem) updateWyrm(dt float64, e *component.Thornwyrm, player *component.Player) {
	dist := Dist(e.X, e.Y, player.X, player.Y)

	if !e.Visible {
		if dist <= config.ThornRevealRange {
			e.Visible = true
			e.Lunging = true
			// Вектор рывка нацелен на позицию игрока в момент обнаружения
			// и дальше не перенаводится.
			nx, ny := Direction(e.X, e.Y, player.X, player.Y)
			lungeSpeed := e.Speed() * config.ThornLungeFactor
			e.LungeVX = nx * lungeSpeed
			e.LungeVY = ny * lungeSpeed
		}
		return
	}

	if e.Lunging {
		e.X += e.LungeVX * dt
		e.Y += e.LungeVY * dt
		dist = Dist(e.X, e.Y, player.X, player.Y)
		// Побег за радиус телепорта не спасает: враг мгновенно
		// подтягивается на 0.75 радиуса по пеленгу игрок→враг.
		if dist > e.TeleportRange {
			nx, ny := Direction(player.X, player.Y, e.X, e.Y)
			e.X = player.X + nx*e.TeleportRange*config.TeleportDropFactor
			e.Y = player.Y + ny*e.TeleportRange*config.TeleportDropFactor
			dist = Dist(e.X, e.Y, player.X, player.Y)
		}
		if dist <= e.Radius+player.Radius+config.ThornLungeStopMargin {
			e.Lunging = false
		}
		return
	}

	e.X, e.Y = SeekToward(e.X, e.Y, player.X, player.Y, e.Speed()*dt)
}

// updateObstacles: волны новых кустов каждые 5с (до трёх волн) и
// независимое случайное ёрзание.
func (s *CanopySystem) updateObstacles(dt float64) {
	z := &s.state.Canopy

	z.WaveTimer += dt
	for z.WaveTimer >= config.FoliageWaveInterval {
		z.WaveTimer -= config.FoliageWaveInterval
		if z.WaveCount < config.FoliageWaveCap {
			z.WaveCount++
		}
		for i := 0; i < z.WaveCount; i++ {
			s.addObstacle()
		}
		// Бесхозному яйцу назначается случайный носитель.
		if z.Egg != nil && !z.Egg.Collected &&
			(z.Egg.HostIndex < 0 || z.Egg.HostIndex >= len(z.Obstacles)) {
			z.Egg.HostIndex = s.rng.Intn(len(z.Obstacles))
		}
	}

	for _, o := range z.Obstacles {
		if s.rng.Float64() < dt*config.FoliageJostleChance {
			o.X += s.rng.Spread(config.FoliageJostleRange)
			o.Y += s.rng.Spread(config.FoliageJostleRange)
			o.X, o.Y = z.Bounds.ClampPoint(o.X, o.Y, o.Radius)
		}
	}
}

// updateEgg: яйцо едет на кусте-носителе, проявляется вблизи и
// собирается касанием.
func (s *CanopySystem) updateEgg(player *component.Player) {
	z := &s.state.Canopy
	egg := z.Egg
	if egg == nil || egg.Collected {
		return
	}
	if egg.HostIndex >= 0 && egg.HostIndex < len(z.Obstacles) {
		host := z.Obstacles[egg.HostIndex]
		egg.X, egg.Y = host.X, host.Y
	}
	egg.Visible = Dist(player.X, player.Y, egg.X, egg.Y) <= config.CanopyEggRevealRange
	if Dist(player.X, player.Y, egg.X, egg.Y) <= player.Radius+config.EggPickupMargin {
		egg.Collected = true
		s.dispatcher.Dispatch(event.Event{Type: event.EggCollected, Data: types.ZoneCanopy})
	}
}

func (s *CanopySystem) purge() {
	z := &s.state.Canopy
	alive := z.Enemies[:0]
	for _, e := range z.Enemies {
		if e.Alive {
			alive = append(alive, e)
		}
	}
	z.Enemies = alive
}
