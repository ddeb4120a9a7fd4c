// internal/system/reef.go
package system

import (
	"math"

	"go-wyrm-hunt/internal/component"
	"go-wyrm-hunt/internal/config"
	"go-wyrm-hunt/internal/entity"
	"go-wyrm-hunt/internal/event"
	"go-wyrm-hunt/internal/types"
	"go-wyrm-hunt/internal/utils"
)

// ReefSystem — симулятор рифовой зоны: стая тайдвирмов на общей
// эллиптической формации с нарастающими гармониками, отскакивающие
// препятствия и дрейфующее яйцо.
type ReefSystem struct {
	state      *entity.State
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
	safe       *SafeZoneSystem
}

func NewReefSystem(state *entity.State, rng *utils.PRNGService, dispatcher *event.Dispatcher, safe *SafeZoneSystem) *ReefSystem {
	return &ReefSystem{state: state, rng: rng, dispatcher: dispatcher, safe: safe}
}

// Reset заселяет зону для нового уровня.
func (s *ReefSystem) Reset() {
	z := &s.state.Reef
	z.Enemies = z.Enemies[:0]
	z.Bouncers = z.Bouncers[:0]
	z.SpawnTimer = 0
	z.TierTimer = 0
	z.Tier = 0
	z.WaveTime = 0
	z.Spawned = 0

	for i := 0; i < config.TidewyrmCount; i++ {
		s.spawnWyrm(true)
	}

	for i := 0; i < config.BouncerCount; i++ {
		a := s.rng.Angle()
		speed := s.rng.Range(config.BouncerSpeedMin, config.BouncerSpeedMax)
		z.Bouncers = append(z.Bouncers, &component.Bouncer{
			X:      s.rng.Range(z.Bounds.X+100, z.Bounds.X+z.Bounds.W-100),
			Y:      s.rng.Range(z.Bounds.Y+100, z.Bounds.Y+z.Bounds.H-100),
			VX:     math.Cos(a) * speed,
			VY:     math.Sin(a) * speed,
			Radius: config.BouncerRadius,
		})
	}

	a := s.rng.Angle()
	z.Egg = &component.ReefEgg{
		Egg: component.Egg{
			X:      s.rng.Range(z.Bounds.X+150, z.Bounds.X+z.Bounds.W-150),
			Y:      s.rng.Range(z.Bounds.Y+150, z.Bounds.Y+z.Bounds.H-150),
			Radius: config.EggRadius,
		},
		VX: math.Cos(a) * config.ReefEggSpeed,
		VY: math.Sin(a) * config.ReefEggSpeed,
	}
}

func (s *ReefSystem) spawnWyrm(frozen bool) {
	z := &s.state.Reef
	z.Enemies = append(z.Enemies, &component.Tidewyrm{
		EnemyCore: component.EnemyCore{
			X:         s.rng.Range(z.Bounds.X+80, z.Bounds.X+z.Bounds.W-80),
			Y:         s.rng.Range(z.Bounds.Y+80, z.Bounds.Y+z.Bounds.H-80),
			Radius:    config.TidewyrmRadius,
			BaseSpeed: config.TidewyrmSpeed * s.state.SpeedMultiplier,
			Alive:     true,
			Frozen:    frozen,
		},
		WaveOffset: float64(z.Spawned) * 2 * math.Pi / config.ZoneEnemyCap,
	})
	z.Spawned++
}

func (s *ReefSystem) Update(dt float64, player *component.Player) {
	z := &s.state.Reef
	z.WaveTime += dt

	z.SpawnTimer += dt
	for z.SpawnTimer >= config.ReefSpawnInterval {
		z.SpawnTimer -= config.ReefSpawnInterval
		if z.AliveEnemies() < config.ZoneEnemyCap {
			s.spawnWyrm(false)
		}
	}

	// Сложность формации нарастает ступенями, до четырёх гармоник.
	z.TierTimer += dt
	for z.TierTimer >= config.WaveTierInterval {
		z.TierTimer -= config.WaveTierInterval
		if z.Tier < config.WaveTierCap {
			z.Tier++
		}
	}

	for _, e := range z.Enemies {
		if !e.Alive {
			continue
		}
		e.TickEffects(dt)
		if e.CanMove() {
			tx, ty := s.formationTarget(e)
			// К цели стая плывёт своим ходом, а не телепортируется —
			// отсюда согласованное движение без взаимного избегания.
			e.X, e.Y = SeekToward(e.X, e.Y, tx, ty, e.Speed()*dt)
			e.X, e.Y = z.Bounds.ClampPoint(e.X, e.Y, e.Radius)
		}
		// Выталкивание не зависит от способности двигаться: обездвиженный
		// враг тоже не может стоять внутри убежища.
		s.safe.Repel(&e.EnemyCore)
	}

	s.updateBouncers(dt, player)
	s.updateEgg(dt, player)
	s.purge()
}

// formationTarget — точка формации врага: базовый эллипс плюс гармоники,
// открытые текущей ступенью сложности.
func (s *ReefSystem) formationTarget(e *component.Tidewyrm) (float64, float64) {
	z := &s.state.Reef
	cx, cy := z.Bounds.Center()
	t := z.WaveTime * config.ReefAngularSpeed
	phase := t + e.WaveOffset

	x := cx + config.ReefEllipseA*math.Cos(phase)
	y := cy + config.ReefEllipseB*math.Sin(phase)
	for k := 1; k <= z.Tier; k++ {
		h := float64(k + 1)
		x += config.ReefEllipseA / (3 * h) * math.Sin(h*t+e.WaveOffset)
		y += config.ReefEllipseB / (3 * h) * math.Cos(h*t+e.WaveOffset)
	}
	return x, y
}

// updateBouncers: отражение от стен зоны (смена знака скорости, прижим
// позиции) и плоский откид на 40px всем, кто коснулся.
func (s *ReefSystem) updateBouncers(dt float64, player *component.Player) {
	z := &s.state.Reef
	for _, b := range z.Bouncers {
		b.X += b.VX * dt
		b.Y += b.VY * dt
		if b.X < z.Bounds.X+b.Radius {
			b.X = z.Bounds.X + b.Radius
			b.VX = -b.VX
		} else if b.X > z.Bounds.X+z.Bounds.W-b.Radius {
			b.X = z.Bounds.X + z.Bounds.W - b.Radius
			b.VX = -b.VX
		}
		if b.Y < z.Bounds.Y+b.Radius {
			b.Y = z.Bounds.Y + b.Radius
			b.VY = -b.VY
		} else if b.Y > z.Bounds.Y+z.Bounds.H-b.Radius {
			b.Y = z.Bounds.Y + z.Bounds.H - b.Radius
			b.VY = -b.VY
		}

		// Проверка только по текущему кадру, без непрерывной коллизии.
		if Dist(b.X, b.Y, player.X, player.Y) < player.Radius+b.Radius {
			player.X, player.Y = Knockback(player.X, player.Y, b.X, b.Y, config.BouncerKnockback)
		}
		for _, e := range z.Enemies {
			if e.Alive && Dist(b.X, b.Y, e.X, e.Y) < e.Radius+b.Radius {
				e.X, e.Y = Knockback(e.X, e.Y, b.X, b.Y, config.BouncerKnockback)
				e.X, e.Y = z.Bounds.ClampPoint(e.X, e.Y, e.Radius)
				// Откид идёт после зонного прохода и мог закинуть врага
				// в убежище — выталкиваем сразу.
				s.safe.Repel(&e.EnemyCore)
			}
		}
	}
}

// updateEgg: дрейф с постоянной скоростью, отскок от стен с отступом 20px,
// сбор только касанием.
func (s *ReefSystem) updateEgg(dt float64, player *component.Player) {
	z := &s.state.Reef
	egg := z.Egg
	if egg == nil || egg.Collected {
		return
	}
	egg.X += egg.VX * dt
	egg.Y += egg.VY * dt
	if egg.X < z.Bounds.X+config.ReefEggMargin {
		egg.X = z.Bounds.X + config.ReefEggMargin
		egg.VX = -egg.VX
	} else if egg.X > z.Bounds.X+z.Bounds.W-config.ReefEggMargin {
		egg.X = z.Bounds.X + z.Bounds.W - config.ReefEggMargin
		egg.VX = -egg.VX
	}
	if egg.Y < z.Bounds.Y+config.ReefEggMargin {
		egg.Y = z.Bounds.Y + config.ReefEggMargin
		egg.VY = -egg.VY
	} else if egg.Y > z.Bounds.Y+z.Bounds.H-config.ReefEggMargin {
		egg.Y = z.Bounds.Y + z.Bounds.H - config.ReefEggMargin
		egg.VY = -egg.VY
	}
	if Dist(player.X, player.Y, egg.X, egg.Y) <= player.Radius+config.EggPickupMargin {
		egg.Collected = true
		s.dispatcher.Dispatch(event.Event{Type: event.EggCollected, Data: types.ZoneReef})
	}
}

func (s *ReefSystem) purge() {
	z := &s.state.Reef
	alive := z.Enemies[:0]
	for _, e := range z.Enemies {
		if e.Alive {
			alive = append(alive, e)
		}
	}
	z.Enemies = alive
}
