// internal/system/glacial.go
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

// GlacialSystem — симулятор ледниковой зоны: фроствирмы-турели, растущее
// кольцо замёрзших плит, ледяные снаряды и размораживаемое яйцо.
type GlacialSystem struct {
	state      *entity.State
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
	safe       *SafeZoneSystem
}

func NewGlacialSystem(state *entity.State, rng *utils.PRNGService, dispatcher *event.Dispatcher, safe *SafeZoneSystem) *GlacialSystem {
	return &GlacialSystem{state: state, rng: rng, dispatcher: dispatcher, safe: safe}
}

// Reset заселяет зону для нового уровня.
func (s *GlacialSystem) Reset() {
	z := &s.state.Glacial
	z.Enemies = z.Enemies[:0]
	z.Tiles = nil
	z.Bullets = nil

	for i := 0; i < config.FrostwyrmCount; i++ {
		z.Enemies = append(z.Enemies, &component.Frostwyrm{
			EnemyCore: component.EnemyCore{
				X:      s.rng.Range(z.Bounds.X+120, z.Bounds.X+z.Bounds.W-120),
				Y:      s.rng.Range(z.Bounds.Y+120, z.Bounds.Y+z.Bounds.H-120),
				Radius: config.FrostwyrmRadius,
				Alive:  true,
				Frozen: true,
			},
			ExpandRadius: config.FrostExpandStart,
			ShotTimer:    config.IceShotCooldownLong,
		})
	}

	z.Egg = &component.GlacialEgg{
		Egg: component.Egg{
			X:      s.rng.Range(z.Bounds.X+150, z.Bounds.X+z.Bounds.W-150),
			Y:      s.rng.Range(z.Bounds.Y+150, z.Bounds.Y+z.Bounds.H-150),
			Radius: config.EggRadius,
		},
	}
}

func (s *GlacialSystem) Update(dt float64, player *component.Player) {
	z := &s.state.Glacial

	for _, e := range z.Enemies {
		if !e.Alive {
			continue
		}
		e.TickEffects(dt)
		if e.CanMove() {
			// Каждые 1.5с — новая плита на растущем радиусе плюс мелкий дрейф.
			e.ExpandTimer += dt
			if e.ExpandTimer >= config.FrostTileInterval {
				e.ExpandTimer -= config.FrostTileInterval
				s.dropTile(e)
				e.ExpandRadius += config.FrostExpandStep
				if e.ExpandRadius > config.FrostExpandCap {
					e.ExpandRadius = config.FrostExpandCap
				}
				e.X += s.rng.Spread(config.FrostJitter)
				e.Y += s.rng.Spread(config.FrostJitter)
				e.X, e.Y = z.Bounds.ClampPoint(e.X, e.Y, e.Radius)
			}

			// Стрельба только по игроку в радиусе 300px; чередующийся кулдаун
			// даёт двухтактный ритм. Вне радиуса истёкший таймер ждёт.
			if e.ShotTimer > 0 {
				e.ShotTimer -= dt
			}
			if e.ShotTimer <= 0 && Dist(e.X, e.Y, player.X, player.Y) <= config.IceShotRange {
				nx, ny := Direction(e.X, e.Y, player.X, player.Y)
				z.Bullets = append(z.Bullets, &component.IceBullet{
					X: e.X, Y: e.Y,
					VX: nx * config.IceBulletSpeed, VY: ny * config.IceBulletSpeed,
					Radius: config.IceBulletRadius,
				})
				if e.NextShotLong {
					e.ShotTimer = config.IceShotCooldownLong
				} else {
					e.ShotTimer = config.IceShotCooldownShort
				}
				e.NextShotLong = !e.NextShotLong
			}
		}

		// Выталкивание не зависит от способности двигаться: обездвиженный
		// враг тоже не может стоять внутри убежища.
		s.safe.Repel(&e.EnemyCore)
	}

	s.updateBullets(dt, player)
	s.collideTiles(player)
	s.updateEgg(dt, player)
	s.purge()
}

// dropTile кладёт плиту 40×40 под случайным углом на текущем радиусе.
func (s *GlacialSystem) dropTile(e *component.Frostwyrm) {
	z := &s.state.Glacial
	a := s.rng.Angle()
	cx := e.X + math.Cos(a)*e.ExpandRadius
	cy := e.Y + math.Sin(a)*e.ExpandRadius
	cx, cy = z.Bounds.ClampPoint(cx, cy, config.FrostTileSize/2)
	z.Tiles = append(z.Tiles, component.FrozenTile{
		X: cx - config.FrostTileSize/2,
		Y: cy - config.FrostTileSize/2,
		W: config.FrostTileSize,
		H: config.FrostTileSize,
	})
}

func (s *GlacialSystem) updateBullets(dt float64, player *component.Player) {
	z := &s.state.Glacial
	alive := z.Bullets[:0]
	for _, b := range z.Bullets {
		b.X += b.VX * dt
		b.Y += b.VY * dt
		if b.X < -b.Radius || b.X > config.MapWidth+b.Radius ||
			b.Y < -b.Radius || b.Y > config.MapHeight+b.Radius {
			continue
		}
		if Dist(b.X, b.Y, player.X, player.Y) < b.Radius+player.Radius {
			// Попадание — сигнал мгновенной смерти. Конец игры решает хозяин;
			// мёртвому повторный сигнал не шлём.
			if !player.IsDead() {
				player.AddEffect(component.StatusEffect{Type: component.EffectDead, Duration: component.Permanent()})
				s.dispatcher.Dispatch(event.Event{Type: event.PlayerKilled})
			}
			continue
		}
		alive = append(alive, b)
	}
	z.Bullets = alive
}

// collideTiles — статичные коллайдеры: одна плита, одна итерация,
// выталкивание по оси минимального проникновения.
func (s *GlacialSystem) collideTiles(player *component.Player) {
	for i := range s.state.Glacial.Tiles {
		t := &s.state.Glacial.Tiles[i]
		player.X, player.Y, _ = ResolveCircleRect(player.X, player.Y, player.Radius,
			types.Rect{X: t.X, Y: t.Y, W: t.W, H: t.H})
	}
}

// updateEgg копит таймер разморозки рядом с игроком; вдали таймер тает
// вдвое медленнее, а не сбрасывается.
func (s *GlacialSystem) updateEgg(dt float64, player *component.Player) {
	egg := s.state.Glacial.Egg
	if egg == nil || egg.Collected {
		return
	}
	if Dist(player.X, player.Y, egg.X, egg.Y) <= egg.Radius+config.EggThawRange {
		egg.ThawTimer += dt
	} else {
		egg.ThawTimer -= dt * config.EggThawDecayFactor
		if egg.ThawTimer < 0 {
			egg.ThawTimer = 0
		}
	}
	if egg.ThawTimer >= config.EggThawRequired {
		egg.Collected = true
		s.dispatcher.Dispatch(event.Event{Type: event.EggCollected, Data: types.ZoneGlacial})
	}
}

func (s *GlacialSystem) purge() {
	z := &s.state.Glacial
	alive := z.Enemies[:0]
	for _, e := range z.Enemies {
		if e.Alive {
			alive = append(alive, e)
		}
	}
	z.Enemies = alive
}
