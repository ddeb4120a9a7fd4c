// internal/system/render.go
package system

import (
	"image/color"
	"math"

	"go-wyrm-hunt/internal/component"
	"go-wyrm-hunt/internal/config"
	"go-wyrm-hunt/internal/entity"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует сущности симуляции. Чистая функция состояния и
// смещения камеры, ничего не мутирует.
type RenderSystem struct {
	state *entity.State
}

func NewRenderSystem(state *entity.State) *RenderSystem {
	return &RenderSystem{state: state}
}

func (s *RenderSystem) Draw(screen *ebiten.Image, camX, camY float64) {
	s.drawVolcanic(screen, camX, camY)
	s.drawGlacial(screen, camX, camY)
	s.drawCanopy(screen, camX, camY)
	s.drawReef(screen, camX, camY)
	s.drawSafeZone(screen, camX, camY)
}

func (s *RenderSystem) drawVolcanic(screen *ebiten.Image, camX, camY float64) {
	z := &s.state.Volcanic

	for _, t := range z.Trails {
		// Лава гаснет вместе с остатком жизни.
		c := config.LavaTrailColor
		c.A = uint8(float64(c.A) * t.Life / t.MaxLife)
		vector.DrawFilledCircle(screen, float32(t.X-camX), float32(t.Y-camY), float32(t.Radius), c, true)
	}

	for _, g := range z.Geysers {
		c := config.GeyserColor
		r := g.Radius
		if g.Erupting {
			c = config.GeyserEruptColor
			r += 4 * math.Sin(s.state.VolcanicGlowPhase*6)
		}
		vector.DrawFilledCircle(screen, float32(g.X-camX), float32(g.Y-camY), float32(r), c, true)
	}

	if egg := z.Egg; egg != nil && !egg.Collected {
		drawEgg(screen, egg.X-camX, egg.Y-camY, egg.Radius)
	}

	for _, e := range z.Enemies {
		if e.Alive {
			drawWyrm(screen, &e.EnemyCore, config.MagmawyrmColor, camX, camY)
		}
	}
}

func (s *RenderSystem) drawGlacial(screen *ebiten.Image, camX, camY float64) {
	z := &s.state.Glacial

	for i := range z.Tiles {
		t := &z.Tiles[i]
		vector.DrawFilledRect(screen, float32(t.X-camX), float32(t.Y-camY), float32(t.W), float32(t.H), config.FrozenTileColor, true)
	}

	for _, b := range z.Bullets {
		vector.DrawFilledCircle(screen, float32(b.X-camX), float32(b.Y-camY), float32(b.Radius), config.IceBulletColor, true)
	}

	if egg := z.Egg; egg != nil && !egg.Collected {
		drawEgg(screen, egg.X-camX, egg.Y-camY, egg.Radius)
		// Кольцо прогресса разморозки.
		if egg.ThawTimer > 0 {
			p := float32(egg.ThawTimer / config.EggThawRequired)
			vector.StrokeCircle(screen, float32(egg.X-camX), float32(egg.Y-camY),
				float32(egg.Radius)+6, 2+p*3, config.IceBulletColor, true)
		}
	}

	for _, e := range z.Enemies {
		if e.Alive {
			drawWyrm(screen, &e.EnemyCore, config.FrostwyrmColor, camX, camY)
		}
	}
}

func (s *RenderSystem) drawCanopy(screen *ebiten.Image, camX, camY float64) {
	z := &s.state.Canopy

	sway := math.Sin(s.state.CanopySwayPhase) * 2
	for _, o := range z.Obstacles {
		vector.DrawFilledCircle(screen, float32(o.X-camX+sway), float32(o.Y-camY), float32(o.Radius), config.FoliageColor, true)
	}

	if egg := z.Egg; egg != nil && !egg.Collected && egg.Visible {
		drawEgg(screen, egg.X-camX, egg.Y-camY, egg.Radius)
	}

	for _, e := range z.Enemies {
		if e.Alive && e.Visible {
			drawWyrm(screen, &e.EnemyCore, config.ThornwyrmColor, camX, camY)
		}
	}
}

func (s *RenderSystem) drawReef(screen *ebiten.Image, camX, camY float64) {
	z := &s.state.Reef

	for _, b := range z.Bouncers {
		vector.DrawFilledCircle(screen, float32(b.X-camX), float32(b.Y-camY), float32(b.Radius), config.BouncerColor, true)
	}

	if egg := z.Egg; egg != nil && !egg.Collected {
		drawEgg(screen, egg.X-camX, egg.Y-camY, egg.Radius)
	}

	shimmer := 1 + 0.08*math.Sin(s.state.ReefShimmerPhase*2)
	for _, e := range z.Enemies {
		if !e.Alive {
			continue
		}
		vector.DrawFilledCircle(screen, float32(e.X-camX), float32(e.Y-camY),
			float32(e.Radius*shimmer), tint(&e.EnemyCore, config.TidewyrmColor), true)
	}
}

func (s *RenderSystem) drawSafeZone(screen *ebiten.Image, camX, camY float64) {
	sz := &s.state.SafeZone
	x := float32(sz.CenterX - camX)
	y := float32(sz.CenterY - camY)
	if !sz.Active {
		vector.DrawFilledCircle(screen, x, y, float32(sz.Radius), config.SafeZoneInactiveColor, true)
		return
	}
	vector.DrawFilledCircle(screen, x, y, float32(sz.Radius), config.SafeZoneColor, true)
	vector.StrokeCircle(screen, x, y, float32(sz.Radius), 2, config.SafeZoneOutlineColor, true)
}

func drawWyrm(screen *ebiten.Image, e *component.EnemyCore, base color.RGBA, camX, camY float64) {
	vector.DrawFilledCircle(screen, float32(e.X-camX), float32(e.Y-camY), float32(e.Radius), tint(e, base), true)
}

// tint подсвечивает замороженных и стоящих под эффектом врагов.
func tint(e *component.EnemyCore, base color.RGBA) color.RGBA {
	if e.Frozen || component.MovementBlocked(e.Effects) {
		return config.FrozenTint
	}
	return base
}

func drawEgg(screen *ebiten.Image, x, y, r float64) {
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r), config.EggColor, true)
	vector.StrokeCircle(screen, float32(x), float32(y), float32(r), 2, config.EggStrokeColor, true)
}
