// internal/state/game_state.go
package state

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"go-wyrm-hunt/internal/app"
	"go-wyrm-hunt/internal/component"
	"go-wyrm-hunt/internal/config"
	"go-wyrm-hunt/internal/event"
	"go-wyrm-hunt/internal/types"
	"go-wyrm-hunt/internal/ui"
	"go-wyrm-hunt/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GameState — игровое состояние: хозяйский цикл вокруг ядра симуляции.
// Владеет игроком, вводом, камерой и HUD; ядро получает только (dt, player).
type GameState struct {
	sm       *StateMachine
	sim      *app.Simulation
	player   *component.Player
	renderer *render.WorldRenderer

	pauseButton   *ui.PauseButton
	eggCounter    *ui.EggCounter
	usesIndicator *ui.UsesIndicator

	camX, camY   float64
	levelCleared bool
}

func NewGameState(sm *StateMachine) *GameState {
	zones := [4]types.Rect{
		{X: 0, Y: 0, W: config.ZoneWidth, H: config.ZoneHeight},
		{X: config.ZoneWidth, Y: 0, W: config.ZoneWidth, H: config.ZoneHeight},
		{X: 0, Y: config.ZoneHeight, W: config.ZoneWidth, H: config.ZoneHeight},
		{X: config.ZoneWidth, Y: config.ZoneHeight, W: config.ZoneWidth, H: config.ZoneHeight},
	}
	mapColors := &render.MapColors{
		BackgroundColor: config.BackgroundColor,
		VolcanicFloor:   config.VolcanicFloorColor,
		GlacialFloor:    config.GlacialFloorColor,
		CanopyFloor:     config.CanopyFloorColor,
		ReefFloor:       config.ReefFloorColor,
		BorderColor:     config.ZoneBorderColor,
		BorderWidth:     3,
	}
	renderer, err := render.NewWorldRenderer(zones, mapColors)
	if err != nil {
		log.Fatal(err)
	}

	sim := app.NewSimulation(0)
	sim.Init(1)

	g := &GameState{
		sm:       sm,
		sim:      sim,
		renderer: renderer,
		player: &component.Player{
			X:      config.MapWidth / 2,
			Y:      config.MapHeight / 2,
			Radius: config.PlayerRadius,
		},
		pauseButton: ui.NewPauseButton(
			float32(config.ScreenWidth-40), 40, 14,
			config.PauseColor, config.PlayColor,
		),
		eggCounter: ui.NewEggCounter(30, 30, 8, 26, [4]color.RGBA{
			config.MagmawyrmColor,
			config.FrostwyrmColor,
			config.ThornwyrmColor,
			config.TidewyrmColor,
		}),
		usesIndicator: ui.NewUsesIndicator(30, 60, 6, 20,
			config.SafeZoneMaxUses, config.SafeZoneOutlineColor),
	}
	sim.Events().Subscribe(event.LevelCleared, g)
	return g
}

// OnEvent — подписка на события ядра.
func (g *GameState) OnEvent(e event.Event) {
	if e.Type == event.LevelCleared {
		g.levelCleared = true
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	g.pauseButton.SetPaused(false)

	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if g.pauseButton.IsInside(float32(mx), float32(my)) {
			g.pauseButton.TogglePause()
			g.sm.SetState(NewPauseState(g.sm, g))
			return
		}
	}

	g.handleMovement(deltaTime)
	g.handleAbility(deltaTime)

	g.sim.Update(deltaTime, g.player)

	// Тик собственных эффектов игрока — обязанность хозяина, не ядра.
	g.player.TickEffects(deltaTime)

	g.checkEnemyContact()

	if g.player.IsDead() {
		g.sm.SetState(NewGameOverState(g.sm, g.sim.State().Level))
		return
	}

	if g.levelCleared {
		g.levelCleared = false
		next := g.sim.State().Level + 1
		g.sim.Init(next)
		g.player.X = config.MapWidth / 2
		g.player.Y = config.MapHeight / 2
		g.player.AbilityCooldown = 0
		g.player.ActiveEffects = nil
	}

	g.updateCamera()
}

func (g *GameState) handleMovement(dt float64) {
	dx, dy := 0.0, 0.0
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dy -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dx += 1
	}
	if dx == 0 && dy == 0 {
		return
	}
	length := math.Hypot(dx, dy)
	g.player.X += dx / length * config.PlayerSpeed * dt
	g.player.Y += dy / length * config.PlayerSpeed * dt
	g.player.Facing = math.Atan2(dy, dx)

	if g.player.X < g.player.Radius {
		g.player.X = g.player.Radius
	} else if g.player.X > config.MapWidth-g.player.Radius {
		g.player.X = config.MapWidth - g.player.Radius
	}
	if g.player.Y < g.player.Radius {
		g.player.Y = g.player.Radius
	} else if g.player.Y > config.MapHeight-g.player.Radius {
		g.player.Y = config.MapHeight - g.player.Radius
	}
}

// handleAbility — морозная волна: внешний производитель эффектов.
// Ядро видит только фронт кулдауна и общий словарь тегов.
func (g *GameState) handleAbility(dt float64) {
	if g.player.AbilityCooldown > 0 {
		g.player.AbilityCooldown -= dt
		if g.player.AbilityCooldown < 0 {
			g.player.AbilityCooldown = 0
		}
	}
	if !inpututil.IsKeyJustPressed(ebiten.KeySpace) || g.player.AbilityCooldown != 0 {
		return
	}
	g.player.AbilityCooldown = config.AbilityCooldownTime

	freeze := component.StatusEffect{
		Type:     component.EffectFreeze,
		Duration: config.AbilityFreezeDuration,
	}
	st := g.sim.State()
	for _, e := range st.Volcanic.Enemies {
		if e.Alive && g.inNovaRange(e.X, e.Y) {
			e.AddEffect(freeze)
		}
	}
	for _, e := range st.Glacial.Enemies {
		if e.Alive && g.inNovaRange(e.X, e.Y) {
			e.AddEffect(freeze)
		}
	}
	for _, e := range st.Canopy.Enemies {
		if e.Alive && g.inNovaRange(e.X, e.Y) {
			e.AddEffect(freeze)
		}
	}
	for _, e := range st.Reef.Enemies {
		if e.Alive && g.inNovaRange(e.X, e.Y) {
			e.AddEffect(freeze)
		}
	}
}

func (g *GameState) inNovaRange(x, y float64) bool {
	return math.Hypot(x-g.player.X, y-g.player.Y) <= config.AbilityNovaRadius
}

// checkEnemyContact — правило проигрыша хозяина: касание живого врага
// смертельно. Невидимые торнвирмы не убивают из засады.
func (g *GameState) checkEnemyContact() {
	st := g.sim.State()
	p := g.player
	touch := func(x, y, r float64) bool {
		return math.Hypot(x-p.X, y-p.Y) < r+p.Radius
	}
	for _, e := range st.Volcanic.Enemies {
		if e.Alive && touch(e.X, e.Y, e.Radius) {
			g.killPlayer()
			return
		}
	}
	for _, e := range st.Glacial.Enemies {
		if e.Alive && touch(e.X, e.Y, e.Radius) {
			g.killPlayer()
			return
		}
	}
	for _, e := range st.Canopy.Enemies {
		if e.Alive && e.Visible && touch(e.X, e.Y, e.Radius) {
			g.killPlayer()
			return
		}
	}
	for _, e := range st.Reef.Enemies {
		if e.Alive && touch(e.X, e.Y, e.Radius) {
			g.killPlayer()
			return
		}
	}
}

func (g *GameState) killPlayer() {
	if g.player.IsDead() {
		return
	}
	g.player.AddEffect(component.StatusEffect{
		Type:     component.EffectDead,
		Duration: component.Permanent(),
	})
}

func (g *GameState) updateCamera() {
	g.camX = g.player.X - config.ScreenWidth/2
	g.camY = g.player.Y - config.ScreenHeight/2
	if g.camX < 0 {
		g.camX = 0
	} else if g.camX > config.MapWidth-config.ScreenWidth {
		g.camX = config.MapWidth - config.ScreenWidth
	}
	if g.camY < 0 {
		g.camY = 0
	} else if g.camY > config.MapHeight-config.ScreenHeight {
		g.camY = config.MapHeight - config.ScreenHeight
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.camX, g.camY)
	g.sim.Draw(screen, g.camX, g.camY)

	// Игрок рисуется хозяином: кружок и штрих направления.
	px := float32(g.player.X - g.camX)
	py := float32(g.player.Y - g.camY)
	pc := config.PlayerColor
	if g.player.IsDead() {
		pc = config.PlayerDeadColor
	}
	vector.DrawFilledCircle(screen, px, py, float32(g.player.Radius), pc, true)
	fx := px + float32(math.Cos(g.player.Facing)*g.player.Radius*1.4)
	fy := py + float32(math.Sin(g.player.Facing)*g.player.Radius*1.4)
	vector.StrokeLine(screen, px, py, fx, fy, 2, pc, true)

	st := g.sim.State()
	g.eggCounter.Draw(screen, [4]bool{
		st.Volcanic.Egg != nil && st.Volcanic.Egg.Collected,
		st.Glacial.Egg != nil && st.Glacial.Egg.Collected,
		st.Canopy.Egg != nil && st.Canopy.Egg.Collected,
		st.Reef.Egg != nil && st.Reef.Egg.Collected,
	})
	g.usesIndicator.Draw(screen, st.SafeZone.UsesRemaining())
	g.pauseButton.Draw(screen)

	text.Draw(screen, fmt.Sprintf("Level %d", st.Level), g.renderer.Face(), 10, config.ScreenHeight-12, config.TextLightColor)
}

func (g *GameState) Exit() {}
