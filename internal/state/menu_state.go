// internal/state/menu_state.go
package state

import (
	"go-wyrm-hunt/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState — стартовый экран.
type MenuState struct {
	sm *StateMachine
}

func NewMenuState(sm *StateMachine) *MenuState {
	return &MenuState{sm: sm}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewGameState(m.sm))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ebitenutil.DebugPrintAt(screen, "WYRM HUNT", config.ScreenWidth/2-40, config.ScreenHeight/2-30)
	ebitenutil.DebugPrintAt(screen, "WASD - move, Space - frost nova", config.ScreenWidth/2-100, config.ScreenHeight/2)
	ebitenutil.DebugPrintAt(screen, "Collect all four eggs. Press Space to start.", config.ScreenWidth/2-130, config.ScreenHeight/2+20)
}

func (m *MenuState) Exit() {}
