// internal/state/pause_state.go
package state

import (
	"image/color"

	"go-wyrm-hunt/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState рисует замороженное игровое состояние под полупрозрачной
// плёнкой. Симуляция при этом не обновляется.
type PauseState struct {
	sm            *StateMachine
	previousState State
}

func NewPauseState(sm *StateMachine, prev State) *PauseState {
	return &PauseState{sm: sm, previousState: prev}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.sm.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight,
		color.RGBA{0, 0, 0, 140}, false)
	ebitenutil.DebugPrintAt(screen, "PAUSED", config.ScreenWidth/2-20, config.ScreenHeight/2)
}

func (s *PauseState) Exit() {}
