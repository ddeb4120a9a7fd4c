// internal/state/game_over_state.go
package state

import (
	"fmt"

	"go-wyrm-hunt/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameOverState — экран поражения с достигнутым уровнем.
type GameOverState struct {
	sm    *StateMachine
	level int
}

func NewGameOverState(sm *StateMachine, level int) *GameOverState {
	return &GameOverState{sm: sm, level: level}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.sm.SetState(NewGameState(s.sm))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.SetState(NewMenuState(s.sm))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ebitenutil.DebugPrintAt(screen, "GAME OVER", config.ScreenWidth/2-30, config.ScreenHeight/2-20)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Reached level %d", s.level), config.ScreenWidth/2-50, config.ScreenHeight/2+10)
	ebitenutil.DebugPrintAt(screen, "Space - retry, Esc - menu", config.ScreenWidth/2-80, config.ScreenHeight/2+40)
}

func (s *GameOverState) Exit() {}
