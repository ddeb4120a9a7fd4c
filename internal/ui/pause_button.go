// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton — круглая кнопка паузы с лёгкой «пружиной» после клика.
type PauseButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	IsPaused       bool
	PauseColor     color.Color
	PlayColor      color.Color
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.Color) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	if b.IsPaused {
		// Треугольник (play) из трёх линий — vector не рисует полигоны.
		c := b.PlayColor
		vector.StrokeLine(screen, b.X-size, b.Y-size*1.2, b.X-size, b.Y+size*1.2, 3, c, true)
		vector.StrokeLine(screen, b.X-size, b.Y-size*1.2, b.X+size, b.Y, 3, c, true)
		vector.StrokeLine(screen, b.X-size, b.Y+size*1.2, b.X+size, b.Y, 3, c, true)
	} else {
		// Два прямоугольника (pause)
		c := b.PauseColor
		width := size * 0.6
		height := size * 2.0
		spacing := size * 0.4
		vector.DrawFilledRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, c, true)
		vector.DrawFilledRect(screen, b.X+spacing/2, b.Y-height/2, width, height, c, true)
	}
}

// IsInside проверяет попадание точки в кнопку.
func (b *PauseButton) IsInside(mx, my float32) bool {
	dx := mx - b.X
	dy := my - b.Y
	return dx*dx+dy*dy <= b.Size*b.Size
}

func (b *PauseButton) TogglePause() {
	b.IsPaused = !b.IsPaused
	b.LastClickTime = time.Now()
	b.LastToggleTime = time.Now()
}

func (b *PauseButton) SetPaused(paused bool) {
	b.IsPaused = paused
}
