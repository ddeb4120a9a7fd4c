// internal/ui/egg_counter.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EggCounter — четыре кружка в цветах зон; собранные заливаются.
type EggCounter struct {
	X, Y    float32
	Radius  float32
	Spacing float32
	Colors  [4]color.RGBA
}

func NewEggCounter(x, y, radius, spacing float32, colors [4]color.RGBA) *EggCounter {
	return &EggCounter{X: x, Y: y, Radius: radius, Spacing: spacing, Colors: colors}
}

func (c *EggCounter) Draw(screen *ebiten.Image, collected [4]bool) {
	for i := 0; i < 4; i++ {
		x := c.X + float32(i)*c.Spacing
		if collected[i] {
			vector.DrawFilledCircle(screen, x, c.Y, c.Radius, c.Colors[i], true)
		} else {
			vector.StrokeCircle(screen, x, c.Y, c.Radius, 2, c.Colors[i], true)
		}
	}
}
