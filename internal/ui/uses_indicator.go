// internal/ui/uses_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// UsesIndicator показывает оставшиеся входы в убежище.
type UsesIndicator struct {
	X, Y    float32
	Radius  float32
	Spacing float32
	MaxUses int
	Color   color.RGBA
}

func NewUsesIndicator(x, y, radius, spacing float32, maxUses int, c color.RGBA) *UsesIndicator {
	return &UsesIndicator{X: x, Y: y, Radius: radius, Spacing: spacing, MaxUses: maxUses, Color: c}
}

func (u *UsesIndicator) Draw(screen *ebiten.Image, remaining int) {
	for i := 0; i < u.MaxUses; i++ {
		x := u.X + float32(i)*u.Spacing
		if i < remaining {
			vector.DrawFilledCircle(screen, x, u.Y, u.Radius, u.Color, true)
		} else {
			dimmed := u.Color
			dimmed.A = 70
			vector.StrokeCircle(screen, x, u.Y, u.Radius, 1.5, dimmed, true)
		}
	}
}
