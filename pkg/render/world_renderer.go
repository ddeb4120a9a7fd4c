// pkg/render/world_renderer.go
package render

import (
	"fmt"
	"image/color"

	"go-wyrm-hunt/internal/config"
	"go-wyrm-hunt/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// WorldRenderer рисует статичный задник карты: полы четырёх зон и их
// границы. Задник рендерится один раз при создании и дальше кладётся
// одним вызовом со смещением камеры.
type WorldRenderer struct {
	zones    [4]types.Rect
	colors   *MapColors
	mapImage *ebiten.Image
	fontFace font.Face
}

func NewWorldRenderer(zones [4]types.Rect, colors *MapColors) (*WorldRenderer, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	const fontSize = 14
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}

	r := &WorldRenderer{
		zones:    zones,
		colors:   colors,
		mapImage: ebiten.NewImage(int(config.MapWidth), int(config.MapHeight)),
		fontFace: face,
	}
	r.renderMapImage()
	return r, nil
}

// renderMapImage создаёт предрендеренное изображение задника.
func (r *WorldRenderer) renderMapImage() {
	r.mapImage.Fill(r.colors.BackgroundColor)

	floors := [4]color.RGBA{
		r.colors.VolcanicFloor,
		r.colors.GlacialFloor,
		r.colors.CanopyFloor,
		r.colors.ReefFloor,
	}
	for i, z := range r.zones {
		vector.DrawFilledRect(r.mapImage, float32(z.X), float32(z.Y), float32(z.W), float32(z.H), floors[i], true)
	}
	for _, z := range r.zones {
		vector.StrokeRect(r.mapImage, float32(z.X), float32(z.Y), float32(z.W), float32(z.H), r.colors.BorderWidth, r.colors.BorderColor, true)
	}
}

// Draw кладёт задник со смещением камеры.
func (r *WorldRenderer) Draw(screen *ebiten.Image, camX, camY float64) {
	screen.Fill(r.colors.BackgroundColor)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-camX, -camY)
	screen.DrawImage(r.mapImage, op)
}

// Face — шрифт для HUD.
func (r *WorldRenderer) Face() font.Face {
	return r.fontFace
}
