// cmd/zone_viewer_raylib/main.go
//
// Отдельный просмотрщик статичной геометрии карты: четыре зоны, сетка
// гейзеров и кольца усадки убежища. Удобен для подбора констант в
// internal/config без запуска игры.
package main

import (
	"fmt"
	"image/color"

	"go-wyrm-hunt/internal/config"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func toRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func main() {
	const screenWidth = 1280
	const screenHeight = 720

	rl.InitWindow(screenWidth, screenHeight, "Zone Viewer | WASD - Pan, Mouse Wheel - Zoom")
	rl.SetTargetFPS(60)

	camera := rl.Camera2D{
		Offset: rl.NewVector2(screenWidth/2, screenHeight/2),
		Target: rl.NewVector2(float32(config.MapWidth)/2, float32(config.MapHeight)/2),
		Zoom:   0.3,
	}

	zoneColors := []rl.Color{
		toRL(config.VolcanicFloorColor),
		toRL(config.GlacialFloorColor),
		toRL(config.CanopyFloorColor),
		toRL(config.ReefFloorColor),
	}
	zoneNames := []string{"VOLCANIC", "GLACIAL", "CANOPY", "REEF"}
	zoneOrigins := [][2]float32{
		{0, 0},
		{float32(config.ZoneWidth), 0},
		{0, float32(config.ZoneHeight)},
		{float32(config.ZoneWidth), float32(config.ZoneHeight)},
	}

	for !rl.WindowShouldClose() {
		// Панорамирование и зум
		pan := 600 * rl.GetFrameTime() / camera.Zoom
		if rl.IsKeyDown(rl.KeyW) {
			camera.Target.Y -= pan
		}
		if rl.IsKeyDown(rl.KeyS) {
			camera.Target.Y += pan
		}
		if rl.IsKeyDown(rl.KeyA) {
			camera.Target.X -= pan
		}
		if rl.IsKeyDown(rl.KeyD) {
			camera.Target.X += pan
		}
		wheel := rl.GetMouseWheelMove()
		if wheel != 0 {
			camera.Zoom += wheel * 0.05
			if camera.Zoom < 0.1 {
				camera.Zoom = 0.1
			} else if camera.Zoom > 2.0 {
				camera.Zoom = 2.0
			}
		}

		rl.BeginDrawing()
		rl.ClearBackground(toRL(config.BackgroundColor))
		rl.BeginMode2D(camera)

		for i, o := range zoneOrigins {
			rl.DrawRectangle(int32(o[0]), int32(o[1]), int32(config.ZoneWidth), int32(config.ZoneHeight), zoneColors[i])
			rl.DrawRectangleLinesEx(rl.NewRectangle(o[0], o[1], float32(config.ZoneWidth), float32(config.ZoneHeight)), 4, toRL(config.ZoneBorderColor))
			rl.DrawText(zoneNames[i], int32(o[0])+40, int32(o[1])+40, 60, rl.Fade(rl.White, 0.4))

			// Квинкункс гейзеров есть только в вулканической зоне.
			if i == 0 {
				cx := o[0] + float32(config.ZoneWidth)/2
				cy := o[1] + float32(config.ZoneHeight)/2
				for _, g := range [][2]float32{{0, 0}, {-1, -1}, {1, -1}, {-1, 1}, {1, 1}} {
					rl.DrawCircleLines(int32(cx+g[0]*config.GeyserGridOffset), int32(cy+g[1]*config.GeyserGridOffset), config.GeyserRadius, toRL(config.GeyserEruptColor))
				}
			}
		}

		// Кольца усадки убежища: стартовый радиус и три входа по 20%.
		mx := float32(config.MapWidth) / 2
		my := float32(config.MapHeight) / 2
		r := float32(config.SafeZoneRadius)
		for i := 0; i <= config.SafeZoneMaxUses; i++ {
			rl.DrawCircleLines(int32(mx), int32(my), r, toRL(config.SafeZoneOutlineColor))
			r *= config.SafeZoneShrink
		}

		rl.EndMode2D()
		rl.DrawText(fmt.Sprintf("zoom %.2f", camera.Zoom), 10, 10, 20, rl.White)
		rl.EndDrawing()
	}
	rl.CloseWindow()
}
