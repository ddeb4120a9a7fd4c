// internal/system/utils.go
package system

import (
	"math"

	"go-wyrm-hunt/internal/types"
)

// Dist — евклидово расстояние между двумя точками.
func Dist(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Direction возвращает единичный вектор от (fromX, fromY) к (toX, toY).
// При нулевой дистанции подставляется 1 — получаем нулевой вектор,
// а не NaN.
func Direction(fromX, fromY, toX, toY float64) (float64, float64) {
	dx := toX - fromX
	dy := toY - fromY
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		dist = 1
	}
	return dx / dist, dy / dist
}

// SeekToward сдвигает точку к цели на step, не перелетая её.
func SeekToward(x, y, tx, ty, step float64) (float64, float64) {
	dx := tx - x
	dy := ty - y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return x, y
	}
	if dist <= step {
		return tx, ty
	}
	return x + dx/dist*step, y + dy/dist*step
}

// PushOutOfCircle выталкивает круг (px, py, pr) из круга (cx, cy, cr)
// на дистанцию cr+pr от центра. Возвращает новую позицию и факт толчка.
func PushOutOfCircle(px, py, pr, cx, cy, cr float64) (float64, float64, bool) {
	dx := px - cx
	dy := py - cy
	dist := math.Hypot(dx, dy)
	min := cr + pr
	if dist >= min {
		return px, py, false
	}
	if dist == 0 {
		dist = 1
	}
	return cx + dx/dist*min, cy + dy/dist*min, true
}

// ResolveCircleRect выталкивает круг из прямоугольника по оси минимального
// проникновения. Одна плита, одна итерация — без сходимости.
func ResolveCircleRect(px, py, pr float64, r types.Rect) (float64, float64, bool) {
	cx := r.X + r.W/2
	cy := r.Y + r.H/2
	dx := px - cx
	dy := py - cy
	penX := r.W/2 + pr - math.Abs(dx)
	penY := r.H/2 + pr - math.Abs(dy)
	if penX <= 0 || penY <= 0 {
		return px, py, false
	}
	if penX < penY {
		if dx < 0 {
			return px - penX, py, true
		}
		return px + penX, py, true
	}
	if dy < 0 {
		return px, py - penY, true
	}
	return px, py + penY, true
}

// Knockback отталкивает точку от (fromX, fromY) на фиксированную дистанцию.
func Knockback(x, y, fromX, fromY, dist float64) (float64, float64) {
	nx, ny := Direction(fromX, fromY, x, y)
	return x + nx*dist, y + ny*dist
}
