// internal/types/types.go
package types

// ZoneID идентифицирует одну из четырёх зон карты.
type ZoneID int

const (
	ZoneVolcanic ZoneID = iota
	ZoneGlacial
	ZoneCanopy
	ZoneReef
)

func (z ZoneID) String() string {
	switch z {
	case ZoneVolcanic:
		return "volcanic"
	case ZoneGlacial:
		return "glacial"
	case ZoneCanopy:
		return "canopy"
	case ZoneReef:
		return "reef"
	}
	return "unknown"
}

// Rect — осевой прямоугольник зоны. Неизменяемый в течение уровня.
type Rect struct {
	X, Y, W, H float64
}

// Contains проверяет, лежит ли точка внутри прямоугольника.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// ClampPoint возвращает ближайшую к (x, y) точку внутри прямоугольника
// с отступом margin от краёв.
func (r Rect) ClampPoint(x, y, margin float64) (float64, float64) {
	if x < r.X+margin {
		x = r.X + margin
	} else if x > r.X+r.W-margin {
		x = r.X + r.W - margin
	}
	if y < r.Y+margin {
		y = r.Y + margin
	} else if y > r.Y+r.H-margin {
		y = r.Y + r.H - margin
	}
	return x, y
}

// Center возвращает центр прямоугольника.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}
