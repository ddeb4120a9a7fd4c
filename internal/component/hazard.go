// internal/component/hazard.go
package component

// LavaTrail — лавовая капля за магмавирмом. Распадается за MaxLife секунд
// и всё это время выталкивает игрока из своего круга.
type LavaTrail struct {
	X, Y    float64
	Radius  float64
	Life    float64
	MaxLife float64
}

// Geyser — циклический гейзер: спит, извергается, повторяет. Фаза у каждого
// своя, начальный разброс случайный.
type Geyser struct {
	X, Y     float64
	Radius   float64
	Timer    float64
	Erupting bool
}

// FrozenTile — постоянная замёрзшая плита, статичный коллайдер.
type FrozenTile struct {
	X, Y, W, H float64
}

// IceBullet — снаряд фроствирма. Убирается за границей карты или при
// попадании в игрока.
type IceBullet struct {
	X, Y   float64
	VX, VY float64
	Radius float64
}

// Bouncer — отскакивающее препятствие рифа. Живёт весь уровень.
type Bouncer struct {
	X, Y   float64
	VX, VY float64
	Radius float64
}

// Foliage — куст зоны крон. Может быть носителем спрятанного яйца.
type Foliage struct {
	X, Y   float64
	Radius float64
}
