// internal/component/egg.go
package component

// Egg — общая часть яйца. Collected терминален: собранное яйцо навсегда
// исключается из симуляции и отрисовки до конца уровня.
type Egg struct {
	X, Y      float64
	Radius    float64
	Collected bool
}

// VolcanicEgg лежит на центральном гейзере и доступно только пока тот спит.
type VolcanicEgg struct {
	Egg
	GeyserIndex int
}

// GlacialEgg размораживается близостью: таймер растёт рядом с игроком и
// тает вдвое медленнее, когда игрок отходит.
type GlacialEgg struct {
	Egg
	ThawTimer float64
}

// CanopyEgg привязано к кусту-носителю и видно только вблизи. Носитель
// хранится индексом, а не ссылкой: кусты могут пересоздаваться.
type CanopyEgg struct {
	Egg
	HostIndex int // -1 — носителя нет
	Visible   bool
}

// ReefEgg дрейфует с постоянной скоростью и отскакивает от стен зоны.
type ReefEgg struct {
	Egg
	VX, VY float64
}
