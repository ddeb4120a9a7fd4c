// internal/component/safe_zone.go
package component

// SafeZone — сжимающееся убежище в центре карты. Радиус только убывает;
// после деактивации зона не возвращается до конца уровня.
type SafeZone struct {
	CenterX, CenterY float64
	Radius           float64
	Uses             int // потрачено входов
	MaxUses          int
	Active           bool
	PlayerInside     bool // «был внутри в прошлом кадре» — для детекции новых входов
}

// UsesRemaining — сколько входов осталось.
func (s *SafeZone) UsesRemaining() int {
	n := s.MaxUses - s.Uses
	if n < 0 {
		return 0
	}
	return n
}
