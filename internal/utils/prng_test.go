// internal/utils/prng_test.go
package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPRNGIsDeterministicPerSeed(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestPRNGRanges(t *testing.T) {
	s := NewPRNGService(1)
	for i := 0; i < 1000; i++ {
		v := s.Range(10, 20)
		assert.GreaterOrEqual(t, v, 10.0)
		assert.Less(t, v, 20.0)

		a := s.Angle()
		assert.GreaterOrEqual(t, a, 0.0)
		assert.Less(t, a, 2*math.Pi)

		d := s.Spread(5)
		assert.GreaterOrEqual(t, d, -5.0)
		assert.LessOrEqual(t, d, 5.0)
	}
}
