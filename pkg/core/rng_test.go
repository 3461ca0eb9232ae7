package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(42), NewRNG(42)
	for i := 0; i < 64; i++ {
		assert.Equal(t, a.Chance(0.5), b.Chance(0.5))
		assert.Equal(t, a.Chance(0.3), b.Chance(0.3))
	}
}

func TestRNGChanceBounds(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 32; i++ {
		assert.False(t, r.Chance(0))
		assert.False(t, r.Chance(-1))
		assert.True(t, r.Chance(1))
		assert.True(t, r.Chance(2))
	}
}
