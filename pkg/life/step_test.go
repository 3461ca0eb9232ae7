package life

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepLoneCellDies(t *testing.T) {
	g := mustDecode(t, "000", "010", "000")
	next := Step(g)
	assert.Equal(t, 0, next.LiveCells())
	assert.Equal(t, 3, next.Width())
	assert.Equal(t, 3, next.Height())
}

func TestStepBlockIsStill(t *testing.T) {
	g := mustDecode(t,
		"0000",
		"0110",
		"0110",
		"0000",
	)
	assert.True(t, Step(g).Equal(g))
}

func TestStepBlinkerOscillates(t *testing.T) {
	horizontal := mustDecode(t,
		"00000",
		"00000",
		"01110",
		"00000",
		"00000",
	)
	vertical := mustDecode(t,
		"00000",
		"00100",
		"00100",
		"00100",
		"00000",
	)

	first := Step(horizontal)
	assert.Equal(t, Encode(vertical), Encode(first))
	second := Step(first)
	assert.Equal(t, Encode(horizontal), Encode(second))

	// The input snapshot is never touched.
	assert.Equal(t, []string{"00000", "00000", "01110", "00000", "00000"}, Encode(horizontal))
}

func TestStepBlinkerOnNarrowTorus(t *testing.T) {
	g := mustDecode(t,
		"00000",
		"01110",
		"00000",
	)
	next := Step(g)
	// Rows 0 and 2 are adjacent across the seam on a height-3 torus, so the
	// vertical phase fills the whole middle column and the blinker turns into
	// a band instead of oscillating.
	assert.Equal(t, []string{"00100", "00100", "00100"}, Encode(next))
	assert.Equal(t, []string{"01110", "01110", "01110"}, Encode(Step(next)))
}

func TestStepCornerBirthNeedsWrap(t *testing.T) {
	g := mustDecode(t,
		"0001",
		"0000",
		"0000",
		"1001",
	)
	next := Step(g)
	alive, err := next.Get(0, 0)
	require.NoError(t, err)
	assert.True(t, alive, "corner cell must see its three wrapped neighbours")
	// The four corners form a block across the seam and stay alive.
	assert.Equal(t, []string{"1001", "0000", "0000", "1001"}, Encode(next))
}

func TestStepDeterministic(t *testing.T) {
	a, err := Random(23, 17, 7, 0.4)
	require.NoError(t, err)
	b, err := Random(23, 17, 7, 0.4)
	require.NoError(t, err)
	require.True(t, a.Equal(b))

	for i := 0; i < 10; i++ {
		a, b = Step(a), Step(b)
		require.True(t, a.Equal(b), "generation %d", i+1)
	}
}

func TestStepN(t *testing.T) {
	g := mustDecode(t,
		"00000",
		"00000",
		"01110",
		"00000",
		"00000",
	)
	assert.Same(t, g, StepN(g, 0))
	assert.Same(t, g, StepN(g, -2))
	assert.True(t, StepN(g, 4).Equal(g))
	assert.True(t, StepN(g, 3).Equal(Step(g)))
}

func TestRandom(t *testing.T) {
	g, err := Random(10, 10, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, g.LiveCells())

	g, err = Random(10, 10, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 100, g.LiveCells())

	_, err = Random(0, 10, 1, 0.5)
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = Random(math.MaxInt/2+1, 2, 1, 0.5)
	assert.ErrorIs(t, err, ErrDimensionMismatch, "area overflows int")
}
