package spread_test

import (
	"testing"

	"github.com/katalvlaran/chipmux/bitvector"
	"github.com/katalvlaran/chipmux/codebook"
	"github.com/katalvlaran/chipmux/grid"
	"github.com/katalvlaran/chipmux/spread"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSpread_Default checks the spread grid for "1101" under the default book.
func TestSpread_Default(t *testing.T) {
	bits, err := bitvector.FromString("1101", 2)
	require.NoError(t, err)

	out, err := spread.Spread(bits, codebook.Default())
	require.NoError(t, err)
	assert.Equal(t, [][]int{
		{1, -1, 1, -1},
		{-1, -1, 1, 1},
	}, out.ToRows())
}

// TestSpread_SignLaw verifies each emitted block against the first K code
// entries for both rows of the default book and both bit values.
func TestSpread_SignLaw(t *testing.T) {
	book := codebook.Default()
	k := book.SpreadWidth()

	for _, input := range []string{"0000", "1111", "1001", "0110"} {
		bits, err := bitvector.FromString(input, k)
		require.NoError(t, err)
		out, err := spread.Spread(bits, book)
		require.NoError(t, err)
		require.Equal(t, bits.Cols()*k, out.Cols(), input)

		for i := 0; i < k; i++ {
			code, _ := book.Row(i)
			row, _ := out.Row(i)
			for j := 0; j < bits.Cols(); j++ {
				b, _ := bits.At(i, j)
				for c := 0; c < k; c++ {
					want := -code[c]
					if b > 0 {
						want = code[c]
					}
					assert.Equal(t, want, row[j*k+c], "input=%s row=%d bit=%d chip=%d", input, i, j, c)
				}
			}
		}
	}
}

// TestSpread_IgnoresTrailingCode checks that entries at index >= K are unused.
func TestSpread_IgnoresTrailingCode(t *testing.T) {
	a, err := codebook.New([][]int{{1, -1, 7}, {1, 1, -9}})
	require.NoError(t, err)
	b := codebook.Default()

	bits, err := bitvector.FromString("101100", 2)
	require.NoError(t, err)

	outA, err := spread.Spread(bits, a)
	require.NoError(t, err)
	outB, err := spread.Spread(bits, b)
	require.NoError(t, err)
	assert.True(t, outA.Equal(outB))
}

// TestSpread_Errors covers nil inputs, row mismatch and short codes.
func TestSpread_Errors(t *testing.T) {
	_, err := spread.Spread(nil, codebook.Default())
	require.ErrorIs(t, err, spread.ErrNilInput)
	require.ErrorIs(t, err, grid.ErrNilGrid)

	empty, err := grid.NewDense(0, 0)
	require.NoError(t, err)
	_, err = spread.Spread(empty, nil)
	require.ErrorIs(t, err, spread.ErrNilInput)
	require.NotErrorIs(t, err, grid.ErrNilGrid)

	bits, err := bitvector.FromString("111", 3)
	require.NoError(t, err)
	_, err = spread.Spread(bits, codebook.Default())
	require.ErrorIs(t, err, spread.ErrRowMismatch)

	short, err := codebook.New([][]int{{1}, {1}})
	require.NoError(t, err)
	bits, err = bitvector.FromString("10", 2)
	require.NoError(t, err)
	_, err = spread.Spread(bits, short)
	require.ErrorIs(t, err, spread.ErrShortCode)
}

// TestSpread_Degenerate covers K=0 and B=0.
func TestSpread_Degenerate(t *testing.T) {
	empty, err := grid.NewDense(0, 0)
	require.NoError(t, err)
	out, err := spread.Spread(empty, codebook.Empty())
	require.NoError(t, err)
	assert.Equal(t, 0, out.Rows())

	bits, err := bitvector.FromString("", 2)
	require.NoError(t, err)
	out, err = spread.Spread(bits, codebook.Default())
	require.NoError(t, err)
	assert.Equal(t, 2, out.Rows())
	assert.Equal(t, 0, out.Cols())
}

// TestBlock checks the per-bit block helper including width clamping.
func TestBlock(t *testing.T) {
	code := []int{1, -1, 2}
	assert.Equal(t, []int{1, -1}, spread.Block(1, code, 2))
	assert.Equal(t, []int{-1, 1}, spread.Block(0, code, 2))
	assert.Equal(t, []int{-1, 1}, spread.Block(-3, code, 2), "negative bits take the negative branch")
	assert.Equal(t, []int{1, -1, 2}, spread.Block(5, code, 9))
	assert.Empty(t, spread.Block(1, code, -1))
}
