package textcodec_test

import (
	"testing"

	"github.com/katalvlaran/chipmux/textcodec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBinaryDigits_DropsLeadingZeros documents the naive formatting: 1 -> "1", 2 -> "10".
func TestBinaryDigits_DropsLeadingZeros(t *testing.T) {
	assert.Equal(t, "110", textcodec.BinaryDigits([]byte{0b00000001, 0b00000010}))
	assert.Equal(t, "0", textcodec.BinaryDigits([]byte{0}))
	assert.Equal(t, "", textcodec.BinaryDigits(nil))
}

// TestPaddedBinaryDigits checks fixed-width rendering and width clamping.
func TestPaddedBinaryDigits(t *testing.T) {
	assert.Equal(t, "0000000100000010", textcodec.PaddedBinaryDigits([]byte{1, 2}, 8))
	assert.Equal(t, "0110", textcodec.PaddedBinaryDigits([]byte{1, 2}, 2))
	assert.Equal(t, "11111111", textcodec.PaddedBinaryDigits([]byte{0xff}, 99))
	assert.Equal(t, "1", textcodec.PaddedBinaryDigits([]byte{0xff}, 0))
}

// TestConcatDecimal joins elements without separators.
func TestConcatDecimal(t *testing.T) {
	assert.Equal(t, "0040", textcodec.ConcatDecimal([]int{0, 0, 4, 0}))
	assert.Equal(t, "-2-2-40", textcodec.ConcatDecimal([]int{-2, -2, -4, 0}))
	assert.Equal(t, "", textcodec.ConcatDecimal(nil))
}

// TestUTF16LE verifies little-endian code units without BOM.
func TestUTF16LE(t *testing.T) {
	b, err := textcodec.UTF16LE("A€")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x41, 0x00, 0xac, 0x20}, b)
}

// TestRender covers each mode.
func TestRender(t *testing.T) {
	s, err := textcodec.Render("A", textcodec.NaiveBinary)
	require.NoError(t, err)
	assert.Equal(t, "10000010", s) // 0x41 -> "1000001", 0x00 -> "0"

	s, err = textcodec.Render("A", textcodec.ByteBits)
	require.NoError(t, err)
	assert.Equal(t, "0100000100000000", s)

	for _, m := range []textcodec.Mode{textcodec.AlphabetChars, textcodec.AlphabetBits, textcodec.Mode(42)} {
		_, err = textcodec.Render("A", m)
		require.ErrorIs(t, err, textcodec.ErrUnsupportedMode, m.String())
	}
}

// TestParseMode round-trips every named mode.
func TestParseMode(t *testing.T) {
	for _, m := range []textcodec.Mode{textcodec.NaiveBinary, textcodec.AlphabetChars, textcodec.AlphabetBits, textcodec.ByteBits} {
		got, err := textcodec.ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	_, err := textcodec.ParseMode("morse")
	require.ErrorIs(t, err, textcodec.ErrUnsupportedMode)
}

// TestChars splits by character, not byte.
func TestChars(t *testing.T) {
	assert.Equal(t, []rune{'1', '€'}, textcodec.Chars("1€"))
}

// TestEncodeJSON checks the document layout, including an empty signal.
func TestEncodeJSON(t *testing.T) {
	b, err := textcodec.EncodeJSON("in", []int{0, 0, 4, -1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"in","length":4,"signal":[0,0,4,-1]}`, string(b))

	b, err = textcodec.EncodeJSON("", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"","length":0,"signal":[]}`, string(b))
}
