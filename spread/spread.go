package spread

import (
	"errors"
	"fmt"

	"github.com/chronos-tachyon/assert"

	"github.com/katalvlaran/chipmux/codebook"
	"github.com/katalvlaran/chipmux/grid"
)

// Sentinel errors for Spread.
var (
	// ErrNilInput is returned when the bit grid or the book is nil.
	ErrNilInput = errors.New("spread: nil bit grid or code book")

	// ErrRowMismatch is returned when the bit grid does not have one row per code.
	ErrRowMismatch = errors.New("spread: bit grid rows differ from code book rows")

	// ErrShortCode is returned when code rows are shorter than the spread width.
	ErrShortCode = errors.New("spread: code rows shorter than spread width")
)

// Spread expands bits (K×B) with book (K×L) into a K×(B·K) grid.
// Implementation:
//   - Stage 1: validate inputs and shapes.
//   - Stage 2: for each row keep a cursor; for each bit emit a signed block.
//
// Errors:
//   - ErrNilInput, ErrRowMismatch, ErrShortCode.
//
// Complexity: O(K·B·K).
func Spread(bits *grid.Dense, book *codebook.Book) (*grid.Dense, error) {
	if bits == nil {
		return nil, fmt.Errorf("spread.Spread: %w: %w", ErrNilInput, grid.ErrNilGrid)
	}
	if book == nil {
		return nil, fmt.Errorf("spread.Spread: %w", ErrNilInput)
	}
	width := book.SpreadWidth()
	if bits.Rows() != width {
		return nil, fmt.Errorf("spread.Spread: %d bit rows, %d codes: %w", bits.Rows(), width, ErrRowMismatch)
	}
	if width > 0 && book.CombineModulus() < width {
		return nil, fmt.Errorf("spread.Spread: code length %d < width %d: %w", book.CombineModulus(), width, ErrShortCode)
	}

	out, err := grid.NewDense(width, bits.Cols()*width)
	if err != nil {
		return nil, err
	}

	var (
		i, j, cursor int
		bit          int
		code         []int
	)
	for i = 0; i < width; i++ {
		if code, err = book.Row(i); err != nil {
			return nil, err
		}
		cursor = 0
		for j = 0; j < bits.Cols(); j++ {
			if bit, err = bits.At(i, j); err != nil {
				return nil, err
			}
			if cursor, err = writeBlock(out, i, cursor, bit, code, width); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// Block returns the chip block emitted for a single bit: the first width
// entries of code, negated unless bit > 0. width is clamped to len(code).
func Block(bit int, code []int, width int) []int {
	if width > len(code) {
		width = len(code)
	}
	if width < 0 {
		width = 0
	}
	sign := -1
	if bit > 0 {
		sign = 1
	}
	out := make([]int, width)
	for k := 0; k < width; k++ {
		out[k] = sign * code[k]
	}

	return out
}

// writeBlock writes the block for bit into row i of out starting at cursor
// and returns the advanced cursor.
func writeBlock(out *grid.Dense, i, cursor, bit int, code []int, width int) (int, error) {
	assert.Assertf(cursor+width <= out.Cols(), "cursor %d + width %d > cols %d", cursor, width, out.Cols())

	for _, v := range Block(bit, code, width) {
		if err := out.Set(i, cursor, v); err != nil {
			return cursor, err
		}
		cursor++
	}

	return cursor, nil
}
