package mux

import (
	"fmt"

	"github.com/katalvlaran/chipmux/codebook"
	"github.com/katalvlaran/chipmux/grid"
)

// Combine superposes the rows of a K×W spread grid into one length-W signal:
//
//	out[c] = Σ_{i<K} book[i][c mod L] · spread[i][c]
//
// Behavior highlights:
//   - K == 0 or L == 0 yields an empty Signal and no error.
//   - The column index wraps modulo L (CombineModulus), independent of the
//     spread width K.
//
// Errors:
//   - ErrNilInput, ErrRowMismatch.
//
// Complexity: O(K·W).
func Combine(spread *grid.Dense, book *codebook.Book) (Signal, error) {
	if spread == nil {
		return nil, fmt.Errorf("mux.Combine: %w: %w", ErrNilInput, grid.ErrNilGrid)
	}
	if book == nil {
		return nil, fmt.Errorf("mux.Combine: %w", ErrNilInput)
	}
	k, l := book.SpreadWidth(), book.CombineModulus()
	if k == 0 || l == 0 {
		return Signal{}, nil
	}
	if spread.Rows() != k {
		return nil, fmt.Errorf("mux.Combine: %d spread rows, %d codes: %w", spread.Rows(), k, ErrRowMismatch)
	}

	width := spread.Cols()
	out, err := grid.NewDense(1, width)
	if err != nil {
		return nil, err
	}

	var (
		i, c int
		v    int
		code []int
	)
	for i = 0; i < k; i++ {
		if code, err = book.Row(i); err != nil {
			return nil, err
		}
		for c = 0; c < width; c++ {
			if v, err = spread.At(i, c); err != nil {
				return nil, err
			}
			if err = out.Add(0, c, code[c%l]*v); err != nil {
				return nil, err
			}
		}
	}

	row, err := out.Row(0)
	if err != nil {
		return nil, err
	}

	return Signal(row), nil
}
