package codebook

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/chipmux/grid"
)

// Sentinel errors for code book construction.
var (
	// ErrRaggedRows is returned when code rows have different lengths.
	ErrRaggedRows = errors.New("codebook: code rows have different lengths")

	// ErrOutOfRange is returned by At and Row for invalid indices.
	ErrOutOfRange = errors.New("codebook: index out of range")
)

// defaultRows is the fixed chip code set restored by every non-random run.
var defaultRows = [][]int{
	{1, -1, 2},
	{1, 1, 2},
}

// Book is an immutable K×L set of chip codes.
// The zero value is the empty book (K=0, L=0).
type Book struct {
	codes *grid.Dense
}

// New builds a Book from rows. rows is copied. All rows must have the same
// length; a nil or empty slice yields the empty book (K=0).
func New(rows [][]int) (*Book, error) {
	g, err := grid.FromRows(rows)
	if err != nil {
		if errors.Is(err, grid.ErrRagged) {
			return nil, fmt.Errorf("codebook.New: %w", ErrRaggedRows)
		}
		return nil, fmt.Errorf("codebook.New: %w", err)
	}

	return &Book{codes: g}, nil
}

// Default returns a fresh copy of the default book (K=2, L=3).
func Default() *Book {
	b, _ := New(defaultRows) // constant input, cannot fail

	return b
}

// Empty returns the book with no rows (K=0, L=0).
func Empty() *Book {
	return &Book{codes: &grid.Dense{}}
}

// dense returns the backing grid. A zero-value or nil Book behaves as
// the empty book.
func (b *Book) dense() *grid.Dense {
	if b == nil || b.codes == nil {
		return &grid.Dense{}
	}

	return b.codes
}

// Rows returns K, the number of code rows.
func (b *Book) Rows() int { return b.dense().Rows() }

// Cols returns L, the length of every code row.
func (b *Book) Cols() int { return b.dense().Cols() }

// SpreadWidth is the number of chips each bit expands into. It equals K.
func (b *Book) SpreadWidth() int { return b.dense().Rows() }

// CombineModulus is the period of the combiner's column index. It equals L.
func (b *Book) CombineModulus() int { return b.dense().Cols() }

// At returns code value k of row i.
func (b *Book) At(i, k int) (int, error) {
	v, err := b.dense().At(i, k)
	if err != nil {
		return 0, fmt.Errorf("codebook.At(%d,%d): %w", i, k, ErrOutOfRange)
	}

	return v, nil
}

// Row returns a copy of code row i.
func (b *Book) Row(i int) ([]int, error) {
	r, err := b.dense().Row(i)
	if err != nil {
		return nil, fmt.Errorf("codebook.Row(%d): %w", i, ErrOutOfRange)
	}

	return r, nil
}

// Grid returns a copy of the book as a K×L grid.
func (b *Book) Grid() *grid.Dense { return b.dense().Clone() }

// Equal reports whether both books hold the same codes.
func (b *Book) Equal(other *Book) bool {
	if b == nil || other == nil {
		return b == other
	}

	return b.dense().Equal(other.dense())
}

// String renders one bracketed row per line.
func (b *Book) String() string { return b.dense().String() }
