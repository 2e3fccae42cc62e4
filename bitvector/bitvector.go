// Package bitvector partitions an input symbol stream into a K×B bit grid.
//
// The stream is cut into K consecutive groups of B = ⌊len/K⌋ symbols; row i
// holds symbols [i·B, (i+1)·B). Each symbol is mapped to an integer by
// subtracting the code point of '0'. The mapping is not validated: '0' and
// '1' give 0 and 1, any other character gives its offset from '0'.
//
// When len is not a multiple of K, the trailing len mod K symbols are
// dropped without an error. Use Dropped to learn how many.
package bitvector

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/chipmux/grid"
)

// ErrBadPartitions is returned when the partition count is negative.
var ErrBadPartitions = errors.New("bitvector: partitions must be >= 0")

// zero is the code point subtracted from every symbol.
const zero = '0'

// Build partitions symbols into a partitions×B grid, B = len(symbols)/partitions.
//
// Behavior highlights:
//   - partitions == 0 yields a 0×0 grid and no error.
//   - An empty input yields a partitions×0 grid.
//   - Trailing symbols beyond partitions·B are ignored.
//
// Complexity: O(K·B).
func Build(symbols []rune, partitions int) (*grid.Dense, error) {
	if partitions < 0 {
		return nil, fmt.Errorf("bitvector.Build(%d): %w", partitions, ErrBadPartitions)
	}
	if partitions == 0 {
		return grid.NewDense(0, 0)
	}

	perPart := len(symbols) / partitions
	bits, err := grid.NewDense(partitions, perPart)
	if err != nil {
		return nil, err
	}
	for i := 0; i < partitions; i++ {
		for j := 0; j < perPart; j++ {
			if err = bits.Set(i, j, int(symbols[i*perPart+j]-zero)); err != nil {
				return nil, err
			}
		}
	}

	return bits, nil
}

// FromString builds the grid from a bit string such as "1101".
func FromString(s string, partitions int) (*grid.Dense, error) {
	return Build([]rune(s), partitions)
}

// FromChars builds the grid from an arbitrary character array. The mapping
// is identical to FromString; non-digit characters are kept as their raw
// offset from '0'.
func FromChars(chars []rune, partitions int) (*grid.Dense, error) {
	return Build(chars, partitions)
}

// Dropped returns how many trailing symbols of an n-symbol input Build
// ignores for the given partition count. It is 0 when partitions <= 0.
func Dropped(n, partitions int) int {
	if partitions <= 0 {
		return 0
	}

	return n % partitions
}
