package mux

import (
	"fmt"

	"github.com/katalvlaran/chipmux/bitvector"
	"github.com/katalvlaran/chipmux/spread"
)

// Multiplex encodes a bit string into a composite signal.
//
// Implementation:
//   - Stage 1 (Validate): ctx non-nil; Random sources fail with ErrUnimplemented.
//   - Stage 2 (Reset): restore the fixed book and key counter.
//   - Stage 3 (Build): partition input into K rows (trailing symbols dropped).
//   - Stage 4 (Spread): expand every bit into a signed block of K chips.
//   - Stage 5 (Combine): superpose rows with column index mod L.
//
// An empty input, K == 0 or L == 0 yields an empty Signal and no error.
// The result is deterministic for a given input and fixed book.
func Multiplex(ctx *Context, input string, src CodeSource) (Signal, error) {
	return multiplex(ctx, []rune(input), src)
}

// MultiplexChars is Multiplex for a raw character array. Each character is
// mapped by its offset from '0' exactly as in a bit string.
func MultiplexChars(ctx *Context, chars []rune, src CodeSource) (Signal, error) {
	return multiplex(ctx, chars, src)
}

func multiplex(ctx *Context, symbols []rune, src CodeSource) (Signal, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	if src.IsRandom() {
		return nil, fmt.Errorf("mux.Multiplex(%s): %w", src, ErrUnimplemented)
	}
	ctx.Reset()

	book := ctx.book
	k, l := book.SpreadWidth(), book.CombineModulus()
	if k == 0 || l == 0 {
		return Signal{}, nil
	}

	if dropped := bitvector.Dropped(len(symbols), k); dropped > 0 {
		if ctx.opts.OnTruncate != nil {
			ctx.opts.OnTruncate(len(symbols), dropped)
		}
	}
	bits, err := bitvector.Build(symbols, k)
	if err != nil {
		return nil, fmt.Errorf("mux.Multiplex: %w", err)
	}
	chips, err := spread.Spread(bits, book)
	if err != nil {
		return nil, fmt.Errorf("mux.Multiplex: %w", err)
	}
	if ctx.opts.OnSpread != nil {
		ctx.opts.OnSpread(chips.Clone())
	}

	return Combine(chips, book)
}
