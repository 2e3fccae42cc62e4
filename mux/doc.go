// Package mux spreads a bit stream over a chip code book and combines the
// spread rows into one composite integer signal.
//
// Pipeline:
//
//	input ──bitvector.Build──▶ K×B bits ──spread.Spread──▶ K×(B·K) chips ──Combine──▶ Signal (B·K)
//
// Combining rule: out[c] = Σ_i book[i][c mod L] · spread[i][c], where K is the
// book's SpreadWidth and L its CombineModulus.
//
// ⚙️ Usage:
//
//	ctx, err := mux.NewContext()
//	if err != nil {
//		// handle ErrOptionViolation
//	}
//	sig, err := mux.Multiplex(ctx, "1101", mux.Fixed())
//	// sig == [0 0 4 0]
//
// State:
//
//	A Context owns the current code book and an auxiliary key counter. A
//	Fixed run calls Reset first, so results never depend on earlier calls.
//	A Random run fails with ErrUnimplemented and leaves the Context as is;
//	no code generator exists yet.
//
// Concurrency:
//
//	Nothing in this package locks. Give each goroutine its own Context, or
//	serialise access to a shared one.
//
// Errors:
//   - ErrNilContext: nil *Context.
//   - ErrUnimplemented: Random code source.
//   - ErrOptionViolation: invalid Option passed to NewContext.
//   - ErrNilInput, ErrRowMismatch: bad arguments to Combine.
//   - spread.ErrShortCode: 0 < L < K.
//
// Degenerate books (K=0 or L=0) and empty input give an empty Signal and no error.
package mux
