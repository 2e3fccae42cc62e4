// Package chipmux is a small chip-code spreading and combining engine.
//
// 🚀 What is chipmux?
//
//	A bit stream is split across the K rows of a chip code book. Every bit
//	is spread into a signed block of chips, and the spread rows are summed
//	into one composite integer signal.
//
// Under the hood, everything is organized in subpackages, leaves first:
//
//	grid/      row-major integer grid shared by every stage
//	codebook/  the K×L chip code book (default K=2, L=3)
//	bitvector/ input symbols → K×B bit grid (silent tail truncation)
//	spread/    K×B bits → K×(B·K) chips, sign chosen by each bit
//	mux/       Context, CodeSource, Combine and the Multiplex entry point
//	textcodec/ text/byte conversions and signal formatting around the core
//	cmd/chipmux command line front end
//
// Quick example:
//
//	ctx, _ := mux.NewContext()
//	sig, _ := mux.Multiplex(ctx, "1101", mux.Fixed()) // [0 0 4 0]
//
// There is no inverse transform: chipmux only spreads and combines.
//
//	go get github.com/katalvlaran/chipmux
package chipmux
