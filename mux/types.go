package mux

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/chipmux/codebook"
	"github.com/katalvlaran/chipmux/grid"
)

// Sentinel errors for multiplexing.
var (
	// ErrNilContext is returned when a nil *Context is passed to Multiplex.
	ErrNilContext = errors.New("mux: context is nil")

	// ErrUnimplemented is returned for the Random code source.
	ErrUnimplemented = errors.New("mux: random code generation not implemented")

	// ErrOptionViolation is returned by NewContext when an Option is invalid.
	ErrOptionViolation = errors.New("mux: invalid option supplied")

	// ErrNilInput is returned when Combine receives a nil grid or book.
	ErrNilInput = errors.New("mux: nil spread grid or code book")

	// ErrRowMismatch is returned when the spread grid rows differ from the book rows.
	ErrRowMismatch = errors.New("mux: spread grid rows differ from code book rows")
)

// Signal is the composite output of one multiplexing run.
type Signal []int

// sourceKind tags the variant held by a CodeSource.
type sourceKind int

const (
	sourceFixed sourceKind = iota
	sourceRandom
)

// CodeSource selects where the code book comes from: Fixed() or Random(seed).
// The zero value is Fixed.
type CodeSource struct {
	kind sourceKind
	seed int64
}

// Fixed selects the context's fixed book, restored by Reset before every run.
func Fixed() CodeSource { return CodeSource{kind: sourceFixed} }

// Random selects generated codes. No generator exists, so Multiplex
// rejects it with ErrUnimplemented.
func Random(seed int64) CodeSource { return CodeSource{kind: sourceRandom, seed: seed} }

// IsRandom reports whether s is the Random variant.
func (s CodeSource) IsRandom() bool { return s.kind == sourceRandom }

// Seed returns the seed of a Random source; ok is false for Fixed.
func (s CodeSource) Seed() (seed int64, ok bool) {
	return s.seed, s.kind == sourceRandom
}

// String implements fmt.Stringer.
func (s CodeSource) String() string {
	if s.kind == sourceRandom {
		return fmt.Sprintf("random(%d)", s.seed)
	}

	return "fixed"
}

// Option configures a Context via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by NewContext.
type Option func(*Options)

// Options holds the fixed book and observation hooks of a Context.
type Options struct {
	// Book is the fixed code book restored by Reset.
	Book *codebook.Book

	// OnTruncate is called before spreading when the input length is not a
	// multiple of K. It receives the input length and the number of
	// trailing symbols that will be dropped. It cannot change the outcome.
	OnTruncate func(length, dropped int)

	// OnSpread is called with a copy of the intermediate spread grid.
	OnSpread func(spread *grid.Dense)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - the default code book (K=2, L=3)
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Book:       codebook.Default(),
		OnTruncate: func(int, int) {},
		OnSpread:   func(*grid.Dense) {},
	}
}

// WithBook sets the fixed code book. A nil book is an option violation.
func WithBook(b *codebook.Book) Option {
	return func(o *Options) {
		if b == nil {
			o.err = fmt.Errorf("WithBook(nil): %w", ErrOptionViolation)
			return
		}
		o.Book = b
	}
}

// WithOnTruncate registers a hook that reports dropped trailing symbols.
// A nil fn is ignored.
func WithOnTruncate(fn func(length, dropped int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnTruncate = fn
		}
	}
}

// WithOnSpread registers a hook that observes the intermediate spread grid.
// A nil fn is ignored.
func WithOnSpread(fn func(spread *grid.Dense)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSpread = fn
		}
	}
}
