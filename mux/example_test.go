package mux_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/chipmux/mux"
)

// ExampleMultiplex spreads "1101" over the default book (K=2, L=3).
func ExampleMultiplex() {
	ctx, err := mux.NewContext()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	sig, err := mux.Multiplex(ctx, "1101", mux.Fixed())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(sig)
	// Output:
	// [0 0 4 0]
}

// ExampleMultiplex_random shows that the random code source fails fast.
func ExampleMultiplex_random() {
	ctx, _ := mux.NewContext()
	_, err := mux.Multiplex(ctx, "1101", mux.Random(1))
	fmt.Println(errors.Is(err, mux.ErrUnimplemented))
	// Output:
	// true
}

// ExampleWithOnTruncate reports the symbol dropped from an odd-length input.
func ExampleWithOnTruncate() {
	ctx, _ := mux.NewContext(mux.WithOnTruncate(func(length, dropped int) {
		fmt.Printf("length %d: dropped %d\n", length, dropped)
	}))
	sig, _ := mux.Multiplex(ctx, "11011", mux.Fixed())
	fmt.Println(sig)
	// Output:
	// length 5: dropped 1
	// [0 0 4 0]
}
