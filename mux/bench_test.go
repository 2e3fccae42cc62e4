package mux_test

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/chipmux/mux"
)

// sink to defeat dead-code elimination
var sinkS mux.Signal

// randomBits returns a deterministic bit string of length n.
func randomBits(n int, seed int64) string {
	rng := rand.New(rand.NewSource(seed))
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte(byte('0' + rng.Intn(2)))
	}

	return sb.String()
}

func BenchmarkMultiplex(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{64, 1024, 16384} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			in := randomBits(n, 1337)
			ctx, err := mux.NewContext()
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s, err := mux.Multiplex(ctx, in, mux.Fixed())
				if err != nil {
					b.Fatalf("Multiplex failed: %v", err)
				}
				sinkS = s
			}
		})
	}
}
