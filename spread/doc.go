// Package spread expands a K×B bit grid into a K×(B·K) chip grid.
//
// Sign law: bit b at (i,j) becomes the block
//
//	+code[i][0..K)  if b > 0
//	-code[i][0..K)  otherwise
//
// written at columns [j·K, (j+1)·K) of row i. The block width is the book's
// SpreadWidth (K), not its CombineModulus (L). Code entries at index K and
// beyond are never read here; the combiner uses them.
//
// Example (default book, bits [[1,1],[0,1]]):
//
//	row0 code [1,-1,2]:  1 -> [ 1,-1]  1 -> [ 1,-1]   => [ 1,-1, 1,-1]
//	row1 code [1, 1,2]:  0 -> [-1,-1]  1 -> [ 1, 1]   => [-1,-1, 1, 1]
package spread
