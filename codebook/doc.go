// Package codebook holds the chip codes used to spread and combine a bit stream.
//
// A Book is K rows of L signed integers. The two dimensions play different
// roles in the pipeline and are exposed under different names:
//
//   - SpreadWidth()    (=K) number of chips emitted per bit by the spreader.
//   - CombineModulus() (=L) period of the column index used by the combiner.
//
// Only the first K entries of a row are used for spreading; entries at index
// K and beyond are reserved for combining. Keep the two names apart even when
// K == L.
//
// The default book is K=2, L=3:
//
//	row0 = [1, -1, 2]
//	row1 = [1,  1, 2]
//
// Books are immutable after construction; accessors return copies.
package codebook
