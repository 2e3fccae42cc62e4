// SPDX-License-Identifier: MIT

// Package grid provides the integer row-major Dense grid shared by every
// stage of the chipmux pipeline.
//
// The bit grid (K×B), the spread grid (K×(B·K)) and the one-row composite
// signal are all Dense values. Unlike a general purpose matrix, a grid may
// have zero rows or zero columns: an empty input gives B=0 and an empty code
// book gives K=0, and both must flow through the pipeline without errors.
//
// Guarantees:
//   - At/Set never panic; they return ErrOutOfRange wrapped with coordinates.
//   - Storage is a single flat slice with offset i*cols + j.
//   - Loop orders are fixed, so String and Rows output are deterministic.
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At/Set: O(1); Row: O(c); Clone: O(r*c).
package grid
