// Package block implements the square boolean image at the heart of the
// fractal: parsing and rendering of its textual pattern form, and the
// geometric transforms the rule book and the engine are built from.
//
// What:
//
//   - Block is an immutable size×size matrix of on/off cells stored row-major
//     in a flat slice (cell (r,c) lives at index r*size+c).
//   - Patterns use '#' for on, '.' for off and '/' between rows, e.g. ".#./..#/###".
//   - Equality is structural: Equal compares size and cells, Key yields a
//     comparable value usable as a map key.
//
// Transforms:
//
//   - FlipH, FlipV: mirror across the vertical / horizontal axis.
//   - Rotate(k): k quarter-turns clockwise; Rotate(1) twice == Rotate(2).
//   - Variants: the symmetry class (rotations × mirrors, at most 8 blocks).
//   - Slice, Split: extract square sub-blocks; Split enumerates row-major.
//   - Blit: the only mutator, copies a block into a freshly allocated target.
//   - Clone: a deep copy; blocks handed across package boundaries are cloned
//     so that Blit on one never shows through another.
//
// Complexity:
//
//   - Parse, String, FlipH, FlipV, Rotate, CountOn: O(n²) for an n×n block.
//   - Split: O(n²) time, O(n²) memory for the pieces.
//   - Variants: 12 transforms generated, at most 8 distinct kept; O(n²) each.
//
// Errors:
//
//   - ErrEmptyPattern: pattern text or one of its rows is empty.
//   - ErrNonSquare: row count and row length disagree, or a slice is not square.
//   - ErrBadCell: a pattern character other than '#' or '.'.
//   - ErrOutOfRange: Slice or Blit reaches outside the block.
//   - ErrIndivisible: Split step does not divide the block size.
//
// At and New panic on invalid arguments: those are programmer errors, not
// input errors.
package block
