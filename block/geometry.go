package block

import (
	"fmt"
	"sort"
)

// transform builds a new block of the same size whose cell (r,c) is read
// from b at src(r,c).
func (b Block) transform(src func(r, c int) (int, int)) Block {
	out := New(b.size)
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			sr, sc := src(r, c)
			out.cells[r*b.size+c] = b.cells[sr*b.size+sc]
		}
	}

	return out
}

// FlipH mirrors b across its vertical axis (each row reversed).
// Complexity: O(n²).
func (b Block) FlipH() Block {
	last := b.size - 1

	return b.transform(func(r, c int) (int, int) { return r, last - c })
}

// FlipV mirrors b across its horizontal axis (row order reversed).
// Complexity: O(n²).
func (b Block) FlipV() Block {
	last := b.size - 1

	return b.transform(func(r, c int) (int, int) { return last - r, c })
}

// Rotate turns b clockwise by k quarter-turns. k is taken modulo 4, so
// negative values rotate counter-clockwise. Rotate(0) returns an equal copy.
// Complexity: O(n²).
func (b Block) Rotate(k int) Block {
	last := b.size - 1
	switch ((k % 4) + 4) % 4 {
	case 1:
		return b.transform(func(r, c int) (int, int) { return last - c, r })
	case 2:
		return b.transform(func(r, c int) (int, int) { return last - r, last - c })
	case 3:
		return b.transform(func(r, c int) (int, int) { return c, last - r })
	default:
		return b.transform(func(r, c int) (int, int) { return r, c })
	}
}

// Variants returns the symmetry class of b: b, FlipH and FlipV each under
// rotations 0..3 (12 transforms), duplicates removed, in first-seen order.
// The result always starts with b itself and holds at most 8 distinct blocks.
func (b Block) Variants() []Block {
	seen := make(map[Key]struct{}, 8)
	out := make([]Block, 0, 8)
	for _, base := range []Block{b, b.FlipH(), b.FlipV()} {
		for k := 0; k < 4; k++ {
			v := base.Rotate(k)
			key := v.Key()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, v)
		}
	}

	return out
}

// Canonical returns the member of b's symmetry class with the smallest Key.
// All variants of a block share the same Canonical block.
func (b Block) Canonical() Block {
	vs := b.Variants()
	sort.Slice(vs, func(i, j int) bool { return vs[i].Key() < vs[j].Key() })

	return vs[0]
}

// Slice extracts rows [r0,r1) and columns [c0,c1) as a new block.
// Returns ErrNonSquare if the spans differ or are empty, ErrOutOfRange if
// they leave the block.
// Complexity: O(k²) for a k×k slice.
func (b Block) Slice(r0, r1, c0, c1 int) (Block, error) {
	n := r1 - r0
	if n <= 0 || c1-c0 != n {
		return Block{}, fmt.Errorf("slice [%d:%d]x[%d:%d]: %w", r0, r1, c0, c1, ErrNonSquare)
	}
	if r0 < 0 || c0 < 0 || r1 > b.size || c1 > b.size {
		return Block{}, fmt.Errorf("slice [%d:%d]x[%d:%d] of size %d: %w", r0, r1, c0, c1, b.size, ErrOutOfRange)
	}
	out := New(n)
	for r := 0; r < n; r++ {
		copy(out.cells[r*n:(r+1)*n], b.cells[(r0+r)*b.size+c0:(r0+r)*b.size+c1])
	}

	return out, nil
}

// Split partitions b into (size/step)² blocks of side step, enumerated in
// row-major block order: left to right, then top to bottom.
// Returns ErrIndivisible unless step > 0 and size%step == 0.
// Complexity: O(n²).
func (b Block) Split(step int) ([]Block, error) {
	if step <= 0 || b.size%step != 0 {
		return nil, fmt.Errorf("split size %d by %d: %w", b.size, step, ErrIndivisible)
	}
	per := b.size / step
	out := make([]Block, 0, per*per)
	for i := 0; i < per; i++ {
		for j := 0; j < per; j++ {
			sub, err := b.Slice(i*step, (i+1)*step, j*step, (j+1)*step)
			if err != nil {
				return nil, err
			}
			out = append(out, sub)
		}
	}

	return out, nil
}

// Blit copies every cell of src into b with src's top-left corner at (row,col),
// overwriting what was there. Returns ErrOutOfRange if src does not fit.
// Blit is the only mutating operation; apply it only to a block obtained from
// New that nothing else references.
// Complexity: O(k²) for a k×k src.
func (b *Block) Blit(row, col int, src Block) error {
	if row < 0 || col < 0 || row+src.size > b.size || col+src.size > b.size {
		return fmt.Errorf("blit size %d at (%d,%d) into size %d: %w", src.size, row, col, b.size, ErrOutOfRange)
	}
	for r := 0; r < src.size; r++ {
		dst := (row+r)*b.size + col
		copy(b.cells[dst:dst+src.size], src.cells[r*src.size:(r+1)*src.size])
	}

	return nil
}
