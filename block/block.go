package block

import (
	"fmt"
	"strings"
)

// Pattern characters.
const (
	On     = '#'
	Off    = '.'
	RowSep = '/'
)

// Key is the comparable identity of a Block: two Blocks have equal Keys
// iff they are Equal. It is the pattern text itself.
type Key string

// Block is a square matrix of on/off cells in row-major order.
// size is the side length and cells holds size*size values.
// The zero Block is empty (size 0) and is never returned by a successful Parse.
type Block struct {
	size  int    // side length
	cells []bool // flat backing storage, len == size*size
}

// New returns a size×size Block with every cell off.
// It panics if size <= 0.
// Complexity: O(size²).
func New(size int) Block {
	if size <= 0 {
		panic(fmt.Sprintf("block: New(%d): size must be > 0", size))
	}

	return Block{size: size, cells: make([]bool, size*size)}
}

// Parse decodes a pattern such as "#./.#" into a Block.
// Stage 1 (Validate): text and rows non-empty, every row as long as the row count.
// Stage 2 (Execute): map '#' to on and '.' to off, row by row.
// Returns ErrEmptyPattern, ErrNonSquare or ErrBadCell, wrapped with the offending
// row/column.
// Complexity: O(n²).
func Parse(text string) (Block, error) {
	if text == "" {
		return Block{}, ErrEmptyPattern
	}
	rows := strings.Split(text, string(RowSep))
	for r, row := range rows {
		if row == "" {
			return Block{}, fmt.Errorf("row %d: %w", r, ErrEmptyPattern)
		}
	}
	size := len(rows)
	cells := make([]bool, 0, size*size)
	for r, row := range rows {
		if len(row) != size {
			return Block{}, fmt.Errorf("row %d has %d cells, want %d: %w", r, len(row), size, ErrNonSquare)
		}
		for c := 0; c < len(row); c++ {
			switch row[c] {
			case On:
				cells = append(cells, true)
			case Off:
				cells = append(cells, false)
			default:
				return Block{}, fmt.Errorf("row %d col %d: %q: %w", r, c, row[c], ErrBadCell)
			}
		}
	}

	return Block{size: size, cells: cells}, nil
}

// MustParse is like Parse but panics on error. Intended for constants and tests.
func MustParse(text string) Block {
	b, err := Parse(text)
	if err != nil {
		panic(fmt.Sprintf("block: MustParse(%q): %v", text, err))
	}

	return b
}

// Size returns the side length.
func (b Block) Size() int { return b.size }

// Cells returns a copy of the row-major cell slice.
func (b Block) Cells() []bool {
	if b.cells == nil {
		return nil
	}
	out := make([]bool, len(b.cells))
	copy(out, b.cells)

	return out
}

// Clone returns a deep copy of b. Blit on the copy never affects b.
// Complexity: O(n²).
func (b Block) Clone() Block {
	return Block{size: b.size, cells: b.Cells()}
}

// index maps (r,c) to the flat row-major offset, panicking when out of range.
func (b Block) index(r, c int) int {
	if r < 0 || r >= b.size || c < 0 || c >= b.size {
		panic(fmt.Sprintf("block: index (%d,%d) out of range for size %d", r, c, b.size))
	}

	return r*b.size + c
}

// At reports whether cell (r,c) is on. It panics when r or c is outside [0,size).
// Complexity: O(1).
func (b Block) At(r, c int) bool {
	return b.cells[b.index(r, c)]
}

// CountOn returns the number of on cells, always in [0, size²].
// Complexity: O(n²).
func (b Block) CountOn() int {
	n := 0
	for _, v := range b.cells {
		if v {
			n++
		}
	}

	return n
}

// Equal reports whether b and o have the same size and the same cells.
func (b Block) Equal(o Block) bool {
	if b.size != o.size {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != o.cells[i] {
			return false
		}
	}

	return true
}

// Key returns the comparable identity of b.
func (b Block) Key() Key {
	return Key(b.String())
}

// String renders b in pattern form, rows separated by '/'.
// Parse(b.String()) is Equal to b.
func (b Block) String() string {
	return b.render(RowSep)
}

// Format renders b one row per line.
func (b Block) Format() string {
	return b.render('\n')
}

func (b Block) render(sep byte) string {
	if b.size == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(b.size*b.size + b.size - 1)
	for r := 0; r < b.size; r++ {
		if r > 0 {
			sb.WriteByte(sep)
		}
		for _, v := range b.cells[r*b.size : (r+1)*b.size] {
			if v {
				sb.WriteByte(On)
			} else {
				sb.WriteByte(Off)
			}
		}
	}

	return sb.String()
}
