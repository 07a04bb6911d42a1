package fractal

import (
	"fmt"

	"github.com/katalvlaran/fractal/block"
	"github.com/katalvlaran/fractal/rulebook"
)

// Fractal is the enhancement engine: a shared rule book and the current image.
type Fractal struct {
	book  *rulebook.Book
	image block.Block
	steps int
	opts  Options
}

// New returns an engine whose current image is a copy of seed.
// Returns ErrNilBook, ErrEmptySeed, or ErrOptionViolation for a bad Option.
func New(book *rulebook.Book, seed block.Block, opts ...Option) (*Fractal, error) {
	if book == nil {
		return nil, ErrNilBook
	}
	if seed.Size() == 0 {
		return nil, ErrEmptySeed
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Fractal{book: book, image: seed.Clone(), opts: o}, nil
}

// blockSize picks the piece side for an image of side n.
func blockSize(n int) int {
	if n%2 == 0 {
		return 2
	}

	return 3
}

// isqrt returns the integer square root of n and whether n is a perfect square.
func isqrt(n int) (int, bool) {
	m := 0
	for (m+1)*(m+1) <= n {
		m++
	}

	return m, m*m == n
}

// Step performs one split → resolve → reassemble iteration.
// Stage 1 (Split): cut the image into 2×2 or 3×3 pieces, row-major.
// Stage 2 (Resolve): look every piece up in the book; ErrNoRule aborts.
// Stage 3 (Layout): check the piece grid is m×m and all outputs share a size.
// Stage 4 (Assemble): blit outputs into a fresh image and swap it in.
// On error the current image is unchanged.
// Complexity: O(N²) for an N×N result.
func (f *Fractal) Step() error {
	next := f.steps + 1
	pieces, err := f.image.Split(blockSize(f.image.Size()))
	if err != nil {
		return fmt.Errorf("fractal: step %d: %w", next, err)
	}

	outs := make([]block.Block, len(pieces))
	for i, p := range pieces {
		if outs[i], err = f.book.Resolve(p); err != nil {
			return fmt.Errorf("fractal: step %d: block %d: %w", next, i, err)
		}
	}

	m, ok := isqrt(len(outs))
	if !ok {
		return fmt.Errorf("fractal: step %d: %d blocks: %w", next, len(outs), ErrNotSquareLayout)
	}
	side := outs[0].Size()
	for i, o := range outs {
		if o.Size() != side {
			return fmt.Errorf("fractal: step %d: block %d has size %d, want %d: %w", next, i, o.Size(), side, ErrMixedOutput)
		}
	}
	if f.opts.MaxSize > 0 && m*side > f.opts.MaxSize {
		return fmt.Errorf("fractal: step %d: size %d > %d: %w", next, m*side, f.opts.MaxSize, ErrTooLarge)
	}

	img := block.New(m * side)
	for i, o := range outs {
		if err = img.Blit(i/m*side, i%m*side, o); err != nil {
			return fmt.Errorf("fractal: step %d: block %d: %w", next, i, err)
		}
	}

	f.image = img
	f.steps = next

	return f.opts.OnStep(f.steps, f.image.CountOn())
}

// Run performs n steps, stopping at the first error.
// Returns ErrNegativeSteps if n < 0.
func (f *Fractal) Run(n int) error {
	if n < 0 {
		return fmt.Errorf("fractal: Run(%d): %w", n, ErrNegativeSteps)
	}
	for i := 0; i < n; i++ {
		if err := f.Step(); err != nil {
			return err
		}
	}

	return nil
}

// Ones returns the number of on cells in the current image.
func (f *Fractal) Ones() int { return f.image.CountOn() }

// Image returns a copy of the current image.
func (f *Fractal) Image() block.Block { return f.image.Clone() }

// Size returns the side length of the current image.
func (f *Fractal) Size() int { return f.image.Size() }

// Steps returns how many steps have completed.
func (f *Fractal) Steps() int { return f.steps }
