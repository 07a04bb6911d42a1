// Package fractal provides tunable options and error definitions
// for the iterative enhancement engine.
package fractal

import (
	"errors"
	"fmt"
)

// DefaultSeed is the customary starting image, a 3×3 glider.
// The engine never uses it implicitly; pass it to New explicitly.
const DefaultSeed = ".#./..#/###"

// Sentinel errors for engine construction and stepping.
var (
	// ErrNilBook is returned when New is given a nil rule book.
	ErrNilBook = errors.New("fractal: rule book is nil")

	// ErrEmptySeed is returned when New is given a zero-value seed block.
	ErrEmptySeed = errors.New("fractal: seed block is empty")

	// ErrNegativeSteps is returned when Run is asked for fewer than 0 steps.
	ErrNegativeSteps = errors.New("fractal: step count must be >= 0")

	// ErrNotSquareLayout signals a split whose piece count is not a perfect square.
	ErrNotSquareLayout = errors.New("fractal: block count is not a perfect square")

	// ErrMixedOutput signals resolved blocks of differing sizes within one step.
	ErrMixedOutput = errors.New("fractal: resolved blocks differ in size")

	// ErrTooLarge is returned when a step would grow the image beyond MaxSize.
	ErrTooLarge = errors.New("fractal: image would exceed size limit")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("fractal: invalid option supplied")
)

// Option configures the engine via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds parameters and callbacks for a Fractal.
type Options struct {
	// OnStep is called after each completed step with the 1-based step number
	// and the new count of on cells. A non-nil error aborts Run and is
	// returned from Step; the step itself has already been applied.
	OnStep func(step, ones int) error

	// MaxSize, if > 0, is the largest image side a step may produce.
	// 0 disables the limit.
	MaxSize int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a no-op OnStep and no size limit.
func DefaultOptions() Options {
	return Options{
		OnStep:  func(int, int) error { return nil },
		MaxSize: 0,
		err:     nil,
	}
}

// WithOnStep registers a callback run after each step.
func WithOnStep(fn func(step, ones int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithMaxSize caps the image side length.
//
//	n > 0: steps producing a side > n fail with ErrTooLarge
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSize(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSize cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSize = n
	}
}
