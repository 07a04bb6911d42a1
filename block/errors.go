package block

import "errors"

// Every message is prefixed with "block: ". Callers add context with
// fmt.Errorf("...: %w", ErrX) and match with errors.Is.
var (
	// ErrEmptyPattern indicates an empty pattern or an empty row inside one.
	ErrEmptyPattern = errors.New("block: pattern must have at least one row and one column")

	// ErrNonSquare indicates a pattern whose row lengths differ from its row
	// count, or a slice request whose row and column spans differ.
	ErrNonSquare = errors.New("block: block is not square")

	// ErrBadCell indicates a pattern character that is neither '#' nor '.'.
	ErrBadCell = errors.New("block: invalid cell character")

	// ErrOutOfRange indicates a slice or blit reaching outside the block.
	ErrOutOfRange = errors.New("block: range out of bounds")

	// ErrIndivisible indicates a split step that does not divide the block size.
	ErrIndivisible = errors.New("block: size not divisible by step")
)
