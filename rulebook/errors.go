package rulebook

import "errors"

var (
	// ErrEmptyBook indicates rule text or a rule list without any rule.
	ErrEmptyBook = errors.New("rulebook: no rules")

	// ErrBadRule indicates a line that cannot be a rule at all (e.g. blank).
	ErrBadRule = errors.New("rulebook: malformed rule")

	// ErrMissingSeparator indicates a rule line without the " => " separator.
	ErrMissingSeparator = errors.New("rulebook: missing \" => \" separator")

	// ErrNotExpanding indicates a rule whose output is not larger than its input.
	ErrNotExpanding = errors.New("rulebook: output must be larger than input")

	// ErrNoRule indicates a block matching no rule in any orientation.
	ErrNoRule = errors.New("rulebook: no rule matches block")
)
