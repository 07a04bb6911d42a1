// Package rulebook parses enhancement rules and resolves blocks against them
// regardless of orientation.
//
// What:
//
//   - A Rule pairs an input pattern with a strictly larger output pattern,
//     written "<in> => <out>", e.g. "../.# => ##./#../...".
//   - A Book holds the rules plus a symmetry-expanded index: every rotation
//     and mirror image of every input maps to that input's key, so Resolve
//     is two map lookups and never transforms the query.
//
// Complexity:
//
//   - Parse/New: O(R·8·n²) for R rules of input side n.
//   - Resolve:   O(n²) to key the query, O(1) average lookups.
//   - Memory:    up to 8 index entries per rule.
//
// Errors:
//
//   - ErrEmptyBook:        text or rule list holds no rules.
//   - ErrBadRule:          blank line inside the rule text.
//   - ErrMissingSeparator: a line without " => ".
//   - ErrNotExpanding:     an output not strictly larger than its input.
//   - ErrNoRule:           Resolve found no rule for any orientation of the query.
//
// Pattern errors from package block (ErrEmptyPattern, ErrNonSquare,
// ErrBadCell) are wrapped with the 1-based line number.
//
// Rules whose inputs share a symmetry class are listed by Conflicts; the later
// rule wins. Blocks are cloned in and out, so callers never alias the index.
//
// A Book is read-only after construction and safe for concurrent Resolve calls.
package rulebook
