package rulebook

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/fractal/block"
)

// Separator splits a rule line into its input and output patterns.
const Separator = " => "

// Rule replaces blocks matching In (in any orientation) with Out.
type Rule struct {
	In  block.Block
	Out block.Block
}

// String renders r back into rule-line form.
func (r Rule) String() string {
	return r.In.String() + Separator + r.Out.String()
}

// Conflict records two rules whose inputs share a symmetry class.
// Later is the rule Resolve uses; Agree reports whether both outputs are equal.
type Conflict struct {
	Class   block.Key // canonical input of the shared class
	Earlier Rule
	Later   Rule
	Agree   bool
}

// Book is an immutable set of rules indexed by every orientation of their inputs.
// Blocks are cloned on the way in and on the way out, so nothing a caller
// holds aliases the index.
type Book struct {
	rules     []Rule                    // input order, for Rules/Len
	entries   map[block.Key]block.Block // rule input key -> output
	classes   map[block.Key]block.Key   // any variant key -> rule input key
	conflicts []Conflict                // same-class rules, in input order
}

func (r Rule) clone() Rule {
	return Rule{In: r.In.Clone(), Out: r.Out.Clone()}
}

// ParseRule decodes a single "<in> => <out>" line.
// Returns ErrBadRule for a blank line, ErrMissingSeparator, block parse errors
// for either side, or ErrNotExpanding.
func ParseRule(line string) (Rule, error) {
	if line == "" {
		return Rule{}, ErrBadRule
	}
	in, out, ok := strings.Cut(line, Separator)
	if !ok {
		return Rule{}, fmt.Errorf("%q: %w", line, ErrMissingSeparator)
	}
	from, err := block.Parse(in)
	if err != nil {
		return Rule{}, fmt.Errorf("input %q: %w", in, err)
	}
	to, err := block.Parse(out)
	if err != nil {
		return Rule{}, fmt.Errorf("output %q: %w", out, err)
	}
	r := Rule{In: from, Out: to}
	if err = validateRule(r); err != nil {
		return Rule{}, err
	}

	return r, nil
}

// validateRule enforces that a rule grows the image.
func validateRule(r Rule) error {
	if r.In.Size() == 0 || r.Out.Size() == 0 {
		return fmt.Errorf("%q: %w", r.String(), block.ErrEmptyPattern)
	}
	if r.Out.Size() <= r.In.Size() {
		return fmt.Errorf("%s: %d -> %d: %w", r, r.In.Size(), r.Out.Size(), ErrNotExpanding)
	}

	return nil
}

// Parse builds a Book from rule text, one rule per line. A single trailing
// newline is accepted; any other blank line is an error. Errors carry the
// 1-based line number and wrap the package or block sentinel.
// Complexity: O(R·8·n²).
func Parse(text string) (*Book, error) {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, ErrEmptyBook
	}
	lines := strings.Split(text, "\n")
	rules := make([]Rule, 0, len(lines))
	for i, line := range lines {
		r, err := ParseRule(line)
		if err != nil {
			return nil, fmt.Errorf("rulebook: line %d: %w", i+1, err)
		}
		rules = append(rules, r)
	}

	return New(rules)
}

// New builds a Book from already parsed rules.
// Stage 1 (Validate): non-empty list, every rule expanding.
// Stage 2 (Index): each input's variants map to the input key; the input key
// maps to the output. Later rules overwrite earlier ones on equal keys.
// Stage 3 (Audit): rules sharing a canonical input are recorded as Conflicts.
// Complexity: O(R·8·n²).
func New(rules []Rule) (*Book, error) {
	if len(rules) == 0 {
		return nil, ErrEmptyBook
	}
	bk := &Book{
		rules:   make([]Rule, 0, len(rules)),
		entries: make(map[block.Key]block.Block, len(rules)),
		classes: make(map[block.Key]block.Key, 8*len(rules)),
	}
	owner := make(map[block.Key]int, len(rules)) // canonical key -> latest rule index
	for i, r := range rules {
		if err := validateRule(r); err != nil {
			return nil, fmt.Errorf("rulebook: rule %d: %w", i+1, err)
		}
		r = Rule{In: r.In.Clone(), Out: r.Out.Clone()}
		key := r.In.Key()
		bk.entries[key] = r.Out
		for _, v := range r.In.Variants() {
			bk.classes[v.Key()] = key
		}

		class := r.In.Canonical().Key()
		if j, dup := owner[class]; dup {
			prev := bk.rules[j]
			bk.conflicts = append(bk.conflicts, Conflict{
				Class:   class,
				Earlier: prev.clone(),
				Later:   r.clone(),
				Agree:   prev.Out.Equal(r.Out),
			})
		}
		owner[class] = len(bk.rules)
		bk.rules = append(bk.rules, r)
	}

	return bk, nil
}

// Resolve returns the output of the rule whose input matches b in some
// orientation, or ErrNoRule.
// Complexity: O(n²) to key b, O(1) average lookup.
func (bk *Book) Resolve(b block.Block) (block.Block, error) {
	key, ok := bk.classes[b.Key()]
	if !ok {
		return block.Block{}, fmt.Errorf("%s: %w", b, ErrNoRule)
	}
	out, ok := bk.entries[key]
	if !ok {
		return block.Block{}, fmt.Errorf("%s (as %s): %w", b, key, ErrNoRule)
	}

	return out.Clone(), nil
}

// Len returns the number of rules in input order, duplicates included.
func (bk *Book) Len() int { return len(bk.rules) }

// Rules returns a copy of the rules in input order.
func (bk *Book) Rules() []Rule {
	out := make([]Rule, len(bk.rules))
	for i, r := range bk.rules {
		out[i] = r.clone()
	}

	return out
}

// Conflicts returns the pairs of rules whose inputs are orientations of one
// another, in input order. Resolve uses the later rule of each pair.
func (bk *Book) Conflicts() []Conflict {
	out := make([]Conflict, len(bk.conflicts))
	for i, c := range bk.conflicts {
		out[i] = Conflict{Class: c.Class, Earlier: c.Earlier.clone(), Later: c.Later.clone(), Agree: c.Agree}
	}

	return out
}

// Classes returns the number of distinct indexed orientations.
func (bk *Book) Classes() int { return len(bk.classes) }
