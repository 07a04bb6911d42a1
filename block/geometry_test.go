package block_test

import (
	"testing"

	"github.com/katalvlaran/fractal/block"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blocks parses every pattern, for compact expectations.
func blocks(t *testing.T, texts ...string) []block.Block {
	t.Helper()
	out := make([]block.Block, len(texts))
	for i, s := range texts {
		b, err := block.Parse(s)
		require.NoError(t, err, "Parse(%q)", s)
		out[i] = b
	}

	return out
}

// assertBlock compares blocks by pattern so failures print readably.
func assertBlock(t *testing.T, want string, got block.Block, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Equal(t, want, got.String(), msgAndArgs...)
}

//----------------------------------------------------------------------------//
// Flips
//----------------------------------------------------------------------------//

// TestFlipH mirrors each row.
func TestFlipH(t *testing.T) {
	src := block.MustParse("..#/.##/##.")
	assertBlock(t, "#../##./.##", src.FlipH())
	assertBlock(t, "..#/.##/##.", src, "FlipH must not mutate its receiver")
	assert.True(t, src.FlipH().FlipH().Equal(src), "FlipH is an involution")
}

// TestFlipV reverses row order.
func TestFlipV(t *testing.T) {
	src := block.MustParse("..#/.##/##.")
	assertBlock(t, "##./.##/..#", src.FlipV())
	assert.True(t, src.FlipV().FlipV().Equal(src), "FlipV is an involution")
}

//----------------------------------------------------------------------------//
// Rotate
//----------------------------------------------------------------------------//

// TestRotate_OneStep checks single clockwise quarter-turns.
func TestRotate_OneStep(t *testing.T) {
	cases := []struct{ in, want string }{
		{".../.../...", ".../.../..."},
		{"#../.../...", "..#/.../..."},
		{"..#/.../...", ".../.../..#"},
		{"..#/.##/##.", "#../##./.##"},
		{"...#/.##./#.#./#.##", "##../..#./###./#..#"},
		{"#./..", ".#/.."},
	}
	for _, tc := range cases {
		assertBlock(t, tc.want, block.MustParse(tc.in).Rotate(1), "Rotate(1) of %q", tc.in)
	}
}

// TestRotate_Closure verifies the rotation group laws.
func TestRotate_Closure(t *testing.T) {
	for _, s := range []string{"..#/.##/##.", "...#/.##./#.#./#.##", "#./.."} {
		b := block.MustParse(s)
		assert.True(t, b.Rotate(1).Rotate(1).Equal(b.Rotate(2)), "R1∘R1 == R2 for %q", s)
		assert.True(t, b.Rotate(1).Rotate(1).Rotate(1).Equal(b.Rotate(3)), "R1∘R1∘R1 == R3 for %q", s)
		assert.True(t, b.Rotate(0).Equal(b), "R0 is identity for %q", s)
		assert.True(t, b.Rotate(3).Rotate(1).Equal(b), "R3∘R1 is identity for %q", s)
		for k := -8; k <= 8; k++ {
			assert.True(t, b.Rotate(k).Equal(b.Rotate(((k%4)+4)%4)), "R%d == R(%d mod 4) for %q", k, k, s)
		}
	}
}

// TestRotate_Modulo matches the literal modulo cases.
func TestRotate_Modulo(t *testing.T) {
	b := block.MustParse("..#/.##/##.")
	assert.True(t, b.Rotate(4).Equal(b))
	assert.True(t, b.Rotate(7).Equal(b.Rotate(3)))
	assert.True(t, b.Rotate(-1).Equal(b.Rotate(3)))
}

//----------------------------------------------------------------------------//
// Variants / Canonical
//----------------------------------------------------------------------------//

// TestVariants covers an asymmetric block (8 variants) and symmetric ones.
func TestVariants(t *testing.T) {
	glider := block.MustParse(".#./..#/###")
	vs := glider.Variants()
	assert.Len(t, vs, 8, "an asymmetric 3×3 block has 8 distinct variants")
	assert.True(t, vs[0].Equal(glider), "the first variant is the block itself")

	seen := map[block.Key]bool{}
	for _, v := range vs {
		assert.False(t, seen[v.Key()], "duplicate variant %s", v)
		seen[v.Key()] = true
	}

	assert.Len(t, block.MustParse("../.#").Variants(), 4, "a single corner cell has 4 placements")
	assert.Len(t, block.MustParse("##/##").Variants(), 1)
	assert.Len(t, block.MustParse("#./.#").Variants(), 2)
}

// TestCanonical verifies every variant shares the same canonical block.
func TestCanonical(t *testing.T) {
	b := block.MustParse("##./#.#/#..")
	want := b.Canonical()
	for _, v := range b.Variants() {
		assert.True(t, v.Canonical().Equal(want), "Canonical of %s", v)
	}
}

//----------------------------------------------------------------------------//
// Slice / Split / Blit
//----------------------------------------------------------------------------//

// TestSlice checks extraction and precondition errors.
func TestSlice(t *testing.T) {
	b := block.MustParse("#..#/..../#..#/.##.")

	got, err := b.Slice(2, 4, 1, 3)
	require.NoError(t, err)
	assertBlock(t, "../##", got)

	_, err = b.Slice(0, 2, 0, 3)
	assert.ErrorIs(t, err, block.ErrNonSquare)
	_, err = b.Slice(1, 1, 1, 1)
	assert.ErrorIs(t, err, block.ErrNonSquare)
	_, err = b.Slice(3, 5, 0, 2)
	assert.ErrorIs(t, err, block.ErrOutOfRange)
	_, err = b.Slice(-1, 1, 0, 2)
	assert.ErrorIs(t, err, block.ErrOutOfRange)
}

// TestSplit_By2 enumerates 2×2 pieces in row-major block order.
func TestSplit_By2(t *testing.T) {
	got, err := block.MustParse("#..#/..../#..#/.##.").Split(2)
	require.NoError(t, err)
	want := blocks(t, "#./..", ".#/..", "#./.#", ".#/#.")
	require.Len(t, got, len(want))
	for i := range want {
		assert.True(t, want[i].Equal(got[i]), "piece %d: got %s want %s", i, got[i], want[i])
	}
}

// TestSplit_By3 enumerates 3×3 pieces of a 6×6 block.
func TestSplit_By3(t *testing.T) {
	got, err := block.MustParse("#.#..#/.##..#/..##../##..##/..##../#.#.#.").Split(3)
	require.NoError(t, err)
	want := blocks(t, "#.#/.##/..#", "..#/..#/#..", "##./..#/#.#", ".##/#../.#.")
	require.Len(t, got, len(want))
	for i := range want {
		assert.True(t, want[i].Equal(got[i]), "piece %d: got %s want %s", i, got[i], want[i])
	}
}

// TestSplit_Indivisible rejects steps that do not divide the size.
func TestSplit_Indivisible(t *testing.T) {
	b := block.MustParse(".#./..#/###")
	for _, step := range []int{2, 0, -3, 4} {
		_, err := b.Split(step)
		assert.ErrorIs(t, err, block.ErrIndivisible, "Split(%d)", step)
	}
}

// TestBlit copies a block at an offset and overwrites existing cells.
func TestBlit(t *testing.T) {
	b := block.New(6)
	require.NoError(t, b.Blit(1, 2, block.MustParse("#.#/.##/..#")))
	assertBlock(t, "....../..#.#./...##./....#./....../......", b)

	require.NoError(t, b.Blit(1, 2, block.New(2)))
	assertBlock(t, "....../....#./....#./....#./....../......", b, "blit overwrites on cells with off")
}

// TestBlit_OutOfRange rejects sources that do not fit.
func TestBlit_OutOfRange(t *testing.T) {
	b := block.New(4)
	src := block.MustParse("##/##")
	for _, rc := range [][2]int{{3, 0}, {0, 3}, {-1, 0}, {0, -1}} {
		err := b.Blit(rc[0], rc[1], src)
		assert.ErrorIs(t, err, block.ErrOutOfRange, "Blit at (%d,%d)", rc[0], rc[1])
	}
	assert.Equal(t, 0, b.CountOn(), "failed blits leave the target untouched")
}

// TestSplitBlit_Inverse reassembles split pieces into the original block.
func TestSplitBlit_Inverse(t *testing.T) {
	for _, tc := range []struct {
		text string
		step int
	}{
		{"#..#/..../#..#/.##.", 2},
		{"#..#/..../#..#/.##.", 4},
		{"#.#..#/.##..#/..##../##..##/..##../#.#.#.", 3},
		{"#.#..#/.##..#/..##../##..##/..##../#.#.#.", 2},
		{"#.#..#/.##..#/..##../##..##/..##../#.#.#.", 1},
	} {
		g := block.MustParse(tc.text)
		pieces, err := g.Split(tc.step)
		require.NoError(t, err)

		per := g.Size() / tc.step
		out := block.New(g.Size())
		for i, p := range pieces {
			require.NoError(t, out.Blit(i/per*tc.step, i%per*tc.step, p))
		}
		assert.True(t, out.Equal(g), "split(%d)+blit of %q", tc.step, tc.text)
	}
}
