package concept_test

import (
	"testing"

	"github.com/nodeadmin/el-reasoner/concept"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuralEquality(t *testing.T) {
	a1 := concept.Name("A")
	a2 := concept.Name("A")
	require.NotSame(t, a1, a2, "two independent constructions should not share an address")
	assert.True(t, a1.Equal(a2), "equal shape must compare equal despite distinct addresses")

	b := concept.Name("B")
	assert.False(t, a1.Equal(b))

	and1 := concept.And(a1, b)
	and2 := concept.And(concept.Name("A"), concept.Name("B"))
	assert.True(t, and1.Equal(and2))

	// And is not commutative as stored terms.
	swapped := concept.And(b, a1)
	assert.False(t, and1.Equal(swapped))
}

func TestExistsEquality(t *testing.T) {
	e1 := concept.Exists("r", concept.Name("C"))
	e2 := concept.Exists("r", concept.Name("C"))
	assert.True(t, e1.Equal(e2))

	e3 := concept.Exists("s", concept.Name("C"))
	assert.False(t, e1.Equal(e3))
}

func TestProjections(t *testing.T) {
	top := concept.Top()
	assert.True(t, top.IsTop())

	name := concept.Name("A")
	id, ok := name.AsName()
	require.True(t, ok)
	assert.Equal(t, "A", id)

	and := concept.And(concept.Name("A"), concept.Name("B"))
	l, r, ok := and.AsAnd()
	require.True(t, ok)
	assert.Equal(t, "A", mustName(t, l))
	assert.Equal(t, "B", mustName(t, r))

	ex := concept.Exists("r", concept.Name("C"))
	role, filler, ok := ex.AsExists()
	require.True(t, ok)
	assert.Equal(t, "r", role)
	assert.Equal(t, "C", mustName(t, filler))
}

func mustName(t *testing.T, term *concept.Term) string {
	t.Helper()
	n, ok := term.AsName()
	require.True(t, ok)
	return n
}

func TestInternerCanonicalizes(t *testing.T) {
	in := concept.NewInterner()
	a1 := in.Name("A")
	a2 := in.Name("A")
	assert.Same(t, a1, a2, "interner must return the identical pointer for equal shapes")

	and1 := in.And(a1, in.Name("B"))
	and2 := in.And(in.Name("A"), in.Name("B"))
	assert.Same(t, and1, and2)
	assert.Equal(t, 3, in.Size()) // A, B, A^B

	_, ok := in.Lookup(concept.Name("Z").Key())
	assert.False(t, ok, "Lookup must not fabricate entries for un-interned keys")

	found, ok := in.Lookup(a1.Key())
	assert.True(t, ok)
	assert.Same(t, a1, found)
}
