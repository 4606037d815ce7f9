package ontology

import (
	"testing"

	"github.com/nodeadmin/el-reasoner/concept"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCollectsSubConcepts(t *testing.T) {
	a := concept.Name("A")
	b := concept.Name("B")
	conj := concept.And(a, b)

	idx := Build([]Axiom{
		GCI{LHS: a, RHS: conj},
	}, nil, []string{"A", "B"}, nil)

	assert.True(t, idx.IsSubConcept(a))
	assert.True(t, idx.IsSubConcept(b))
	assert.True(t, idx.IsSubConcept(conj), "And's own term must be indexed, not just its conjuncts")
	assert.False(t, idx.HasTop())
}

func TestBuildEquivalenceIsBothDirections(t *testing.T) {
	a := concept.Name("A")
	b := concept.Name("B")
	idx := Build([]Axiom{
		Equivalence{LHS: a, RHS: b},
	}, nil, []string{"A", "B"}, nil)

	rhsOfA := idx.GCIRHS(a)
	rhsOfB := idx.GCIRHS(b)
	require.Len(t, rhsOfA, 1)
	require.Len(t, rhsOfB, 1)
	assert.True(t, rhsOfA[0].Equal(b))
	assert.True(t, rhsOfB[0].Equal(a))
}

type malformedAxiom struct{}

func (malformedAxiom) isAxiom() {}

func TestBuildSkipsMalformedAxioms(t *testing.T) {
	var warnings []string
	idx := Build([]Axiom{
		malformedAxiom{},
	}, nil, nil, func(msg string) { warnings = append(warnings, msg) })

	require.NotNil(t, idx)
	assert.Len(t, warnings, 1)
}

func TestHasTop(t *testing.T) {
	idx := Build([]Axiom{
		GCI{LHS: concept.Name("A"), RHS: concept.Top()},
	}, nil, []string{"A"}, nil)
	assert.True(t, idx.HasTop())
}

func TestRoleHierarchyIndexing(t *testing.T) {
	idx := Build([]Axiom{
		RoleSub{Sub: "hasChild", Super: "hasDescendant"},
		RoleTransitive{Role: "hasDescendant"},
		RoleChain{First: "hasPart", Second: "hasPart", Super: "hasPart"},
	}, nil, nil, nil)

	assert.ElementsMatch(t, []string{"hasDescendant"}, idx.RoleSupers("hasChild"))
	assert.True(t, idx.IsTransitive("hasDescendant"))
	assert.ElementsMatch(t, []string{"hasDescendant"}, idx.RoleChainSupers("hasDescendant", "hasDescendant"))
	assert.ElementsMatch(t, []string{"hasPart"}, idx.RoleChainSupers("hasPart", "hasPart"))
	assert.True(t, idx.HasRoleAxioms())
}
