package model_test

import (
	"testing"

	"github.com/nodeadmin/el-reasoner/concept"
	"github.com/nodeadmin/el-reasoner/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureIndividualStartsAtRoot(t *testing.T) {
	s := model.New()
	id := s.EnsureIndividual()
	assert.Equal(t, model.Root, id)
	second := s.EnsureIndividual()
	assert.Equal(t, model.Individual(2), second)
}

func TestAddLabelMonotone(t *testing.T) {
	s := model.New()
	root := s.EnsureIndividual()
	a := concept.Name("A")

	grew := s.AddLabel(root, a)
	assert.True(t, grew)
	assert.True(t, s.HasLabel(root, a))

	grewAgain := s.AddLabel(root, concept.Name("A"))
	assert.False(t, grewAgain, "re-adding a structurally equal term must not grow the label")
}

func TestAddSuccessorAndRep(t *testing.T) {
	s := model.New()
	d := s.EnsureIndividual()
	e := s.EnsureIndividual()

	grew := s.AddSuccessor(d, "r", e)
	assert.True(t, grew)
	assert.False(t, s.AddSuccessor(d, "r", e))
	assert.ElementsMatch(t, []model.Individual{e}, s.Successors(d, "r"))
	assert.ElementsMatch(t, []string{"r"}, s.Roles(d))

	c := concept.Name("C")
	s.AddLabel(e, c)
	s.SetRep(c, e)
	found, ok := s.LookupRep(c)
	require.True(t, ok)
	assert.Equal(t, e, found)
}

func TestIndividualsSnapshotIsSortedAndStable(t *testing.T) {
	s := model.New()
	s.EnsureIndividual()
	s.EnsureIndividual()
	s.EnsureIndividual()
	assert.Equal(t, []model.Individual{1, 2, 3}, s.Individuals())
}
