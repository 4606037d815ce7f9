package reasoner

import (
	"fmt"

	"github.com/nodeadmin/el-reasoner/concept"
	"github.com/nodeadmin/el-reasoner/model"
	"github.com/nodeadmin/el-reasoner/ontology"
)

// TopSymbol is the name reported for the universal concept ⊤ when it is a
// subsumer of the queried class.
const TopSymbol = "⊤"

// Subsumers computes every B with O ⊨ A ⊑ B: it seeds a fresh canonical
// model with {A} on the root individual, saturates it to a fixed point, and
// reads off every named concept (plus TopSymbol, if applicable) in the
// root's final label.
//
// If a is not a declared named concept, Subsumers returns an empty, non-nil
// slice and a nil error — an unknown class name is a query-input condition,
// not an internal failure.
func Subsumers(idx *ontology.Index, a string) ([]string, error) {
	if idx == nil {
		return nil, fmt.Errorf("reasoner: nil ontology index")
	}
	if !idx.HasName(a) {
		return []string{}, nil
	}

	s := model.New()
	root := s.EnsureIndividual()
	seed := concept.Name(a)
	s.AddLabel(root, seed)
	s.SetRep(seed, root)

	Saturate(s, idx)

	return extractSubsumers(s, idx, root), nil
}

// extractSubsumers reads the named-concept subsumers of root off a
// saturated state, in the ontology's declared name order, followed by
// TopSymbol when ⊤ is in O and in the root's label.
func extractSubsumers(s *model.State, idx *ontology.Index, root model.Individual) []string {
	out := make([]string, 0, len(idx.Names())+1)
	for _, n := range idx.Names() {
		if s.HasLabel(root, concept.Name(n)) {
			out = append(out, n)
		}
	}
	if idx.HasTop() && s.HasLabel(root, concept.Top()) {
		out = append(out, TopSymbol)
	}
	return out
}
