// Package rules implements the EL completion rules as pure functions over
// (model.State, ontology.Index, focus individual) that report whether they
// changed the state. Each rule buffers the concepts or links it wants to
// add and commits them only after it has finished reading the individual's
// current label or successor set, so no rule ever mutates a container
// while iterating over it — the same discipline the original Python
// reference (classrules.py) achieves by collecting into a local
// add_concepts set before calling set.update().
package rules

import (
	"github.com/nodeadmin/el-reasoner/concept"
	"github.com/nodeadmin/el-reasoner/model"
	"github.com/nodeadmin/el-reasoner/ontology"
)

// Top is the Top rule: every individual satisfies ⊤ in every model, so it
// is added whenever O actually mentions ⊤ — gating on idx.HasTop keeps ⊤
// out of labels of ontologies that never reference it.
func Top(s *model.State, idx *ontology.Index, d model.Individual) bool {
	if !idx.HasTop() {
		return false
	}
	top := concept.Top()
	if s.HasLabel(d, top) {
		return false
	}
	return s.AddLabel(d, top)
}

// IntersectElim is Intersect-1 (conjunction elimination): every conjunct of
// every And assigned to d is assigned to d as well.
func IntersectElim(s *model.State, d model.Individual) bool {
	var toAdd []*concept.Term
	for _, c := range s.Label(d) {
		l, r, ok := c.AsAnd()
		if !ok {
			continue
		}
		if !s.HasLabel(d, l) {
			toAdd = append(toAdd, l)
		}
		if !s.HasLabel(d, r) {
			toAdd = append(toAdd, r)
		}
	}
	return commitLabels(s, d, toAdd)
}

// IntersectIntro is Intersect-2 (conjunction introduction): for every
// unordered pair of distinct concepts in d's label, if either ordering of
// their conjunction occurs anywhere in O, that conjunction is added to d's
// label. Gated so conjunctions absent from O are never fabricated.
func IntersectIntro(s *model.State, idx *ontology.Index, d model.Individual) bool {
	lbl := s.Label(d)
	terms := make([]*concept.Term, 0, len(lbl))
	for _, c := range lbl {
		terms = append(terms, c)
	}

	var toAdd []*concept.Term
	for i := 0; i < len(terms); i++ {
		for j := i + 1; j < len(terms); j++ {
			x, y := terms[i], terms[j]
			for _, candidate := range [2]*concept.Term{concept.And(x, y), concept.And(y, x)} {
				canon, ok := idx.Canonical(candidate.Key())
				if !ok {
					continue
				}
				if !s.HasLabel(d, canon) {
					toAdd = append(toAdd, canon)
				}
			}
		}
	}
	return commitLabels(s, d, toAdd)
}

// existsDemand is one ∃role.filler assigned to the focus individual.
type existsDemand struct {
	role   string
	filler *concept.Term
}

// ExistsInstantiate is Exists-1: for every ∃r.C assigned to d, reuse the
// existing representative of initial concept C as the r-successor if one
// exists (E-rule 1.1), otherwise allocate a fresh individual keyed by C
// (E-rule 1.2). Keying the fresh individual by its initial concept C, not
// by (d, r, C), is what keeps the canonical model finite: any two demands
// for C anywhere in the model share the same witness.
func ExistsInstantiate(s *model.State, d model.Individual) bool {
	var demands []existsDemand
	for _, c := range s.Label(d) {
		r, f, ok := c.AsExists()
		if !ok {
			continue
		}
		demands = append(demands, existsDemand{role: r, filler: f})
	}

	changed := false
	for _, dm := range demands {
		e, ok := s.LookupRep(dm.filler)
		if !ok {
			e = s.EnsureIndividual()
			if s.AddLabel(e, dm.filler) {
				changed = true
			}
			s.SetRep(dm.filler, e)
		}
		if s.AddSuccessor(d, dm.role, e) {
			changed = true
		}
	}
	return changed
}

// ExistsReflect is Exists-2: if d has an r-successor e with C in its label,
// and ∃r.C occurs anywhere in O, add ∃r.C to d's label.
func ExistsReflect(s *model.State, idx *ontology.Index, d model.Individual) bool {
	var toAdd []*concept.Term
	for _, r := range s.Roles(d) {
		for _, e := range s.Successors(d, r) {
			for _, c := range s.Label(e) {
				candidate := concept.Exists(r, c)
				canon, ok := idx.Canonical(candidate.Key())
				if !ok {
					continue
				}
				if !s.HasLabel(d, canon) {
					toAdd = append(toAdd, canon)
				}
			}
		}
	}
	return commitLabels(s, d, toAdd)
}

// GCISubsumption is the GCI/subsumption rule: for every C assigned to d,
// every direct right-hand side of C ⊑ · is assigned to d as well.
func GCISubsumption(s *model.State, idx *ontology.Index, d model.Individual) bool {
	lbl := s.Label(d)
	terms := make([]*concept.Term, 0, len(lbl))
	for _, c := range lbl {
		terms = append(terms, c)
	}

	var toAdd []*concept.Term
	for _, c := range terms {
		toAdd = append(toAdd, idx.GCIRHS(c)...)
	}
	return commitLabels(s, d, toAdd)
}

// RoleHierarchy is the role-subsumption completion rule: if (d, e) holds
// via role r and r ⊑ s was declared, (d, e) also holds via s. A no-op on
// any ontology that declares no role axioms, so it never changes the
// core rules' behaviour for such ontologies.
func RoleHierarchy(s *model.State, idx *ontology.Index, d model.Individual) bool {
	changed := false
	for _, r := range s.Roles(d) {
		supers := idx.RoleSupers(r)
		if len(supers) == 0 {
			continue
		}
		for _, e := range s.Successors(d, r) {
			for _, sup := range supers {
				if s.AddSuccessor(d, sup, e) {
					changed = true
				}
			}
		}
	}
	return changed
}

// RoleChain is the role-composition completion rule: if
// (d, e) holds via r1 and (e, f) holds via r2 and r1 ∘ r2 ⊑ s was
// declared (including the r ∘ r ⊑ r case a RoleTransitive declaration
// expands to), (d, f) holds via s.
func RoleChain(s *model.State, idx *ontology.Index, d model.Individual) bool {
	changed := false
	for _, r1 := range s.Roles(d) {
		for _, e := range s.Successors(d, r1) {
			for _, r2 := range s.Roles(e) {
				supers := idx.RoleChainSupers(r1, r2)
				if len(supers) == 0 {
					continue
				}
				for _, f := range s.Successors(e, r2) {
					for _, sup := range supers {
						if s.AddSuccessor(d, sup, f) {
							changed = true
						}
					}
				}
			}
		}
	}
	return changed
}

// Apply runs every completion rule on d once, ORing their individual
// "changed" results together — mirroring the original Python
// ELReasoner.apply_rules, which combines
// [top_rule, intersect_rule_1, intersect_rule_2, exists_rule_1,
// exists_rule_2, subsumption_rule] the same way.
func Apply(s *model.State, idx *ontology.Index, d model.Individual) bool {
	changed := false
	if Top(s, idx, d) {
		changed = true
	}
	if IntersectElim(s, d) {
		changed = true
	}
	if IntersectIntro(s, idx, d) {
		changed = true
	}
	if ExistsInstantiate(s, d) {
		changed = true
	}
	if ExistsReflect(s, idx, d) {
		changed = true
	}
	if GCISubsumption(s, idx, d) {
		changed = true
	}
	if RoleHierarchy(s, idx, d) {
		changed = true
	}
	if RoleChain(s, idx, d) {
		changed = true
	}
	return changed
}

func commitLabels(s *model.State, d model.Individual, terms []*concept.Term) bool {
	changed := false
	for _, c := range terms {
		if s.AddLabel(d, c) {
			changed = true
		}
	}
	return changed
}
