// Package reasoner drives the fixed-point completion, extracts subsumers
// from a saturated canonical model, and exposes the query and
// batch-classification entry points. It is the one package that ties
// concept, ontology, model, and rules together into a working reasoner.
package reasoner

import (
	"github.com/nodeadmin/el-reasoner/concept"
	"github.com/nodeadmin/el-reasoner/model"
	"github.com/nodeadmin/el-reasoner/ontology"
	"github.com/nodeadmin/el-reasoner/rules"
)

// Saturate runs the completion rules to a fixed point, honoring the
// blocking discipline that guarantees termination on cyclic GCIs:
//
//  1. Snapshot the current individuals so the round is stable even though
//     Exists-1 may create new individuals mid-round.
//  2. Compute the blocked set for that snapshot.
//  3. Apply every rule to every unblocked individual; OR their results.
//  4. Repeat until a full round makes no change.
//
// Blocking is recomputed every round from scratch rather than cached
// incrementally: label growth can only ever add new blocking relationships
// (once label[j] ⊇ label[i], it stays that way — labels are monotone), but
// recomputing is simpler to get right than invalidating a cache correctly,
// and the individuals bound by any terminating query are few.
func Saturate(s *model.State, idx *ontology.Index) {
	for {
		changed := false
		individuals := s.Individuals()
		isBlocked := blockedSet(s, individuals)

		for _, i := range individuals {
			if isBlocked[i] {
				continue
			}
			if rules.Apply(s, idx, i) {
				changed = true
			}
		}

		if !changed {
			return
		}
	}
}

// blockedSet computes, for a snapshot of individuals sorted ascending by
// id, which individuals are blocked: i is blocked by the first earlier
// individual j (j < i) whose label is a superset of label[i].
func blockedSet(s *model.State, individuals []model.Individual) map[model.Individual]bool {
	blocked := make(map[model.Individual]bool, len(individuals))
	for pos, i := range individuals {
		li := s.Label(i)
		for _, j := range individuals[:pos] {
			if labelSuperset(s.Label(j), li) {
				blocked[i] = true
				break
			}
		}
	}
	return blocked
}

// labelSuperset reports whether super ⊇ sub, where both are label maps
// keyed by concept.Term.Key().
func labelSuperset(super, sub map[string]*concept.Term) bool {
	if len(super) < len(sub) {
		return false
	}
	for k := range sub {
		if _, ok := super[k]; !ok {
			return false
		}
	}
	return true
}
