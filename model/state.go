// Package model holds the canonical-model state M for a single query:
// individuals, their labels, the role-successor graph, and the
// initial-concept registry used to share successors. A State is created
// empty, populated by the rule engine and driver, and discarded once the
// subsumer list is read off the root.
package model

import "github.com/nodeadmin/el-reasoner/concept"

// Individual is a small integer id, unique only within one query. The root
// individual is always 1.
type Individual int

const Root Individual = 1

// State is the mutable canonical-model state M owned exclusively by the
// driver for the duration of one query. It is never shared between
// queries — SubsumersBatch (package reasoner) allocates one fresh State per
// concurrent query even though all of them read the same *ontology.Index.
type State struct {
	next  Individual
	label map[Individual]map[string]*concept.Term
	succ  map[Individual]map[string]map[Individual]bool
	rep   map[string]Individual
}

// New creates an empty canonical-model state.
func New() *State {
	return &State{
		next:  0,
		label: make(map[Individual]map[string]*concept.Term),
		succ:  make(map[Individual]map[string]map[Individual]bool),
		rep:   make(map[string]Individual),
	}
}

// EnsureIndividual allocates a fresh individual id and its empty label.
func (s *State) EnsureIndividual() Individual {
	s.next++
	id := s.next
	s.label[id] = make(map[string]*concept.Term, 8)
	return id
}

// Individuals returns a stable snapshot of every individual id created so
// far, in ascending (creation) order. The driver must snapshot before a
// round so that individuals created mid-round by Exists-1 do not perturb
// the round's own iteration.
func (s *State) Individuals() []Individual {
	out := make([]Individual, 0, len(s.label))
	for id := range s.label {
		out = append(out, id)
	}
	// Individuals are assigned in increasing order; sort to make the
	// snapshot deterministic regardless of map iteration order.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

// Label returns the (read-only) set of concept terms currently assigned to
// individual i, keyed by structural key. Callers must not mutate the
// returned map; use AddLabel to grow a label.
func (s *State) Label(i Individual) map[string]*concept.Term {
	return s.label[i]
}

// AddLabel inserts c into label[i] if not already present, returning
// whether the label grew. label[i] is monotone non-decreasing for the
// lifetime of the query — AddLabel never removes anything and there is no
// corresponding RemoveLabel.
func (s *State) AddLabel(i Individual, c *concept.Term) bool {
	lbl, ok := s.label[i]
	if !ok {
		lbl = make(map[string]*concept.Term, 8)
		s.label[i] = lbl
	}
	if _, present := lbl[c.Key()]; present {
		return false
	}
	lbl[c.Key()] = c
	return true
}

// HasLabel reports whether c (by structural key) is assigned to i.
func (s *State) HasLabel(i Individual, c *concept.Term) bool {
	_, ok := s.label[i][c.Key()]
	return ok
}

// AddSuccessor inserts j into succ[i][r], returning whether it grew. The
// inner map is created explicitly on first insertion rather than relying on
// implicit auto-vivification of maps of maps of sets.
func (s *State) AddSuccessor(i Individual, r string, j Individual) bool {
	byRole, ok := s.succ[i]
	if !ok {
		byRole = make(map[string]map[Individual]bool, 2)
		s.succ[i] = byRole
	}
	targets, ok := byRole[r]
	if !ok {
		targets = make(map[Individual]bool, 2)
		byRole[r] = targets
	}
	if targets[j] {
		return false
	}
	targets[j] = true
	return true
}

// Successors returns the individuals reachable from i via role r.
func (s *State) Successors(i Individual, r string) []Individual {
	targets := s.succ[i][r]
	out := make([]Individual, 0, len(targets))
	for j := range targets {
		out = append(out, j)
	}
	return out
}

// Roles returns every role for which i has at least one successor.
func (s *State) Roles(i Individual) []string {
	byRole := s.succ[i]
	out := make([]string, 0, len(byRole))
	for r := range byRole {
		out = append(out, r)
	}
	return out
}

// LookupRep returns the individual registered as the representative of
// initial concept c, if any.
func (s *State) LookupRep(c *concept.Term) (Individual, bool) {
	id, ok := s.rep[c.Key()]
	return id, ok
}

// SetRep registers i as the representative of initial concept c. Callers
// must ensure c ∈ label[i] beforehand.
func (s *State) SetRep(c *concept.Term, i Individual) {
	s.rep[c.Key()] = i
}
