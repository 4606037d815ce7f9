package ontology

import "github.com/nodeadmin/el-reasoner/concept"

// WarnFunc receives a diagnostic message for a condition Build tolerates
// (currently: a malformed axiom). It is an injected sink, so callers can
// wire it to internal/obslog, to a test recorder, or to nothing (a nil
// WarnFunc is valid and silently discards).
type WarnFunc func(msg string)

// Index is the ontology index O: the set of all sub-concepts occurring in
// O, the GCI right-hand-side table, whether ⊤ occurs at all, and the
// ordered list of named concepts. It is built once per ontology load
// (Build) and is immutable afterwards — safe to share read-only across
// any number of sequential or concurrent queries.
type Index struct {
	subConcepts map[string]*concept.Term
	gciRHS      map[string][]*concept.Term
	hasTop      bool
	names       []string
	nameSet     map[string]bool

	// Role hierarchy extension.
	roleSubs   map[string][]string
	roleChains map[string]map[string][]string
	transitive map[string]bool
	reflexive  map[string]bool
}

// Build indexes axioms into an Index. concepts is the loader's concept
// enumeration (every sub-concept reachable in O); Build also walks each
// axiom's own sub-terms, so a loader that under-reports concepts cannot
// make Build miss a sub-concept an axiom actually mentions. names is the
// loader's ordered names enumeration, copied verbatim into the result.
//
// Axioms whose shape Build does not recognise are skipped, not rejected:
// EL saturation stays sound relative to whatever axioms it does consume.
// A non-nil warn is called once per skipped axiom.
func Build(axioms []Axiom, concepts []*concept.Term, names []string, warn WarnFunc) *Index {
	idx := &Index{
		subConcepts: make(map[string]*concept.Term, len(concepts)*2+16),
		gciRHS:      make(map[string][]*concept.Term, len(axioms)),
		names:       append([]string(nil), names...),
		nameSet:     make(map[string]bool, len(names)),
		roleSubs:    make(map[string][]string),
		roleChains:  make(map[string]map[string][]string),
		transitive:  make(map[string]bool),
		reflexive:   make(map[string]bool),
	}
	for _, n := range names {
		idx.nameSet[n] = true
	}

	for _, c := range concepts {
		idx.collectSubterms(c)
	}

	for _, ax := range axioms {
		switch a := ax.(type) {
		case GCI:
			idx.collectSubterms(a.LHS)
			idx.collectSubterms(a.RHS)
			idx.addGCI(a.LHS, a.RHS)
		case Equivalence:
			idx.collectSubterms(a.LHS)
			idx.collectSubterms(a.RHS)
			idx.addGCI(a.LHS, a.RHS)
			idx.addGCI(a.RHS, a.LHS)
		case RoleSub:
			idx.roleSubs[a.Sub] = append(idx.roleSubs[a.Sub], a.Super)
		case RoleChain:
			idx.addRoleChain(a.First, a.Second, a.Super)
		case RoleTransitive:
			idx.transitive[a.Role] = true
			idx.addRoleChain(a.Role, a.Role, a.Role)
		case RoleReflexive:
			idx.reflexive[a.Role] = true
		default:
			if warn != nil {
				warn("skipping malformed axiom: unrecognised shape")
			}
		}
	}

	_, idx.hasTop = idx.subConcepts[concept.Top().Key()]
	return idx
}

func (idx *Index) addGCI(lhs, rhs *concept.Term) {
	idx.gciRHS[lhs.Key()] = append(idx.gciRHS[lhs.Key()], rhs)
}

func (idx *Index) addRoleChain(first, second, super string) {
	m, ok := idx.roleChains[first]
	if !ok {
		m = make(map[string][]string, 2)
		idx.roleChains[first] = m
	}
	m[second] = append(m[second], super)
}

// collectSubterms walks t and every descendant into subConcepts. Harmless
// to call repeatedly; an already-present key is a no-op.
func (idx *Index) collectSubterms(t *concept.Term) {
	if t == nil {
		return
	}
	if _, seen := idx.subConcepts[t.Key()]; seen {
		return
	}
	idx.subConcepts[t.Key()] = t
	switch t.Kind() {
	case concept.KindAnd:
		l, r, _ := t.AsAnd()
		idx.collectSubterms(l)
		idx.collectSubterms(r)
	case concept.KindExists:
		_, f, _ := t.AsExists()
		idx.collectSubterms(f)
	}
}

// HasTop reports whether ⊤ occurs anywhere in O.
func (idx *Index) HasTop() bool { return idx.hasTop }

// Names returns the loader's ordered names enumeration.
func (idx *Index) Names() []string { return idx.names }

// HasName reports whether id is a declared named concept.
func (idx *Index) HasName(id string) bool { return idx.nameSet[id] }

// IsSubConcept reports whether t occurs as a sub-term anywhere in O. This
// is the gate every rule consults before introducing a conjunction or
// existential restriction.
func (idx *Index) IsSubConcept(t *concept.Term) bool {
	_, ok := idx.subConcepts[t.Key()]
	return ok
}

// Canonical returns the stored sub-concept term matching key, if O contains
// one. Used by the rule engine to recover the exact *Term to add to a
// label once IsSubConcept has confirmed membership by key.
func (idx *Index) Canonical(key string) (*concept.Term, bool) {
	t, ok := idx.subConcepts[key]
	return t, ok
}

// GCIRHS returns every direct right-hand side of lhs, or nil if lhs
// entails nothing directly.
func (idx *Index) GCIRHS(lhs *concept.Term) []*concept.Term {
	return idx.gciRHS[lhs.Key()]
}

// RoleSupers returns every role s such that r ⊑ s was declared directly.
func (idx *Index) RoleSupers(r string) []string { return idx.roleSubs[r] }

// RoleChainSupers returns every role s such that first ∘ second ⊑ s was
// declared (directly, or via a RoleTransitive declaration on
// first == second).
func (idx *Index) RoleChainSupers(first, second string) []string {
	m, ok := idx.roleChains[first]
	if !ok {
		return nil
	}
	return m[second]
}

// IsTransitive reports whether role r was declared transitive.
func (idx *Index) IsTransitive(r string) bool { return idx.transitive[r] }

// IsReflexive reports whether role r was declared reflexive.
func (idx *Index) IsReflexive(r string) bool { return idx.reflexive[r] }

// HasRoleAxioms reports whether any role-hierarchy axiom (RoleSub,
// RoleChain, RoleTransitive) was declared. Used only for diagnostics/stats;
// the rule engine always runs the role-hierarchy rules regardless, since
// they are no-ops on an ontology with no role axioms.
func (idx *Index) HasRoleAxioms() bool {
	return len(idx.roleSubs) > 0 || len(idx.roleChains) > 0
}
