// Package ontology indexes a stream of terminological axioms into the
// lookup tables the completion rule engine needs. It never parses source
// syntax itself — that is the loader's job (see package loader) — it only
// consumes already-binarised concept terms.
package ontology

import "github.com/nodeadmin/el-reasoner/concept"

// Axiom is any terminological axiom the loader can hand to Build. The
// interface is sealed to the shapes this package recognises; anything
// else is a malformed axiom and is skipped by Build, not rejected at
// this layer.
type Axiom interface {
	isAxiom()
}

// GCI is a general concept inclusion L ⊑ R.
type GCI struct {
	LHS, RHS *concept.Term
}

func (GCI) isAxiom() {}

// Equivalence is L ≡ R, treated by Build as the pair of GCIs L ⊑ R and
// R ⊑ L.
type Equivalence struct {
	LHS, RHS *concept.Term
}

func (Equivalence) isAxiom() {}

// RoleSub is a role inclusion R ⊑ S (NF5 in Brandt/CEL-style EL++ normal
// forms). Role axioms are the role-hierarchy extension beyond the core
// six rules; an ontology that declares none of them degenerates exactly
// to the six-rule EL core.
type RoleSub struct {
	Sub, Super string
}

func (RoleSub) isAxiom() {}

// RoleChain is a property chain R1 ∘ R2 ⊑ S (NF6).
type RoleChain struct {
	First, Second, Super string
}

func (RoleChain) isAxiom() {}

// RoleTransitive declares a role transitive; equivalent to RoleChain{R, R, R}.
type RoleTransitive struct {
	Role string
}

func (RoleTransitive) isAxiom() {}

// RoleReflexive declares a role reflexive. Reflexive roles do not gate any
// completion rule in this implementation (the EL core has no ABox / nominal
// machinery to make reflexivity observable on a named-concept query), but
// the flag is retained on the index for callers that introspect role
// metadata.
type RoleReflexive struct {
	Role string
}

func (RoleReflexive) isAxiom() {}
