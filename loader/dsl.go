// Package loader parses the plain-text EL ontology-source format into the
// axioms, concept enumeration, and name enumeration that ontology.Build
// and reasoner.Subsumers/SubsumersBatch consume. Parsing and binarization
// stay external to the reasoning engine; this package is the front-end's
// only way to get an ontology in from a file, the same separation drawn
// between package ontology (axiom indexing) and package reasoner
// (saturation over already-parsed axioms).
//
// Syntax, one statement per line:
//
//	# a comment
//	class A                 declares a named concept (order of first
//	                         occurrence becomes the names enumeration)
//	A <= B                   GCI: A ⊑ B
//	A == B                   equivalence: A ≡ B
//	A <= (B & C)             conjunction; n-ary "&" chains binarize
//	                         left-associatively into nested binary And terms
//	A <= E r B               existential restriction ∃r.B
//	Top                      the universal concept, usable on either side
//	role r <= s              role subsumption r ⊑ s
//	role r . r2 <= s         role composition r ∘ r2 ⊑ s
//	role r transitive        role transitivity declaration
//	role r reflexive         role reflexivity declaration
//
// Every bare identifier occurring anywhere in a concept expression is
// implicitly declared a named concept, exactly like "class" — a line does
// not need to declare a name before using it in an axiom.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/nodeadmin/el-reasoner/concept"
	"github.com/nodeadmin/el-reasoner/ontology"
)

const scannerBufferSize = 1 << 20

// Load reads r and returns the axioms, the concept enumeration (every
// sub-concept term declared or referenced), and the ordered names
// enumeration, or an error naming the offending line.
func Load(r io.Reader) ([]ontology.Axiom, []*concept.Term, []string, error) {
	l := newLoader()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, scannerBufferSize), scannerBufferSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := l.parseLine(line); err != nil {
			return nil, nil, nil, fmt.Errorf("loader: line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, nil, fmt.Errorf("loader: scanning input: %w", err)
	}

	return l.axioms, l.concepts, l.names, nil
}

// loader is the scanner-adjacent parse state: a small mutable struct
// threaded through a handful of line/token parsing functions rather than
// a monolithic parser object.
type loader struct {
	interner    *concept.Interner
	names       []string
	nameSeen    map[string]bool
	concepts    []*concept.Term
	conceptSeen map[string]bool
	axioms      []ontology.Axiom
}

func newLoader() *loader {
	return &loader{
		interner:    concept.NewInterner(),
		nameSeen:    make(map[string]bool, 64),
		conceptSeen: make(map[string]bool, 64),
	}
}

func (l *loader) declareName(id string) {
	if l.nameSeen[id] {
		return
	}
	l.nameSeen[id] = true
	l.names = append(l.names, id)
}

func (l *loader) record(t *concept.Term) *concept.Term {
	if !l.conceptSeen[t.Key()] {
		l.conceptSeen[t.Key()] = true
		l.concepts = append(l.concepts, t)
	}
	return t
}

func (l *loader) parseLine(line string) error {
	switch {
	case strings.HasPrefix(line, "class "):
		id := strings.TrimSpace(strings.TrimPrefix(line, "class "))
		if id == "" {
			return fmt.Errorf("empty class name")
		}
		l.declareName(id)
		l.record(l.interner.Name(id))
		return nil
	case line == "Top":
		l.record(l.interner.Top())
		return nil
	case strings.HasPrefix(line, "role "):
		return l.parseRoleLine(strings.TrimSpace(strings.TrimPrefix(line, "role ")))
	default:
		return l.parseConceptAxiom(line)
	}
}

func (l *loader) parseRoleLine(rest string) error {
	if role, ok := strings.CutSuffix(rest, " transitive"); ok {
		l.axioms = append(l.axioms, ontology.RoleTransitive{Role: strings.TrimSpace(role)})
		return nil
	}
	if role, ok := strings.CutSuffix(rest, " reflexive"); ok {
		l.axioms = append(l.axioms, ontology.RoleReflexive{Role: strings.TrimSpace(role)})
		return nil
	}

	lhs, rhs, ok := strings.Cut(rest, "<=")
	if !ok {
		return fmt.Errorf("malformed role axiom %q: expected <=, transitive, or reflexive", rest)
	}
	lhs, rhs = strings.TrimSpace(lhs), strings.TrimSpace(rhs)
	if rhs == "" {
		return fmt.Errorf("malformed role axiom %q: missing right-hand role", rest)
	}

	if first, second, ok := strings.Cut(lhs, "."); ok {
		first, second = strings.TrimSpace(first), strings.TrimSpace(second)
		if first == "" || second == "" {
			return fmt.Errorf("malformed role chain %q", rest)
		}
		l.axioms = append(l.axioms, ontology.RoleChain{First: first, Second: second, Super: rhs})
		return nil
	}
	if lhs == "" {
		return fmt.Errorf("malformed role axiom %q: missing left-hand role", rest)
	}
	l.axioms = append(l.axioms, ontology.RoleSub{Sub: lhs, Super: rhs})
	return nil
}

func (l *loader) parseConceptAxiom(line string) error {
	op, isEquiv := "<=", false
	switch {
	case strings.Contains(line, "=="):
		op, isEquiv = "==", true
	case strings.Contains(line, "<="):
	default:
		return fmt.Errorf("expected <= or == in %q", line)
	}

	lhsStr, rhsStr, ok := strings.Cut(line, op)
	if !ok {
		return fmt.Errorf("malformed axiom %q", line)
	}
	lhs, err := l.parseConcept(lhsStr)
	if err != nil {
		return fmt.Errorf("left-hand side of %q: %w", line, err)
	}
	rhs, err := l.parseConcept(rhsStr)
	if err != nil {
		return fmt.Errorf("right-hand side of %q: %w", line, err)
	}

	if isEquiv {
		l.axioms = append(l.axioms, ontology.Equivalence{LHS: lhs, RHS: rhs})
	} else {
		l.axioms = append(l.axioms, ontology.GCI{LHS: lhs, RHS: rhs})
	}
	return nil
}

// parseConcept tokenizes and parses one concept expression: a chain of "&"
// over atoms, where an atom is Top, a bare name, a parenthesized expression,
// or "E role atom".
func (l *loader) parseConcept(s string) (*concept.Term, error) {
	toks := tokenize(s)
	if len(toks) == 0 {
		return nil, fmt.Errorf("empty concept expression")
	}
	ts := &tokenStream{toks: toks}
	t, err := l.parseConjunction(ts)
	if err != nil {
		return nil, err
	}
	if !ts.atEnd() {
		return nil, fmt.Errorf("unexpected trailing token %q", ts.peek())
	}
	return t, nil
}

func (l *loader) parseConjunction(ts *tokenStream) (*concept.Term, error) {
	left, err := l.parseAtom(ts)
	if err != nil {
		return nil, err
	}
	for ts.peek() == "&" {
		ts.next()
		right, err := l.parseAtom(ts)
		if err != nil {
			return nil, err
		}
		// Left-associative binarization of an n-ary "&" chain.
		left = l.record(l.interner.And(left, right))
	}
	return left, nil
}

func (l *loader) parseAtom(ts *tokenStream) (*concept.Term, error) {
	tok := ts.next()
	switch tok {
	case "":
		return nil, fmt.Errorf("unexpected end of expression")
	case "(":
		inner, err := l.parseConjunction(ts)
		if err != nil {
			return nil, err
		}
		if ts.peek() != ")" {
			return nil, fmt.Errorf("expected closing )")
		}
		ts.next()
		return inner, nil
	case "Top":
		return l.record(l.interner.Top()), nil
	case "E":
		role := ts.next()
		if role == "" || role == "(" || role == ")" || role == "&" {
			return nil, fmt.Errorf("expected a role name after E")
		}
		filler, err := l.parseAtom(ts)
		if err != nil {
			return nil, fmt.Errorf("filler of E %s: %w", role, err)
		}
		return l.record(l.interner.Exists(role, filler)), nil
	default:
		l.declareName(tok)
		return l.record(l.interner.Name(tok)), nil
	}
}

// tokenStream is a minimal cursor over a token slice.
type tokenStream struct {
	toks []string
	pos  int
}

func (ts *tokenStream) atEnd() bool { return ts.pos >= len(ts.toks) }

func (ts *tokenStream) peek() string {
	if ts.atEnd() {
		return ""
	}
	return ts.toks[ts.pos]
}

func (ts *tokenStream) next() string {
	t := ts.peek()
	ts.pos++
	return t
}

func tokenize(s string) []string {
	s = strings.ReplaceAll(s, "(", " ( ")
	s = strings.ReplaceAll(s, ")", " ) ")
	s = strings.ReplaceAll(s, "&", " & ")
	return strings.Fields(s)
}
