package concept

import "sync"

// Interner is a pure cache that canonicalises terms so that structurally
// equal terms share storage: two calls with the same shape return the
// identical *Term pointer. Interning is a performance device, not a
// semantic one — Term.Equal never relies on it, so two implementations
// that disagree on interning still produce identical results.
//
// The loader builds its terms through one Interner per Load call; the rule
// engine builds its probe terms with the plain constructors and never
// touches an Interner. The mutex below makes an Interner safe to share
// between goroutines; it guards only map bookkeeping.
type Interner struct {
	mu    sync.Mutex
	terms map[string]*Term
}

// NewInterner allocates an empty Interner.
func NewInterner() *Interner {
	return &Interner{terms: make(map[string]*Term, 256)}
}

func (in *Interner) canonicalize(t *Term) *Term {
	in.mu.Lock()
	defer in.mu.Unlock()
	if existing, ok := in.terms[t.key]; ok {
		return existing
	}
	in.terms[t.key] = t
	return t
}

// Top returns the canonical universal-concept term.
func (in *Interner) Top() *Term { return in.canonicalize(Top()) }

// Name returns the canonical named-concept term for id.
func (in *Interner) Name(id string) *Term { return in.canonicalize(Name(id)) }

// And returns the canonical conjunction of l and r.
func (in *Interner) And(l, r *Term) *Term { return in.canonicalize(And(l, r)) }

// Exists returns the canonical existential restriction ∃role.filler.
func (in *Interner) Exists(role string, filler *Term) *Term {
	return in.canonicalize(Exists(role, filler))
}

// Lookup returns the canonical term already stored under key, if any,
// without creating one, unlike And/Exists, which insert the term when it
// is absent.
func (in *Interner) Lookup(key string) (*Term, bool) {
	in.mu.Lock()
	defer in.mu.Unlock()
	t, ok := in.terms[key]
	return t, ok
}

// Size reports how many distinct terms have been interned.
func (in *Interner) Size() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return len(in.terms)
}
