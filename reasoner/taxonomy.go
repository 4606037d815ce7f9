package reasoner

// Taxonomy is the direct (transitively reduced) named-concept hierarchy
// produced by classifying a whole ontology.
type Taxonomy struct {
	// DirectParents[name] lists name's most specific subsumers: every B in
	// Subsumers(name) such that B is not itself a subsumer of any other
	// subsumer of name. TopSymbol appears only when name has no other direct
	// parent.
	DirectParents map[string][]string
	// DirectChildren is the inverse of DirectParents.
	DirectChildren map[string][]string
}

// BuildTaxonomy reduces a full batch of Subsumers results to the direct
// hierarchy by transitive reduction: a candidate parent B of A is direct
// unless B is itself a subsumer of some other candidate parent of A.
func BuildTaxonomy(results []BatchResult) *Taxonomy {
	subsumerSet := make(map[string]map[string]bool, len(results))
	for _, r := range results {
		set := make(map[string]bool, len(r.Subsumers))
		for _, sub := range r.Subsumers {
			set[sub] = true
		}
		subsumerSet[r.Name] = set
	}

	tax := &Taxonomy{
		DirectParents:  make(map[string][]string, len(results)),
		DirectChildren: make(map[string][]string, len(results)),
	}

	for _, r := range results {
		candidates := make([]string, 0, len(r.Subsumers))
		sawTop := false
		for _, sup := range r.Subsumers {
			switch sup {
			case r.Name:
				continue
			case TopSymbol:
				sawTop = true
			default:
				candidates = append(candidates, sup)
			}
		}

		direct := make([]string, 0, len(candidates))
		for _, b := range candidates {
			redundant := false
			for _, other := range candidates {
				if other == b {
					continue
				}
				if subsumerSet[other][b] {
					redundant = true
					break
				}
			}
			if !redundant {
				direct = append(direct, b)
			}
		}
		if len(direct) == 0 && sawTop {
			direct = append(direct, TopSymbol)
		}

		tax.DirectParents[r.Name] = direct
		for _, p := range direct {
			tax.DirectChildren[p] = append(tax.DirectChildren[p], r.Name)
		}
	}

	return tax
}
