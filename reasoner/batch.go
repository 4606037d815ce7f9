package reasoner

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/nodeadmin/el-reasoner/ontology"
)

// BatchResult pairs one queried class name with its subsumer sequence, or
// the error that prevented computing it.
type BatchResult struct {
	Name      string
	Subsumers []string
	Err       error
}

// SubsumersBatch runs Subsumers for every name in names concurrently,
// bounded by concurrency in-flight goroutines at a time, all reading the
// same immutable idx. Each query builds and saturates its
// own fresh model.State; idx itself is never mutated by a query, so sharing
// it across goroutines needs no locking.
//
// A single query's failure (currently: only possible when idx is nil) is
// reported on its own
// BatchResult.Err rather than aborting the batch — one bad class name should
// not prevent classifying the rest of the ontology.
func SubsumersBatch(ctx context.Context, idx *ontology.Index, names []string, concurrency int) ([]BatchResult, error) {
	if concurrency <= 0 {
		concurrency = 1
	}

	results := make([]BatchResult, len(names))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			subs, err := Subsumers(idx, name)
			results[i] = BatchResult{Name: name, Subsumers: subs, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
