// Package report renders query and batch-classification results as JSON
// (buffered writer, encoding/json, HTML-escaping disabled) or as plain
// text, one subsumer per line.
package report

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/nodeadmin/el-reasoner/reasoner"
)

const writerBufferSize = 64 * 1024

// ClassifiedConcept is one named concept's place in a classified hierarchy.
type ClassifiedConcept struct {
	Name           string   `json:"name"`
	Subsumers      []string `json:"subsumers"`
	DirectParents  []string `json:"direct_parents"`
	DirectChildren []string `json:"direct_children,omitempty"`
}

// Stats carries size and timing metrics for one batch classification run.
type Stats struct {
	ConceptCount int   `json:"concept_count"`
	TotalTimeMs  int64 `json:"total_time_ms"`
}

// ClassifiedHierarchy is the top-level JSON document for batch classify.
type ClassifiedHierarchy struct {
	Concepts []ClassifiedConcept `json:"concepts"`
	Stats    Stats               `json:"stats"`
}

// BuildHierarchy assembles a ClassifiedHierarchy from a batch classification
// run's results and taxonomy.
func BuildHierarchy(results []reasoner.BatchResult, tax *reasoner.Taxonomy, elapsed time.Duration) *ClassifiedHierarchy {
	h := &ClassifiedHierarchy{
		Concepts: make([]ClassifiedConcept, 0, len(results)),
		Stats: Stats{
			ConceptCount: len(results),
			TotalTimeMs:  elapsed.Milliseconds(),
		},
	}
	for _, r := range results {
		h.Concepts = append(h.Concepts, ClassifiedConcept{
			Name:           r.Name,
			Subsumers:      r.Subsumers,
			DirectParents:  tax.DirectParents[r.Name],
			DirectChildren: tax.DirectChildren[r.Name],
		})
	}
	return h
}

// WriteHierarchyJSON writes h to w as indented, non-HTML-escaped JSON
// through a buffered writer.
func WriteHierarchyJSON(w io.Writer, h *ClassifiedHierarchy) error {
	bw := bufio.NewWriterSize(w, writerBufferSize)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(h); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteSubsumersLines writes one subsumer name per line, with surrounding
// quote characters stripped, the plain-text format the classify command
// uses.
func WriteSubsumersLines(w io.Writer, subsumers []string) error {
	bw := bufio.NewWriterSize(w, writerBufferSize)
	for _, name := range subsumers {
		if _, err := bw.WriteString(strings.Trim(name, `"'`)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
