package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nodeadmin/el-reasoner/internal/config"
	"github.com/nodeadmin/el-reasoner/ontology"
	"github.com/nodeadmin/el-reasoner/reasoner"
	"github.com/nodeadmin/el-reasoner/report"
)

var batchJSONOut string

var batchCmd = &cobra.Command{
	Use:   "batch <ontology-file>",
	Short: "Classify every named concept in the ontology",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.ResolveOntologyPath(cfg, args[0])
		if err != nil {
			return err
		}

		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("batch: opening %s: %w", path, err)
		}
		defer f.Close()

		axioms, concepts, names, err := load(f)
		if err != nil {
			return fmt.Errorf("batch: %w", err)
		}

		idx := ontology.Build(axioms, concepts, names, warnFunc(logger))

		start := time.Now()
		results, err := reasoner.SubsumersBatch(cmd.Context(), idx, idx.Names(), cfg.Concurrency)
		if err != nil {
			return fmt.Errorf("batch: %w", err)
		}
		elapsed := time.Since(start)
		logger.Info("batch classification complete", "classes", len(results), "elapsed_ms", elapsed.Milliseconds())

		tax := reasoner.BuildTaxonomy(results)
		hierarchy := report.BuildHierarchy(results, tax, elapsed)

		if batchJSONOut != "" {
			out, err := os.Create(batchJSONOut)
			if err != nil {
				return fmt.Errorf("batch: creating %s: %w", batchJSONOut, err)
			}
			defer out.Close()
			return report.WriteHierarchyJSON(out, hierarchy)
		}
		return report.WriteHierarchyJSON(cmd.OutOrStdout(), hierarchy)
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchJSONOut, "out", "", "write the classified hierarchy JSON to this file instead of stdout")
}
