package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nodeadmin/el-reasoner/internal/config"
	"github.com/nodeadmin/el-reasoner/ontology"
	"github.com/nodeadmin/el-reasoner/reasoner"
	"github.com/nodeadmin/el-reasoner/report"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <ontology-file> <class-name>",
	Short: "Print every named subsumer of one class",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.ResolveOntologyPath(cfg, args[0])
		if err != nil {
			return err
		}
		className := args[1]

		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("classify: opening %s: %w", path, err)
		}
		defer f.Close()

		axioms, concepts, names, err := load(f)
		if err != nil {
			return fmt.Errorf("classify: %w", err)
		}

		idx := ontology.Build(axioms, concepts, names, warnFunc(logger.WithQuery(className)))

		subs, err := reasoner.Subsumers(idx, className)
		if err != nil {
			return fmt.Errorf("classify: %w", err)
		}

		return report.WriteSubsumersLines(cmd.OutOrStdout(), subs)
	},
}
