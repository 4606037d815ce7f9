package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nodeadmin/el-reasoner/internal/config"
	"github.com/nodeadmin/el-reasoner/ontology"
)

var explainIndexCmd = &cobra.Command{
	Use:   "explain-index <ontology-file>",
	Short: "Print a summary of the built ontology index",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.ResolveOntologyPath(cfg, args[0])
		if err != nil {
			return err
		}

		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("explain-index: opening %s: %w", path, err)
		}
		defer f.Close()

		axioms, concepts, names, err := load(f)
		if err != nil {
			return fmt.Errorf("explain-index: %w", err)
		}

		idx := ontology.Build(axioms, concepts, names, warnFunc(logger))

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "names: %d\n", len(idx.Names()))
		fmt.Fprintf(out, "has_top: %t\n", idx.HasTop())
		fmt.Fprintf(out, "has_role_axioms: %t\n", idx.HasRoleAxioms())
		for _, n := range idx.Names() {
			fmt.Fprintf(out, "  class %s\n", n)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(explainIndexCmd)
}
