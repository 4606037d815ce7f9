// Command elreason is the CLI front-end over the reasoning core: it wires
// the loader, ontology index, and reasoner packages together behind a
// spf13/cobra command tree. package main delegates to a rootCmd built
// elsewhere in the package; configuration loads once at startup, and
// errors print to stderr with a non-zero exit.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "elreason: %v\n", err)
		os.Exit(1)
	}
}
