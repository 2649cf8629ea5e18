// Command needsolver is a CLI front-end over the need-solver core: it
// loads a data directory of feature/catalog/needs/questions documents,
// runs an adaptive questionnaire against a persisted profile, and reports
// rankings and explanations.
package main

import (
	"fmt"
	"os"

	"github.com/mihail-gribov/need-solver/cmd/needsolver/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
