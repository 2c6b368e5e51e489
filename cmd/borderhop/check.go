package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/borderhop/core/internal/dataset"
)

func runCheck(cmd *cobra.Command, args []string) error {
	adjacency, err := dataset.Load(datasetPath)
	if err != nil {
		return err
	}

	findings := dataset.Lint(adjacency)
	out := cmd.OutOrStdout()
	for _, finding := range findings {
		fmt.Fprintln(out, finding)
	}
	if len(findings) > 0 {
		return fmt.Errorf("%d dataset problem(s) found", len(findings))
	}

	fmt.Fprintf(out, "%s: %d countries, no problems found\n", datasetPath, len(adjacency))
	return nil
}
