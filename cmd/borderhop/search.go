package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/borderhop/core/internal/graph"
	"github.com/borderhop/core/internal/render"
)

func runSearch(cmd *cobra.Command, args []string) error {
	source := normalizeName(args[0])
	target := normalizeName(args[1])

	limit := 0
	if len(args) == 3 {
		n, err := strconv.Atoi(args[2])
		if err != nil || n < 0 {
			return fmt.Errorf("path count must be a non-negative integer, got %q", args[2])
		}
		limit = n
	}

	g, err := loadGraph()
	if err != nil {
		return err
	}

	result, err := g.ShortestPaths(source, target, limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if result.Distance == graph.Unreachable {
		fmt.Fprintf(out, "no route from %s to %s\n", source, target)
		return nil
	}

	plural := "s"
	if len(result.Paths) == 1 {
		plural = ""
	}
	fmt.Fprintf(out, "%s to %s: %d path%s of length %d\n", source, target, len(result.Paths), plural, result.Distance)
	for _, path := range result.Paths {
		fmt.Fprintln(out, strings.Join(path, " -> "))
	}

	if dotOut != "" {
		if err := os.WriteFile(dotOut, []byte(render.DOT(result.Paths)), 0o644); err != nil {
			return fmt.Errorf("write DOT: %w", err)
		}
		logger.Info("wrote route graph", "format", "dot", "path", dotOut)
	}
	if svgOut != "" {
		if err := os.WriteFile(svgOut, []byte(render.SVG(result.Paths)), 0o644); err != nil {
			return fmt.Errorf("write SVG: %w", err)
		}
		logger.Info("wrote route graph", "format", "svg", "path", svgOut)
	}

	return nil
}
