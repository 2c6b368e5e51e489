package main

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/borderhop/core/internal/config"
	"github.com/borderhop/core/internal/dataset"
	"github.com/borderhop/core/internal/graph"
	"github.com/borderhop/core/internal/logging"
)

var (
	datasetPath string
	logLevel    string
	logFormat   string

	dotOut     string
	svgOut     string
	playSource string
	playTarget string

	logger *slog.Logger

	rootCmd = &cobra.Command{
		Use:           "borderhop",
		Short:         "Shortest border-crossing routes between countries",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = logging.New(logLevel, logFormat)
		},
	}

	searchCmd = &cobra.Command{
		Use:   "search <source> <target> [paths]",
		Short: "List the shortest routes between two countries",
		Args:  cobra.RangeArgs(2, 3),
		RunE:  runSearch,
	}

	playCmd = &cobra.Command{
		Use:   "play",
		Short: "Guess a shortest route one border crossing at a time",
		Args:  cobra.NoArgs,
		RunE:  runPlay,
	}

	checkCmd = &cobra.Command{
		Use:   "check",
		Short: "Validate the adjacency dataset",
		Args:  cobra.NoArgs,
		RunE:  runCheck,
	}
)

func init() {
	cfg := config.Load()

	rootCmd.PersistentFlags().StringVar(&datasetPath, "dataset", cfg.DatasetPath, "path to the adjacency CSV file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", cfg.LogFormat, "log format (text, json)")

	searchCmd.Flags().StringVar(&dotOut, "dot", "", "write the route graph as DOT to this file")
	searchCmd.Flags().StringVar(&svgOut, "svg", "", "write the route graph as SVG to this file")

	playCmd.Flags().StringVar(&playSource, "source", "", "start the game at this country instead of a random one")
	playCmd.Flags().StringVar(&playTarget, "target", "", "play toward this country instead of a random one")

	rootCmd.AddCommand(searchCmd, playCmd, checkCmd)
}

// normalizeName maps a CLI token onto a dataset country name: underscores
// stand in for spaces so multi-word names survive shell word splitting.
func normalizeName(token string) string {
	return strings.ReplaceAll(token, "_", " ")
}

// loadGraph reads and builds the adjacency graph, logging any dataset
// lint findings as warnings.
func loadGraph() (*graph.Graph, error) {
	adjacency, err := dataset.Load(datasetPath)
	if err != nil {
		return nil, err
	}
	for _, finding := range dataset.Lint(adjacency) {
		logger.Warn("dataset inconsistency", "finding", finding)
	}

	g := graph.Build(adjacency)
	logger.Debug("graph built", "countries", g.Len(), "dataset", datasetPath)
	return g, nil
}
