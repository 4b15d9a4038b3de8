package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/fixture"
	"github.com/katalvlaran/lvsearch/render"
	"github.com/katalvlaran/lvsearch/search"
	"github.com/katalvlaran/lvsearch/tracelog"
)

// errSearchFailed marks a run where at least one algorithm returned an error.
var errSearchFailed = errors.New("one or more searches failed")

// Execute is the entry point to running the CLI
func Execute(ctx context.Context, version string) {
	input := new(Input)
	rootCmd := createRootCommand(ctx, input, version)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func createRootCommand(ctx context.Context, input *Input, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "lvsearch",
		Short:        "Run uninformed graph search (DFS, BFS, UCS) and print the path found.",
		Args:         cobra.NoArgs,
		RunE:         newRunCommand(ctx, input),
		Version:      version,
		SilenceUsage: true,
	}
	addFlags(rootCmd.Flags(), input)
	rootCmd.PersistentFlags().BoolVarP(&input.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&input.jsonLogger, "json", false, "output logs in json format")

	return rootCmd
}

// addFlags binds the search flags to input.
func addFlags(flags *pflag.FlagSet, input *Input) {
	flags.StringVarP(&input.algorithm, "algo", "a", "all", "algorithm to run: dfs, bfs, ucs, a comma-separated list, or all")
	flags.StringVarP(&input.graphPath, "graph", "g", "", "path to a YAML graph document (default: built-in running example)")
	flags.BoolVarP(&input.mermaid, "mermaid", "m", false, "print the search tree as a Mermaid flow chart")
	flags.BoolVar(&input.edges, "edges", false, "print the search tree as a parent -> child edge list")
	flags.BoolVar(&input.strictStart, "strict-start", false, "fail when more than one vertex is labeled start")
	flags.IntVar(&input.maxExpansions, "max-expansions", 0, "stop a search after this many expansions (0 = no limit)")
}

func setupLogging(input *Input, w io.Writer) *log.Logger {
	logger := log.New()
	logger.SetOutput(w)
	logger.SetLevel(log.WarnLevel)
	if input.verbose {
		logger.SetLevel(log.DebugLevel)
	}
	if input.jsonLogger {
		logger.SetFormatter(&log.JSONFormatter{})
	}

	return logger
}

func newRunCommand(ctx context.Context, input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		logger := setupLogging(input, cmd.ErrOrStderr())

		algos, err := input.Algorithms()
		if err != nil {
			return err
		}

		g, err := loadGraph(input)
		if err != nil {
			return err
		}
		logger.WithFields(log.Fields{"vertices": g.Order(), "arcs": g.Size()}).Debug("graph loaded")

		failed := false
		out := cmd.OutOrStdout()
		for _, algo := range algos {
			opts := append(tracelog.Options[string](logger),
				search.WithContext[string](ctx),
				search.WithMaxExpansions[string](input.maxExpansions),
			)
			if input.strictStart {
				opts = append(opts, search.WithStrictStart[string]())
			}

			sol, err := search.Run(g, algo, opts...)
			if err != nil {
				fmt.Fprintf(out, "[%s] Error: %v\n", algo, err)
				failed = true
				continue
			}
			logger.WithFields(log.Fields{"algo": algo.String(), "expanded": sol.Expanded}).Debug("search done")
			fmt.Fprintf(out, "[%s] path: %s (cost %d)\n", algo, sol, sol.Cost)

			costs := algo == search.UCS
			if input.mermaid {
				fmt.Fprint(out, render.Mermaid(sol.Tree, render.WithCosts(costs)))
			}
			if input.edges {
				fmt.Fprint(out, render.EdgeList(sol.Tree, render.WithCosts(costs)))
			}
		}
		if failed {
			return errSearchFailed
		}

		return nil
	}
}

func loadGraph(input *Input) (*core.Graph[string, search.State, int64], error) {
	if input.graphPath == "" {
		return fixture.RunningExample(), nil
	}

	return fixture.Load(input.graphPath)
}
