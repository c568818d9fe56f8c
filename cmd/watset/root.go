package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newRootCmd assembles the command tree. Every call returns fresh commands
// and flag state.
func newRootCmd() *cobra.Command {
	var verbose bool
	var undo func()

	root := &cobra.Command{
		Use:          "watset",
		Short:        "Graph clustering toolkit",
		Long:         `watset partitions the vertices of a weighted graph with interchangeable clustering algorithms.`,
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			logger, err := newLogger(verbose)
			if err != nil {
				return err
			}
			undo = zap.ReplaceGlobals(logger)

			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = zap.L().Sync()
			if undo != nil {
				undo()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug diagnostics to stderr")

	root.AddCommand(newClusterCmd(), newAlgorithmsCmd(), newGenerateCmd())

	return root
}

// newLogger returns a development logger when verbose is set and a
// production logger otherwise.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}
