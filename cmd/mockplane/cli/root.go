// Package cli implements the mockplane command-line interface using Cobra.
// It provides commands for running the mock control-plane service and for
// querying or resetting a running instance.
package cli

import (
	"github.com/runnerops/mockplane/internal/log"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	jsonOut bool
)

var rootCmd = &cobra.Command{
	Use:   "mockplane",
	Short: "Mockplane - mock CI-runner control-plane service",
	Long: `Mockplane emulates the slice of a remote CI control-plane API needed
to exercise runner-registration flows: registration-token issuance,
runner listing, release metadata, and health/reset. Everything is served
from memory over loopback; no live network or credentials are involved.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := log.Init(log.Options{
			Verbose:    verbose,
			JSONFormat: jsonOut,
		}); err != nil {
			cmd.PrintErrf("Warning: failed to initialize logging: %v\n", err)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output in JSON format")
}
