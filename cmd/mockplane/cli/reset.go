package cli

import (
	"fmt"

	"github.com/runnerops/mockplane/internal/mockapi"
	"github.com/spf13/cobra"
)

var resetAddr string

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the registry and request counter of a running instance",
	RunE: func(cmd *cobra.Command, _ []string) error {
		client := mockapi.NewClient(resetAddr)
		if err := client.Reset(cmd.Context()); err != nil {
			return fmt.Errorf("resetting %s: %w", resetAddr, err)
		}
		cmd.Println("Mock data reset")
		return nil
	},
}

func init() {
	resetCmd.Flags().StringVar(&resetAddr, "addr", "127.0.0.1:8080", "address of the running instance")
	rootCmd.AddCommand(resetCmd)
}
