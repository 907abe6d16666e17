package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/runnerops/mockplane/internal/mockapi"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var statusAddr string

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show health and release info for a running instance",
	RunE:  showStatus,
}

func init() {
	statusCmd.Flags().StringVar(&statusAddr, "addr", "127.0.0.1:8080", "address of the running instance")
	rootCmd.AddCommand(statusCmd)
}

type statusOutput struct {
	Status            string `json:"status"`
	Uptime            string `json:"uptime"`
	RequestCount      int64  `json:"request_count"`
	RegisteredRunners int    `json:"registered_runners"`
	RunnerRelease     string `json:"runner_release"`
}

func showStatus(cmd *cobra.Command, _ []string) error {
	client := mockapi.NewClient(statusAddr)

	var (
		health  *mockapi.HealthResponse
		release *mockapi.ReleaseResponse
	)
	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		var err error
		health, err = client.Health(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		release, err = client.LatestRelease(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("querying %s: %w", statusAddr, err)
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(statusOutput{
			Status:            health.Status,
			Uptime:            health.Uptime,
			RequestCount:      health.RequestCount,
			RegisteredRunners: health.RegisteredRunners,
			RunnerRelease:     release.TagName,
		})
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Status:\t%s\n", health.Status)
	fmt.Fprintf(w, "Uptime:\t%s\n", health.Uptime)
	fmt.Fprintf(w, "Requests:\t%d\n", health.RequestCount)
	fmt.Fprintf(w, "Runners:\t%d\n", health.RegisteredRunners)
	fmt.Fprintf(w, "Runner release:\t%s\n", release.TagName)
	return w.Flush()
}
