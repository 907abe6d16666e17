package cli

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/runnerops/mockplane/internal/config"
	"github.com/runnerops/mockplane/internal/log"
	"github.com/runnerops/mockplane/internal/mockapi"
	"github.com/spf13/cobra"
)

var (
	servePort    int
	serveNoAuth  bool
	serveLogFile string
	serveConfig  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the mock control-plane service",
	Long: `Start the mock control-plane HTTP service on the loopback interface
and serve until interrupted. In-flight requests finish before the
process exits.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port (default from config, 8080)")
	serveCmd.Flags().BoolVar(&serveNoAuth, "no-auth", false, "accept protected routes without an Authorization header")
	serveCmd.Flags().StringVar(&serveLogFile, "log-file", "", "append request logs to this file")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "path to a mockplane.yaml config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(serveConfig)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if serveNoAuth {
		cfg.AuthEnabled = false
	}
	if serveLogFile != "" {
		cfg.LogFile = serveLogFile
	}

	// Re-init logging now that the request-log destination is known.
	if cfg.LogFile != "" {
		if err := log.Init(log.Options{
			Verbose:    verbose,
			JSONFormat: jsonOut,
			LogFile:    cfg.LogFile,
		}); err != nil {
			return err
		}
		defer log.Close()
	}

	srv := mockapi.NewServer(cfg.Port, cfg.AuthEnabled)
	if err := srv.Start(); err != nil {
		return err
	}
	log.Info("mock control plane listening", "addr", srv.Addr(), "auth", cfg.AuthEnabled)
	cmd.Printf("mockplane listening on %s\n", srv.Addr())

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Stop(shutdownCtx)
}
