package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/studiobridge/studiobridge/internal/adapters/driving/mcp"
	"github.com/studiobridge/studiobridge/internal/adapters/driving/rest"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web admin API and MCP HTTP server",
	Long: `Starts the JSON web administration API under /api/v1, mounts the
MCP server over streamable HTTP under /mcp, and schedules periodic mirror
syncs at the configured interval.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mcpServer, err := mcp.NewServer(a.mcpPorts())
	if err != nil {
		return err
	}

	api := rest.NewServer(rest.Deps{
		Site:        a.connector,
		Staff:       a.connector,
		Client:      a.connector,
		Class:       a.connector,
		Appointment: a.connector,
		Enrollment:  a.connector,
		Sale:        a.connector,
		Sync:        a.sync,
		Configured:  a.creds.Configured,
		Logger:      a.log,
	})

	mux := http.NewServeMux()
	mux.Handle("/api/v1/", api.Router())
	mux.Handle("/mcp", mcpServer.Handler())

	addr := fmt.Sprintf("%s:%d", a.cfg.Server.Host, a.cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if a.cfg.Sync.Enabled {
		go a.runSyncScheduler(ctx)
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.Timeout)
		defer cancel()
		srv.Shutdown(shutdownCtx) //nolint:errcheck
	}()

	a.log.Info().Str("addr", addr).Msg("serving web API and MCP")
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// runSyncScheduler runs SyncAll on the configured interval. The interval
// is re-read from settings each cycle so edits apply without a restart.
func (a *app) runSyncScheduler(ctx context.Context) {
	interval := a.settings.Current().SyncInterval
	if interval <= 0 {
		interval = a.cfg.Sync.Interval
	}

	timer := time.NewTimer(interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			if _, err := a.sync.SyncAll(ctx); err != nil {
				a.log.Warn().Err(err).Msg("scheduled sync failed")
			}
			if next := a.settings.Current().SyncInterval; next > 0 {
				interval = next
			}
			timer.Reset(interval)
		}
	}
}
