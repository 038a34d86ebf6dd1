package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/binary-swipes/internal/observability"
	"github.com/vovakirdan/binary-swipes/internal/platform/tui"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with the mode picker.
Runs are stored per server (all users share the same leaderboard).

With --metrics, Prometheus counters for levels, swipes, game overs and
connected sessions are served at /metrics on that address.

Examples:
  swipes serve                          # Listen on :2222
  swipes serve --addr :23234
  swipes serve --host-key ./host_key
  swipes serve --metrics :9100

Users can connect with:
  ssh localhost -p 2222`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	f := serveCmd.Flags()
	f.String("addr", ":2222", "SSH server address (host:port)")
	f.String("host-key", "", "Path to host key file (generated if missing)")
	f.Duration("idle-timeout", 10*time.Minute, "Disconnect idle sessions after this long")
	f.String("metrics", "", "Serve Prometheus metrics on this address (disabled if empty)")
}

func runServe(_ *cobra.Command, _ []string) error {
	s := app.settings
	logger := observability.NewLogger(s.LogLevel, "swipes-ssh")

	store := openStore()

	var (
		metrics    *observability.Metrics
		metricsSrv *http.Server
		err        error
	)
	if s.Metrics.Address != "" {
		metrics = observability.NewMetrics()
		metricsSrv, err = startMetrics(s.Metrics.Address, metrics)
		if err != nil {
			if store != nil {
				store.Close()
			}
			return err
		}
		logger.Info("serving metrics", "address", s.Metrics.Address)
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     s.SSH.Address,
		HostKeyPath: s.SSH.HostKey,
		IdleTimeout: s.SSH.IdleTimeout,
		TickRate:    s.FPS,
		Table:       &app.table,
	}, store, logger, metrics)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return err
	}

	err = server.ListenAndServe()

	if metricsSrv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		//nolint:errcheck // Best-effort shutdown
		metricsSrv.Shutdown(ctx)
	}
	return err
}

// startMetrics listens on addr and serves /metrics in the background.
func startMetrics(addr string, m *observability.Metrics) (*http.Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.logger.Error("metrics server", "error", err)
		}
	}()
	return srv, nil
}
