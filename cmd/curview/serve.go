package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/gvallverdu/curview/internal/config"
	"github.com/gvallverdu/curview/internal/logger"
	"github.com/gvallverdu/curview/internal/store"
	"github.com/gvallverdu/curview/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server.",
	Long: `Serve starts the curvature analysis API on the configured address
(127.0.0.1:8050 by default). If localhost resolution misbehaves on your
system, set the host to 0.0.0.0 in the configuration.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}
		level := slog.LevelInfo
		if cfg.Debug {
			level = slog.LevelDebug
		}
		logger.Init(logger.Config{
			Level:  level,
			Format: logFormat,
			Output: cmd.ErrOrStderr(),
		})

		colors, err := config.LoadElementColors(cfg.ElementColors)
		if err != nil {
			return err
		}
		st, err := store.Open(filepath.Join(cfg.DataDir, "curview.db"))
		if err != nil {
			return err
		}
		defer st.Close()

		srv := &http.Server{
			Addr:    cfg.Addr(),
			Handler: web.New(st, colors, cfg.UploadLimit),
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errc := make(chan error, 1)
		go func() {
			logger.Info("serving", "addr", srv.Addr)
			errc <- srv.ListenAndServe()
		}()
		select {
		case err := <-errc:
			return err
		case <-ctx.Done():
		}
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
