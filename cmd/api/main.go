package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Ben-aoun-1/linksaudi/internal/bootstrap"
	"github.com/Ben-aoun-1/linksaudi/internal/config"
	"github.com/Ben-aoun-1/linksaudi/internal/observability/logging"
)

func main() {
	if err := run(); err != nil {
		slog.Error("api_exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Setup(cfg.LogLevel, cfg.ServiceName+"-api")

	app, err := bootstrap.NewApp(cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.APIPort),
		Handler:           app.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("api_listening", "addr", server.Addr, "index_backend", cfg.IndexBackend)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("api_shutting_down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
