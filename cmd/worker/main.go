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

	"github.com/Ben-aoun-1/linksaudi/internal/config"
	"github.com/Ben-aoun-1/linksaudi/internal/core/domain"
	natsqueue "github.com/Ben-aoun-1/linksaudi/internal/infrastructure/queue/nats"
	"github.com/Ben-aoun-1/linksaudi/internal/infrastructure/repository/postgres"
	"github.com/Ben-aoun-1/linksaudi/internal/observability/logging"
	"github.com/Ben-aoun-1/linksaudi/internal/observability/metrics"
)

const persistTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("worker_exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Setup(cfg.LogLevel, cfg.ServiceName+"-worker")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.OpenDB(ctx, cfg.PostgresDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := postgres.NewTranscriptRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		return err
	}

	queue, err := natsqueue.New(cfg.NATSURL)
	if err != nil {
		return err
	}
	defer queue.Close()

	workerMetrics := metrics.NewWorkerMetrics()

	sub, err := queue.SubscribeTranscripts(func(entry domain.TranscriptEntry) {
		persistEntry(repo, workerMetrics, entry)
	})
	if err != nil {
		return err
	}
	defer sub.Unsubscribe()

	metricsServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.WorkerMetricsPort),
		Handler:           workerMetrics.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := metricsServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			slog.Warn("worker_metrics_server_stopped", "error", err)
		}
	}()

	slog.Info("worker_consuming", "subject", natsqueue.SubjectTranscripts)
	<-ctx.Done()

	slog.Info("worker_shutting_down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return metricsServer.Shutdown(shutdownCtx)
}

func persistEntry(repo *postgres.TranscriptRepository, m *metrics.WorkerMetrics, entry domain.TranscriptEntry) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	err := repo.SaveEntry(ctx, entry)
	if err == nil && entry.SessionID != "" {
		err = repo.BumpSession(ctx, entry.SessionID, entry.Response.Metadata)
	}
	m.ObservePersist(err, time.Since(start))
	if err != nil {
		slog.Error("transcript_persist_failed", "entry_id", entry.ID, "error", err)
		return
	}
	slog.Debug("transcript_persisted", "entry_id", entry.ID, "session_id", entry.SessionID)
}
