package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/heartmarshall/worklisten-backend/internal/adapter/postgres"
	libraryrepo "github.com/heartmarshall/worklisten-backend/internal/adapter/postgres/library"
	"github.com/heartmarshall/worklisten-backend/internal/app/bootstrap"
	"github.com/heartmarshall/worklisten-backend/internal/config"
	"github.com/heartmarshall/worklisten-backend/internal/importer"
	"github.com/heartmarshall/worklisten-backend/internal/service/library"
	"github.com/heartmarshall/worklisten-backend/internal/transport/middleware"
	"github.com/heartmarshall/worklisten-backend/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, connects to the
// database, optionally imports the bundled corpora in the background and
// serves HTTP until ctx is canceled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)
	svc := library.NewService(logger, libraryrepo.New(pool, txm), importer.New(logger, cfg.Import.Delimiter()))

	var tracker bootstrap.Tracker
	if cfg.Import.BootstrapOnStart {
		stop := startBootstrap(ctx, &tracker, func(ctx context.Context) bool {
			return RunBootstrap(ctx, logger, cfg.Import, svc, false)
		})
		defer stop()
	}

	health := rest.NewHealthHandler(pool, BuildVersion())
	health.AddComponent("bootstrap", func(context.Context) rest.CompStatus {
		return rest.CompStatus{Status: tracker.State()}
	})

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := NewRouter(logger, cfg.CORS,
		health,
		rest.NewLibraryHandler(svc, cfg.Import.MaxUploadBytes, logger),
		limiter, cfg.Import.UploadsPerMinute,
	)

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// startBootstrap runs the corpus import in the background. The returned stop
// cancels the run and waits for it to return.
func startBootstrap(ctx context.Context, tracker *bootstrap.Tracker, run func(context.Context) bool) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	tracker.Start()
	go func() {
		defer close(done)
		tracker.Finish(run(ctx))
	}()

	return func() {
		cancel()
		<-done
	}
}

// RunBootstrap imports the configured corpora from cfg.BootstrapDir. It
// reports whether every corpus succeeded; failures are logged, never fatal.
func RunBootstrap(ctx context.Context, logger *slog.Logger, cfg config.ImportConfig, svc *library.Service, dryRun bool) bool {
	if cfg.BootstrapDir == "" {
		logger.Warn("bootstrap skipped: import.bootstrap_dir is not set")
		return false
	}

	p := bootstrap.NewPipeline(logger, svc, os.DirFS(cfg.BootstrapDir), cfg.Corpora, dryRun)
	if err := p.Run(ctx); err != nil {
		logger.Warn("bootstrap stopped", slog.String("error", err.Error()))
		return false
	}
	if p.HasErrors() {
		logger.Warn("bootstrap completed with errors")
		return false
	}
	return true
}
