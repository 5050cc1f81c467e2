package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/BruksfildServices01/construction-site/internal/audit"
	"github.com/BruksfildServices01/construction-site/internal/config"
	dbpkg "github.com/BruksfildServices01/construction-site/internal/db"
	"github.com/BruksfildServices01/construction-site/internal/routes"
	"github.com/BruksfildServices01/construction-site/internal/storage"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, db, err := connect(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	rdb, err := dbpkg.NewRedis(cfg.RedisURL)
	if err != nil {
		return err
	}
	defer rdb.Close()

	dispatcher := audit.NewDispatcher(audit.New(db), log)

	deps := routes.Deps{
		DB:     db,
		Redis:  rdb,
		Config: cfg,
		Log:    log,
		Audit:  dispatcher,
	}
	if cfg.Storage.Enabled() {
		deps.Storage = storage.NewS3Storage(cfg.Storage)
	} else {
		log.Info("uploads disabled: S3_BUCKET not set")
	}

	router, err := routes.NewRouter(deps)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("server running", zap.String("addr", cfg.Addr()), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return dispatcher.Close(shutdownCtx)
	})

	return g.Wait()
}
