package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aerotrack/internal/config"
	generate_excel "aerotrack/internal/service/generate-excel"
	"aerotrack/internal/service/report"
	"aerotrack/internal/storage/artifact"
	"aerotrack/internal/storage/jsonfile"
	"aerotrack/internal/storage/mysql"
)

const (
	envDev  = "dev"
	envProd = "prod"
)

func main() {
	cfg := config.MustConfig()

	log := setupLogger(cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := jsonfile.New(ctx, log, cfg.DataDir)
	if err != nil {
		log.Error("failed to load data", slog.String("dir", cfg.DataDir), slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := ensureAdmin(ctx, log, store, cfg.AdminLogin, cfg.AdminPass); err != nil {
		log.Error("failed to create default admin", slog.String("error", err.Error()))
		os.Exit(1)
	}

	index, closeIndex, err := setupIndex(ctx, *cfg, store)
	if err != nil {
		log.Error("failed to open report index", slog.String("index", cfg.Reports.Index), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeIndex()

	artifacts, err := setupArtifacts(ctx, *cfg)
	if err != nil {
		log.Error("failed to open report storage", slog.String("artifacts", cfg.Reports.Artifacts), slog.String("error", err.Error()))
		os.Exit(1)
	}

	deps := dependencies{
		store:   store,
		index:   index,
		reports: report.NewService(store, index, artifacts),
		excel:   generate_excel.NewGenerateService(store),
	}

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      routes(*cfg, log, deps),
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("failed to shutdown server", slog.String("error", err.Error()))
		}
	}()

	log.Info("server started",
		slog.String("address", cfg.Address),
		slog.String("data_dir", cfg.DataDir),
		slog.String("reports_index", cfg.Reports.Index),
		slog.String("reports_artifacts", cfg.Reports.Artifacts),
	)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("failed start server", slog.String("error", err.Error()))
	}

	log.Info("server stopped")
}

// setupIndex выбирает, где хранить записи об отчётах: в relatorios.json рядом
// с остальными коллекциями или в MySQL.
func setupIndex(ctx context.Context, cfg config.Config, store *jsonfile.Storage) (reportIndex, func(), error) {
	if cfg.Reports.Index == config.IndexMySQL {
		db, err := mysql.New(ctx, cfg.MySQL)
		if err != nil {
			return nil, nil, err
		}
		return db, func() { db.Close() }, nil
	}
	return store, func() {}, nil
}

func setupArtifacts(ctx context.Context, cfg config.Config) (report.ArtifactStore, error) {
	if cfg.Reports.Artifacts == config.ArtifactsS3 {
		return artifact.NewS3(ctx, artifact.S3Config{
			Region:    cfg.S3.Region,
			Endpoint:  cfg.S3.Endpoint,
			Bucket:    cfg.S3.Bucket,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			Prefix:    cfg.S3.Prefix,
		})
	}
	return artifact.NewFS(cfg.Reports.Dir), nil
}

type dualHandler struct {
	coreHandler  slog.Handler
	errorHandler slog.Handler
}

func (h *dualHandler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return h.coreHandler.Enabled(ctx, lvl) || h.errorHandler.Enabled(ctx, lvl)
}

func (h *dualHandler) Handle(ctx context.Context, r slog.Record) error {
	var err error

	if h.coreHandler.Enabled(ctx, r.Level) {
		if err = h.coreHandler.Handle(ctx, r); err != nil {
			return err
		}
	}

	// ошибки дополнительно пишем в файл
	if r.Level >= slog.LevelError && h.errorHandler.Enabled(ctx, r.Level) {
		_ = h.errorHandler.Handle(ctx, r.Clone())
	}

	return err
}

func (h *dualHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &dualHandler{
		coreHandler:  h.coreHandler.WithAttrs(attrs),
		errorHandler: h.errorHandler.WithAttrs(attrs),
	}
}

func (h *dualHandler) WithGroup(name string) slog.Handler {
	return &dualHandler{
		coreHandler:  h.coreHandler.WithGroup(name),
		errorHandler: h.errorHandler.WithGroup(name),
	}
}

func setupLogger(env string) *slog.Logger {
	coreHandler := consoleHandler(env, os.Stdout)

	// только ошибки
	errorFile, err := os.OpenFile("errors.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		slog.Warn("Cannot open error log file", "error", err)
		return slog.New(coreHandler)
	}

	errorHandler := slog.NewTextHandler(errorFile, &slog.HandlerOptions{
		Level: slog.LevelError,
	})

	return slog.New(&dualHandler{
		coreHandler:  coreHandler,
		errorHandler: errorHandler,
	})
}

// consoleHandler - основной вывод: dev в JSON, prod с уровня Info,
// local и прочие окружения текстом с отладкой.
func consoleHandler(env string, w io.Writer) slog.Handler {
	switch env {
	case envDev:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	case envProd:
		return slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		return slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
}
