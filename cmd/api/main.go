package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dineshbharati27/video-stream-app/internal/adapters/eventbroker/nats"
	"github.com/dineshbharati27/video-stream-app/internal/adapters/handlers/http/chi"
	"github.com/dineshbharati27/video-stream-app/internal/adapters/handlers/http/chi/v1/video"
	"github.com/dineshbharati27/video-stream-app/internal/adapters/repository/postgres"
	"github.com/dineshbharati27/video-stream-app/internal/adapters/storage/minio"
	"github.com/dineshbharati27/video-stream-app/internal/config"
	"github.com/dineshbharati27/video-stream-app/internal/core/port"
	"github.com/dineshbharati27/video-stream-app/internal/core/service/catalog"
	"github.com/dineshbharati27/video-stream-app/internal/core/service/chunkstore"
	"github.com/dineshbharati27/video-stream-app/internal/core/service/cleanup"
	"github.com/dineshbharati27/video-stream-app/internal/core/service/ingest"
	"github.com/dineshbharati27/video-stream-app/internal/core/service/stream"

	_ "github.com/lib/pq"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := initDB(cfg.Database)
	if err != nil {
		logger.Error("failed to init database", "error", err)
		os.Exit(1)
	}
	defer func(db *sql.DB) {
		err := db.Close()
		if err != nil {
			logger.Error("failed to close database", "error", err)
			os.Exit(1)
		}
	}(db)
	logger.Info("db connection established")

	//repositories
	catalogRepo := postgres.NewSqlCatalogRepository(db)

	chunkRepo, err := initChunkRepository(ctx, cfg, db, logger)
	if err != nil {
		logger.Error("failed to init chunk storage", "error", err)
		os.Exit(1)
	}
	logger.Info("chunk storage initialized", "backend", cfg.Storage.Backend)

	store, err := chunkstore.New(chunkRepo, cfg.Stream.ChunkSize)
	if err != nil {
		logger.Error("failed to init chunk store", "error", err)
		os.Exit(1)
	}

	//event broker
	publisher, err := nats.NewPublisher(ctx, cfg.NATS, logger)
	if err != nil {
		logger.Error("failed to init nats publisher", "error", err)
		os.Exit(1)
	}
	defer publisher.Close()

	//services
	catalogService := catalog.NewCatalogService(catalogRepo)
	ingestService := ingest.NewIngestService(catalogRepo, store, publisher, logger)
	streamService := stream.NewStreamService(catalogRepo, store, cfg.Stream.DefaultSpan)
	cleanupService := cleanup.NewCleanupService(catalogRepo, chunkRepo, logger)

	//http
	videoHandler := video.NewVideoHandlerV1(ingestService, streamService, catalogService, cfg.Server.PublicBaseURL, logger)

	router := chi.NewRouter(logger, videoHandler, cfg.Stream.MaxUploadSize, cfg.Env.Env)
	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
		servErr := server.ListenAndServe()
		if servErr != nil && !errors.Is(servErr, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", servErr)
			stop()
		}
	}()

	// init cleanup task
	wg.Add(1)
	go func() {
		defer wg.Done()
		initCleanupTask(ctx, cleanupService, cfg.Cleanup, logger)
	}()

	//wait for context cancel
	<-ctx.Done()
	logger.Info("gracefully shutting down app")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	} else {
		logger.Info("server gracefully shutdown complete")
	}

	wg.Wait()
	logger.Info("app shutdown complete")

}

func initDB(cfg config.DatabaseConfig) (*sql.DB, error) {

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenCons)
	db.SetMaxIdleConns(cfg.MaxIdleCons)
	db.SetConnMaxLifetime(cfg.ConMaxLifeTime)

	return db, nil
}

// initChunkRepository picks where chunk payloads live. The catalog always
// stays in postgres; chunks can sit next to it or in an object store.
func initChunkRepository(ctx context.Context, cfg *config.Config, db *sql.DB, logger *slog.Logger) (port.ChunkRepository, error) {

	switch cfg.Storage.Backend {
	case "postgres":
		return postgres.NewSqlChunkRepository(db), nil
	case "minio":
		return minio.NewAdapter(ctx, cfg.Minio, logger)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

func initCleanupTask(ctx context.Context, service port.CleanupService, cfg config.CleanupConfig, logger *slog.Logger) {
	ticker := time.NewTicker(cfg.Every)
	defer ticker.Stop()

	logger.Info("cleanup task initialized", "interval", cfg.Every, "orphan_ttl", cfg.OrphanTTL)

	for {
		select {
		case <-ticker.C:
			logger.Info("cleanup task starting")
			err := service.CleanupOrphanedChunks(ctx, time.Now().Add(-cfg.OrphanTTL))
			if err != nil {
				logger.Error("failed to cleanup orphaned chunks", "error", err)
			} else {
				logger.Info("cleanup task completed successfully")
			}
		case <-ctx.Done():
			logger.Info("cleanup task stopped")
			return
		}
	}

}
