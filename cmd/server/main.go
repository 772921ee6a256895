// Command server runs the knowledge platform API.
//
//	@title                      Knowledge Transfer Platform API
//	@version                    1.0.0
//	@description                Role- and clearance-gated read access to internal knowledge artifacts.
//	@securityDefinitions.apikey BearerAuth
//	@in                         header
//	@name                       Authorization
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/knowledgehub/knowledge-platform/internal/api"
	"github.com/knowledgehub/knowledge-platform/internal/core/ports"
	"github.com/knowledgehub/knowledge-platform/internal/core/service"
	"github.com/knowledgehub/knowledge-platform/internal/infrastructure/config"
	mongostore "github.com/knowledgehub/knowledge-platform/internal/infrastructure/db/mongo"
	"github.com/knowledgehub/knowledge-platform/internal/infrastructure/db/redis"
	"github.com/knowledgehub/knowledge-platform/internal/infrastructure/db/sqlite"
	"github.com/knowledgehub/knowledge-platform/internal/infrastructure/http/handlers"
	"github.com/knowledgehub/knowledge-platform/internal/infrastructure/queue"
	"github.com/knowledgehub/knowledge-platform/pkg/logger"
)

const version = "1.0.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		lg := logger.Init(logger.Options{})
		lg.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Redis (login throttle) ---
	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()
	throttle := redis.NewLoginThrottle(rdb)

	// --- Storage backend ---
	var (
		users     ports.UserRepository
		artifacts ports.ArtifactRepository
		audit     ports.AuditRepository
		storeOK   handlers.Check
		demoUsers []string
	)
	switch cfg.StoreBackend {
	case config.BackendSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open sqlite store")
		}
		defer db.Close()

		if err := sqlite.RunMigrations(db); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
		if cfg.SeedDemoData {
			if err := sqlite.Seed(ctx, db); err != nil {
				log.Fatal().Err(err).Msg("failed to seed demo data")
			}
			demoUsers = sqlite.DemoUsernames()
		}

		users = sqlite.NewUserRepository(db)
		artifacts = sqlite.NewArtifactRepository(db)
		audit = sqlite.NewAuditRepository(db)
		storeOK = db.PingContext

	case config.BackendMongo:
		client, db, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to mongodb")
		}
		defer func() { _ = client.Disconnect(context.Background()) }()

		if cfg.SeedDemoData {
			log.Warn().Msg("demo seeding is only supported on the sqlite backend, skipping")
		}

		users = mongostore.NewUserRepository(db)
		artifacts = mongostore.NewArtifactRepository(db)
		audit = mongostore.NewAuditRepository(db)
		storeOK = func(ctx context.Context) error { return client.Ping(ctx, nil) }
	}

	// --- Audit dispatcher ---
	dispatcher := queue.NewDispatcher(0, audit, log)
	dispatcher.Start(ctx)

	// --- HTTP server ---
	e := api.NewRouter(api.Deps{
		Users:     users,
		Artifacts: artifacts,
		Audit:     audit,
		Sessions:  service.NewSessionService(cfg.JWTSecret, cfg.TokenTTL),
		Throttle:  throttle,
		AuditSink: dispatcher,
		HealthChecks: map[string]handlers.Check{
			cfg.StoreBackend: storeOK,
			"redis":          func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		},
		Logger:    log,
		Version:   version,
		DemoUsers: demoUsers,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("backend", cfg.StoreBackend).Msg("server started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
