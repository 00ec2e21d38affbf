package app

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/yungbote/brewery-backend/internal/data/cache"
	"github.com/yungbote/brewery-backend/internal/data/db"
	"github.com/yungbote/brewery-backend/internal/data/repos"
	"github.com/yungbote/brewery-backend/internal/http"
	"github.com/yungbote/brewery-backend/internal/observability"
	"github.com/yungbote/brewery-backend/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Redis    *goredis.Client
	Server   *http.Server
	Metrics  *observability.Metrics
	Cfg      Config
	Repos    repos.Set
	Services Services

	pg           *db.PostgresService
	otelShutdown func(context.Context) error
}

func New(ctx context.Context, cfg Config, log *logger.Logger) (*App, error) {
	otelShutdown := observability.InitOTel(ctx, log, cfg.Otel())

	pg, err := db.NewPostgresService(cfg.DB(), log)
	if err != nil {
		_ = otelShutdown(ctx)
		return nil, fmt.Errorf("init db: %w", err)
	}
	if cfg.AutoMigrate {
		if err := pg.AutoMigrateAll(); err != nil {
			_ = pg.Close()
			_ = otelShutdown(ctx)
			return nil, fmt.Errorf("db automigrate: %w", err)
		}
	}
	theDB := pg.DB()

	rdb := openRedis(ctx, cfg, log)
	metrics := observability.Init(cfg.MetricsEnabled, cfg.MetricsInterval)

	reposet := wireRepos(theDB, log)
	serviceset := wireServices(theDB, log, cfg, reposet, rdb, metrics)
	handlerset := wireHandlers(log, serviceset, readinessChecks(theDB, rdb)...)
	server := wireServer(log, cfg, handlerset, metrics)

	return &App{
		Log:          log,
		DB:           theDB,
		Redis:        rdb,
		Server:       server,
		Metrics:      metrics,
		Cfg:          cfg,
		Repos:        reposet,
		Services:     serviceset,
		pg:           pg,
		otelShutdown: otelShutdown,
	}, nil
}

// openRedis returns nil when redis is not configured or unreachable; the
// product cache is then disabled.
func openRedis(ctx context.Context, cfg Config, log *logger.Logger) *goredis.Client {
	rc := cfg.Redis()
	if rc.Addr == "" {
		log.Info("Redis not configured; product cache disabled")
		return nil
	}
	rdb, err := cache.NewRedisClient(ctx, rc)
	if err != nil {
		log.Warn("Redis unavailable; product cache disabled", "error", err, "addr", rc.Addr)
		return nil
	}
	log.Info("Redis connected", "addr", rc.Addr)
	return rdb
}

// Run serves HTTP and runs the background collectors until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	g, gctx := errgroup.WithContext(ctx)

	if a.Metrics != nil {
		a.Metrics.StartServer(gctx, a.Log, a.Cfg.MetricsAddr)
		a.Metrics.StartPostgresCollector(gctx, a.Log, a.DB)
		a.Metrics.StartOrderStatusCollector(gctx, a.Log, a.DB)
		a.Metrics.StartRedisCollector(gctx, a.Log, a.Redis)
	}

	g.Go(func() error {
		addr := a.Cfg.Addr()
		a.Log.Info("HTTP server listening", "addr", addr)
		return a.Server.Run(gctx, addr, a.Cfg.ShutdownTimeout)
	})

	err := g.Wait()
	a.Log.Info("HTTP server stopped")
	return err
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.otelShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), a.Cfg.ShutdownTimeout)
		if err := a.otelShutdown(ctx); err != nil && a.Log != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
		cancel()
	}
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
	if a.pg != nil {
		if err := a.pg.Close(); err != nil && a.Log != nil {
			a.Log.Warn("db close failed", "error", err)
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
