package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"

	"github.com/yungbote/brewery-backend/internal/data/cache"
	"github.com/yungbote/brewery-backend/internal/data/db"
	"github.com/yungbote/brewery-backend/internal/platform/logger"
)

const (
	migrateLockKey = "lock:migrate"
	migrateLockTTL = 5 * time.Minute
)

// Migrate applies the schema. When redis is configured it first takes a
// best-effort lock so concurrent replicas do not migrate at once.
func Migrate(ctx context.Context, cfg Config, log *logger.Logger) error {
	pg, err := db.NewPostgresService(cfg.DB(), log)
	if err != nil {
		return fmt.Errorf("init db: %w", err)
	}
	defer func() { _ = pg.Close() }()

	release := acquireMigrateLock(ctx, cfg, log)
	defer release()

	if err := pg.AutoMigrateAll(); err != nil {
		return err
	}
	log.Info("Migration complete")
	return nil
}

func acquireMigrateLock(ctx context.Context, cfg Config, log *logger.Logger) func() {
	noop := func() {}
	rc := cfg.Redis()
	if rc.Addr == "" {
		return noop
	}
	rdb, err := cache.NewRedisClient(ctx, rc)
	if err != nil {
		log.Warn("redis unavailable; migrating without lock", "error", err)
		return noop
	}
	locker := redislock.New(rdb)
	lock, err := locker.Obtain(ctx, migrateLockKey, migrateLockTTL, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(time.Second), 60),
	})
	if errors.Is(err, redislock.ErrNotObtained) {
		log.Warn("could not obtain migrate lock; proceeding without lock")
		_ = rdb.Close()
		return noop
	}
	if err != nil {
		log.Warn("error obtaining migrate lock; proceeding without lock", "error", err)
		_ = rdb.Close()
		return noop
	}
	log.Info("Migrate lock obtained", "key", migrateLockKey)
	return func() {
		releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := lock.Release(releaseCtx); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			log.Warn("failed to release migrate lock", "error", err)
		}
		_ = rdb.Close()
	}
}
