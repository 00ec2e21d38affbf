package app

import (
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/yungbote/brewery-backend/internal/data/aggregates"
	"github.com/yungbote/brewery-backend/internal/data/cache"
	"github.com/yungbote/brewery-backend/internal/data/repos"
	"github.com/yungbote/brewery-backend/internal/observability"
	"github.com/yungbote/brewery-backend/internal/platform/logger"
	"github.com/yungbote/brewery-backend/internal/services"
)

type Services struct {
	Products  services.ProductService
	Customers services.CustomerService
	Orders    services.OrderService
	Shipments services.ShipmentService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet repos.Set, rdb *goredis.Client, metrics *observability.Metrics) Services {
	log.Info("Wiring services...")
	base := aggregates.BaseDeps{
		DB:          db,
		Log:         log,
		Hooks:       aggregates.NewObservabilityHooks(metrics, log),
		LockTimeout: cfg.DBLockTimeout,
	}
	orderAgg := aggregates.NewOrderAggregate(aggregates.OrderAggregateDeps{
		Base:      base,
		Orders:    reposet.Order,
		Products:  reposet.Product,
		Customers: reposet.Customer,
	})

	var productCache *cache.ProductCache
	if rdb != nil {
		productCache = cache.NewProductCache(cache.NewRedisStore(rdb), cfg.ProductCacheTTL, log).WithMetrics(metrics)
	}

	return Services{
		Products:  services.NewProductService(db, log, base, reposet.Product, productCache),
		Customers: services.NewCustomerService(db, log, base, reposet.Customer),
		Orders:    services.NewOrderService(db, log, orderAgg, reposet.Order),
		Shipments: services.NewShipmentService(db, log, base, reposet.Order, reposet.Shipment),
	}
}
