package app

import (
	"context"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/yungbote/brewery-backend/internal/http"
	httpH "github.com/yungbote/brewery-backend/internal/http/handlers"
	"github.com/yungbote/brewery-backend/internal/observability"
	"github.com/yungbote/brewery-backend/internal/platform/logger"
)

type Handlers struct {
	Health   *httpH.HealthHandler
	Product  *httpH.ProductHandler
	Customer *httpH.CustomerHandler
	Order    *httpH.OrderHandler
	Shipment *httpH.ShipmentHandler
}

func wireHandlers(log *logger.Logger, services Services, deps ...httpH.Dependency) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:   httpH.NewHealthHandler(log, deps...),
		Product:  httpH.NewProductHandler(log, services.Products),
		Customer: httpH.NewCustomerHandler(log, services.Customers),
		Order:    httpH.NewOrderHandler(log, services.Orders),
		Shipment: httpH.NewShipmentHandler(log, services.Shipments),
	}
}

func wireServer(log *logger.Logger, cfg Config, handlers Handlers, metrics *observability.Metrics) *http.Server {
	serviceName := ""
	if cfg.OtelEnabled {
		serviceName = cfg.ServiceName
	}
	return http.NewServer(http.RouterConfig{
		Log:             log,
		Metrics:         metrics,
		ServiceName:     serviceName,
		CORSOrigins:     cfg.CORSOrigins,
		HealthHandler:   handlers.Health,
		ProductHandler:  handlers.Product,
		CustomerHandler: handlers.Customer,
		OrderHandler:    handlers.Order,
		ShipmentHandler: handlers.Shipment,
	})
}

// readinessChecks pings the database and, when configured, redis.
func readinessChecks(db *gorm.DB, rdb *goredis.Client) []httpH.Dependency {
	deps := []httpH.Dependency{{Name: "database", Ping: func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}}}
	if rdb != nil {
		deps = append(deps, httpH.Dependency{Name: "redis", Ping: func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}})
	}
	return deps
}
