package http

import (
	"errors"
	nethttp "net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/brewery-backend/internal/http/handlers"
	httpMW "github.com/yungbote/brewery-backend/internal/http/middleware"
	"github.com/yungbote/brewery-backend/internal/http/response"
	"github.com/yungbote/brewery-backend/internal/observability"
	"github.com/yungbote/brewery-backend/internal/platform/apierr"
	"github.com/yungbote/brewery-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	Metrics     *observability.Metrics
	ServiceName string
	CORSOrigins []string

	ProductHandler  *httpH.ProductHandler
	CustomerHandler *httpH.CustomerHandler
	OrderHandler    *httpH.OrderHandler
	ShipmentHandler *httpH.ShipmentHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log, "/healthcheck", "/readyz", "/metrics"))
	r.Use(httpMW.Metrics(cfg.Metrics, "/metrics"))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	r.NoRoute(func(c *gin.Context) {
		response.RespondProblem(c, cfg.Log, apierr.New(nethttp.StatusNotFound, "no_route", errors.New("no handler for "+c.Request.Method+" "+c.Request.URL.Path)))
	})

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
		r.GET("/readyz", cfg.HealthHandler.Ready)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapF(cfg.Metrics.WriteHTTP))
	}

	api := r.Group("/api/v1")
	{
		// Products
		if cfg.ProductHandler != nil {
			api.POST("/products", cfg.ProductHandler.Create)
			api.GET("/products", cfg.ProductHandler.List)
			api.GET("/products/:id", cfg.ProductHandler.Get)
			api.PUT("/products/:id", cfg.ProductHandler.Update)
			api.PATCH("/products/:id", cfg.ProductHandler.Patch)
			api.DELETE("/products/:id", cfg.ProductHandler.Delete)
		}

		// Customers
		if cfg.CustomerHandler != nil {
			api.POST("/customers", cfg.CustomerHandler.Create)
			api.GET("/customers", cfg.CustomerHandler.List)
			api.GET("/customers/:id", cfg.CustomerHandler.Get)
			api.PUT("/customers/:id", cfg.CustomerHandler.Update)
			api.DELETE("/customers/:id", cfg.CustomerHandler.Delete)
		}

		// Orders
		if cfg.OrderHandler != nil {
			api.POST("/orders", cfg.OrderHandler.Create)
			api.GET("/orders", cfg.OrderHandler.List)
			api.GET("/orders/:id", cfg.OrderHandler.Get)
		}

		// Shipments (order-scoped)
		if cfg.ShipmentHandler != nil {
			api.POST("/orders/:id/shipments", cfg.ShipmentHandler.Create)
			api.GET("/orders/:id/shipments", cfg.ShipmentHandler.List)
			api.GET("/orders/:id/shipments/:shipmentId", cfg.ShipmentHandler.Get)
			api.PUT("/orders/:id/shipments/:shipmentId", cfg.ShipmentHandler.Update)
			api.DELETE("/orders/:id/shipments/:shipmentId", cfg.ShipmentHandler.Delete)
		}
	}

	return r
}
