package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/brewery-backend/internal/platform/logger"
)

// Dependency is something the service cannot take traffic without.
type Dependency struct {
	Name string
	Ping func(ctx context.Context) error
}

type HealthHandler struct {
	log     *logger.Logger
	deps    []Dependency
	timeout time.Duration
}

func NewHealthHandler(log *logger.Logger, deps ...Dependency) *HealthHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &HealthHandler{log: log.With("handler", "HealthHandler"), deps: deps, timeout: 2 * time.Second}
}

// GET /healthcheck
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// GET /readyz
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	status := http.StatusOK
	checks := make(map[string]string, len(h.deps))
	for _, d := range h.deps {
		if err := d.Ping(ctx); err != nil {
			h.log.Warn("readiness check failed", "dependency", d.Name, "error", err)
			checks[d.Name] = "down"
			status = http.StatusServiceUnavailable
			continue
		}
		checks[d.Name] = "ok"
	}
	c.JSON(status, gin.H{"checks": checks})
}
