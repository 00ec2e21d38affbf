package aggregates

import (
	"strings"
	"time"

	"github.com/yungbote/brewery-backend/internal/observability"
	"github.com/yungbote/brewery-backend/internal/platform/logger"
)

// Hooks receives the outcome of every write. Names are operation ids such as
// "orders.create" or "shipments.update".
type Hooks interface {
	ObserveOperation(name, status string, dur time.Duration)
	IncConflict(name string)
	IncRetry(name string)
}

type noopHooks struct{}

func (noopHooks) ObserveOperation(string, string, time.Duration) {}
func (noopHooks) IncConflict(string)                             {}
func (noopHooks) IncRetry(string)                                {}

type observabilityHooks struct {
	metrics *observability.Metrics
	log     *logger.Logger
}

// NewObservabilityHooks reports write outcomes to metrics and logs stale
// version conflicts and retryable failures. Both arguments may be nil.
func NewObservabilityHooks(metrics *observability.Metrics, log *logger.Logger) Hooks {
	if metrics == nil && log == nil {
		return noopHooks{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &observabilityHooks{metrics: metrics, log: log.With("component", "aggregate_hooks")}
}

func (h *observabilityHooks) ObserveOperation(name, status string, dur time.Duration) {
	h.metrics.ObserveAggregateOperation(opName(name), strings.TrimSpace(status), dur)
}

func (h *observabilityHooks) IncConflict(name string) {
	name = opName(name)
	h.log.Warn("stale version rejected", "op", name)
	h.metrics.IncAggregateConflict(name)
}

func (h *observabilityHooks) IncRetry(name string) {
	name = opName(name)
	h.log.Warn("transient write failure", "op", name)
	h.metrics.IncAggregateRetry(name)
}

func opName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "unknown"
	}
	return name
}
