package aggregates

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/yungbote/brewery-backend/internal/observability"
	"github.com/yungbote/brewery-backend/internal/platform/logger"
)

func TestObservabilityHooksNilDepsAreNoop(t *testing.T) {
	if _, ok := NewObservabilityHooks(nil, nil).(noopHooks); !ok {
		t.Fatalf("expected noop hooks without metrics or logger")
	}
	h := NewObservabilityHooks(nil, logger.Nop())
	h.ObserveOperation("orders.create", "success", time.Millisecond)
	h.IncConflict("orders.update")
	h.IncRetry("orders.update")
}

func TestObservabilityHooksRecordMetrics(t *testing.T) {
	m := observability.NewMetrics(time.Minute)
	h := NewObservabilityHooks(m, logger.Nop())
	h.ObserveOperation(" Orders.Create ", "success", 5*time.Millisecond)
	h.IncConflict("orders.update")
	h.IncRetry("")

	var buf bytes.Buffer
	if err := m.WritePrometheus(&buf); err != nil {
		t.Fatalf("WritePrometheus: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		`brewery_aggregate_operations_total{op="orders.create",status="success"} 1`,
		`brewery_aggregate_conflicts_total{op="orders.update"} 1`,
		`brewery_aggregate_retryable_total{op="unknown"} 1`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}
