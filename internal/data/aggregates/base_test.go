package aggregates

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	domainagg "github.com/yungbote/brewery-backend/internal/domain/aggregates"
	"github.com/yungbote/brewery-backend/internal/platform/dbctx"
)

type passthroughRunner struct{}

func (passthroughRunner) InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(dbctx.Context{Ctx: ctx})
}

type recordedOp struct {
	Name   string
	Status string
}

type hookSpy struct {
	Operations []recordedOp
	Conflicts  []string
	Retries    []string
}

func (h *hookSpy) ObserveOperation(name, status string, _ time.Duration) {
	h.Operations = append(h.Operations, recordedOp{Name: name, Status: status})
}
func (h *hookSpy) IncConflict(name string) { h.Conflicts = append(h.Conflicts, name) }
func (h *hookSpy) IncRetry(name string)    { h.Retries = append(h.Retries, name) }

func TestWriteReportsOutcome(t *testing.T) {
	cases := []struct {
		name      string
		body      error
		status    string
		conflicts int
		retries   int
	}{
		{name: "success", status: "success"},
		{name: "stale version", body: ConflictError("version mismatch"), status: "conflict", conflicts: 1},
		{name: "lock timeout", body: RetryableError("lock timeout"), status: "retryable", retries: 1},
		{name: "line without product", body: InvariantError("line has no product"), status: "invariant_violation"},
		{name: "missing shipment", body: domainagg.NotFound("shipments.update", "Shipment", "7"), status: "not_found"},
		{name: "duplicate code", body: gorm.ErrDuplicatedKey, status: "duplicate_key"},
		{name: "driver failure", body: errors.New("syntax error near SELECT"), status: "internal"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			hooks := &hookSpy{}
			deps := BaseDeps{Runner: passthroughRunner{}, Hooks: hooks}
			err := deps.Write(context.Background(), "orders.update", func(dbctx.Context) error { return tc.body })
			if (err == nil) != (tc.body == nil) {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.body != nil && string(domainagg.CodeOf(err)) != tc.status {
				t.Fatalf("code: want=%s got=%v", tc.status, err)
			}
			if len(hooks.Operations) != 1 || hooks.Operations[0] != (recordedOp{Name: "orders.update", Status: tc.status}) {
				t.Fatalf("unexpected operations: %+v", hooks.Operations)
			}
			if len(hooks.Conflicts) != tc.conflicts || len(hooks.Retries) != tc.retries {
				t.Fatalf("conflicts=%v retries=%v", hooks.Conflicts, hooks.Retries)
			}
		})
	}
}

func TestWriteDefaultsOperationName(t *testing.T) {
	hooks := &hookSpy{}
	deps := BaseDeps{Runner: passthroughRunner{}, Hooks: hooks}
	if err := deps.Write(context.Background(), "  ", func(dbctx.Context) error { return nil }); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if hooks.Operations[0].Name != "aggregate.write" {
		t.Fatalf("unexpected op name %q", hooks.Operations[0].Name)
	}
}

func TestAggregateErrorStatus(t *testing.T) {
	if got := aggregateErrorStatus(nil); got != "success" {
		t.Fatalf("nil status: got=%s", got)
	}
	if got := aggregateErrorStatus(context.DeadlineExceeded); got != string(domainagg.CodeRetryable) {
		t.Fatalf("deadline status: got=%s", got)
	}
}

func TestReadSkipsHooks(t *testing.T) {
	hooks := &hookSpy{}
	deps := BaseDeps{Runner: passthroughRunner{}, Hooks: hooks}
	err := deps.Read(context.Background(), "orders.get", func(dbctx.Context) error {
		return domainagg.NotFound("orders.get", "Order", "1")
	})
	if !domainagg.IsCode(err, domainagg.CodeNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
	if len(hooks.Operations) != 0 {
		t.Fatalf("read should not emit operation hooks: %+v", hooks.Operations)
	}
}
