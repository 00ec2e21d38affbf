package aggregates

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	domainagg "github.com/yungbote/brewery-backend/internal/domain/aggregates"
	"github.com/yungbote/brewery-backend/internal/platform/dbctx"
	"github.com/yungbote/brewery-backend/internal/platform/logger"
)

const tracerName = "github.com/yungbote/brewery-backend/internal/data/aggregates"

// BaseDeps is shared by the order aggregate and by services that write a
// single versioned row.
type BaseDeps struct {
	DB       *gorm.DB
	Log      *logger.Logger
	Runner   TxRunner
	Hooks    Hooks
	CASGuard CASGuard

	// LockTimeout only applies when Runner is left nil.
	LockTimeout time.Duration
}

func (d BaseDeps) withDefaults() BaseDeps {
	if d.Runner == nil {
		d.Runner = NewGormTxRunner(d.DB, d.LockTimeout)
	}
	if d.Hooks == nil {
		d.Hooks = noopHooks{}
	}
	if d.CASGuard.db == nil {
		d.CASGuard = NewCASGuard(d.DB)
	}
	if d.Log == nil {
		d.Log = logger.Nop()
	}
	return d
}

// Write runs fn in one transaction under a span named op, classifies the
// failure and reports the outcome to the hooks.
func (d BaseDeps) Write(ctx context.Context, op string, fn func(dbc dbctx.Context) error) error {
	return executeWrite(ctx, d, op, fn)
}

// Read runs fn in one transaction without touching write hooks.
func (d BaseDeps) Read(ctx context.Context, op string, fn func(dbc dbctx.Context) error) error {
	d = d.withDefaults()
	return MapError(strings.TrimSpace(op), d.Runner.InTx(ctx, fn))
}

func (d BaseDeps) Guard() CASGuard {
	return d.withDefaults().CASGuard
}

func executeWrite(ctx context.Context, deps BaseDeps, op string, fn func(dbc dbctx.Context) error) error {
	deps = deps.withDefaults()
	op = strings.TrimSpace(op)
	if op == "" {
		op = "aggregate.write"
	}
	ctx, span := otel.Tracer(tracerName).Start(ctx, op, trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()

	start := time.Now()
	err := deps.Runner.InTx(ctx, fn)
	mapped := MapError(op, err)
	status := aggregateErrorStatus(mapped)
	span.SetAttributes(attribute.String("brewery.write.status", status))

	switch domainagg.CodeOf(mapped) {
	case "":
	case domainagg.CodeConflict:
		deps.Hooks.IncConflict(op)
	case domainagg.CodeRetryable:
		deps.Hooks.IncRetry(op)
		span.SetStatus(codes.Error, status)
	case domainagg.CodeInternal:
		deps.Log.Error("write failed", "op", op, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, status)
	}
	deps.Hooks.ObserveOperation(op, status, time.Since(start))
	return mapped
}

// aggregateErrorStatus is the hook status for err: "success" or its code.
func aggregateErrorStatus(err error) string {
	if err == nil {
		return "success"
	}
	code := domainagg.CodeOf(err)
	if code == "" {
		code = domainagg.CodeOf(MapError("aggregate.status", err))
	}
	return string(code)
}
