package aggregates

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/yungbote/brewery-backend/internal/platform/dbctx"
)

func TestWriteEmitsSpanPerOperation(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	deps := BaseDeps{Runner: passthroughRunner{}}
	_ = deps.Write(context.Background(), "shipments.create", func(dbctx.Context) error { return nil })
	_ = deps.Write(context.Background(), "orders.create", func(dbctx.Context) error { return errors.New("disk full") })

	spans := rec.Ended()
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}
	if spans[0].Name() != "shipments.create" || spans[0].Status().Code == codes.Error {
		t.Fatalf("unexpected first span: %s %v", spans[0].Name(), spans[0].Status())
	}
	if spans[1].Name() != "orders.create" || spans[1].Status().Code != codes.Error {
		t.Fatalf("expected failed orders.create span, got %s %v", spans[1].Name(), spans[1].Status())
	}
}
