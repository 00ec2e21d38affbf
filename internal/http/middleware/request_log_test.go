package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/yungbote/brewery-backend/internal/platform/logger"
)

func TestRequestLoggerLevels(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.DebugLevel)
	log := &logger.Logger{SugaredLogger: zap.New(core).Sugar()}

	r := gin.New()
	r.Use(AttachTraceContext(), RequestLogger(log, "/healthcheck"))
	r.GET("/healthcheck", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/orders/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.POST("/orders", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/healthcheck", nil),
		httptest.NewRequest(http.MethodGet, "/orders/42?expand=lines", nil),
		httptest.NewRequest(http.MethodPost, "/orders", nil),
	} {
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	entries := logs.All()
	if len(entries) != 3 {
		t.Fatalf("expected 3 log lines, got %d", len(entries))
	}
	wantLevels := []zapcore.Level{zapcore.DebugLevel, zapcore.WarnLevel, zapcore.ErrorLevel}
	for i, e := range entries {
		if e.Level != wantLevels[i] {
			t.Fatalf("entry %d: want level %s got %s", i, wantLevels[i], e.Level)
		}
	}
	fields := entries[1].ContextMap()
	if fields["route"] != "/orders/:id" || fields["path"] != "/orders/42" || fields["query"] != "expand=lines" {
		t.Fatalf("unexpected fields: %v", fields)
	}
	if fields["request_id"] == "" || fields["request_id"] == nil {
		t.Fatalf("expected request id field: %v", fields)
	}
}
