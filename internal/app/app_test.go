package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/brewery-backend/internal/platform/logger"
)

func sqliteConfig(t *testing.T) Config {
	t.Helper()
	return Config{
		Port:            "0",
		DBDriver:        "sqlite",
		SQLitePath:      "file:app_" + uuid.NewString() + "?mode=memory&cache=shared&_busy_timeout=5000",
		AutoMigrate:     true,
		MetricsEnabled:  true,
		MetricsInterval: time.Second,
		ProductCacheTTL: time.Minute,
		ShutdownTimeout: time.Second,
	}
}

func TestNewWiresSQLiteStack(t *testing.T) {
	a, err := New(context.Background(), sqliteConfig(t), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(a.Close)

	require.Nil(t, a.Redis)
	require.NotNil(t, a.Metrics)
	require.NotNil(t, a.Services.Products)

	rec := httptest.NewRecorder()
	a.Server.Engine.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/products",
		strings.NewReader(`{"name":"Pinball Porter","style":"PORTER","code":"0083783375213","price":"4.50"}`)))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = httptest.NewRecorder()
	a.Server.Engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products?name=porter", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"totalElements":1`)
}

func TestRunStopsOnCancel(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.HTTPAddr = "127.0.0.1:0"
	a, err := New(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(a.Close)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestMigrateSQLite(t *testing.T) {
	cfg := sqliteConfig(t)
	require.NoError(t, Migrate(context.Background(), cfg, logger.Nop()))
}
