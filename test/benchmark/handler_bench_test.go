package benchmark

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	httpadapter "github.com/jsamuelsen/carinsurance-service/internal/adapters/http"
	"github.com/jsamuelsen/carinsurance-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/carinsurance-service/internal/adapters/store/gormstore"
	"github.com/jsamuelsen/carinsurance-service/internal/app"
	"github.com/jsamuelsen/carinsurance-service/internal/domain"
	"github.com/jsamuelsen/carinsurance-service/internal/platform/clock"
	"github.com/jsamuelsen/carinsurance-service/internal/platform/config"
	"github.com/jsamuelsen/carinsurance-service/internal/ports"
)

func init() {
	// Set Gin to release mode for accurate benchmarks
	gin.SetMode(gin.ReleaseMode)
}

// createGinContext creates a Gin context for handler testing.
func createGinContext(w http.ResponseWriter, r *http.Request) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Request = r
	return c
}

// setupHealthHandler creates a HealthHandler with a minimal registry for benchmarking.
func setupHealthHandler() *handlers.HealthHandler {
	registry := ports.NewHealthRegistry()
	buildInfo := handlers.NewBuildInfo("1.0.0", "abc123", "2024-01-01T00:00:00Z")
	return handlers.NewHealthHandler(registry, buildInfo)
}

// setupRouter builds the full router over a seeded in-memory store.
func setupRouter(b *testing.B) *gin.Engine {
	b.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store, err := gormstore.Open(gormstore.Config{
		Driver:   gormstore.DriverSQLite,
		DSN:      "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		LogLevel: "silent",
		Logger:   logger,
	})
	if err != nil {
		b.Fatalf("opening store: %v", err)
	}
	b.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		b.Fatalf("migrating: %v", err)
	}
	if _, err := store.Seed(ctx); err != nil {
		b.Fatalf("seeding: %v", err)
	}

	service := app.NewCarService(app.CarServiceConfig{
		Cars:     store.Cars(),
		Owners:   store.Owners(),
		Policies: store.Policies(),
		Claims:   store.Claims(),
		Clock:    clock.NewFixed(domain.NewDate(2025, 6, 15)),
		Logger:   logger,
	})

	engine := gin.New()
	httpadapter.SetupRouter(engine, httpadapter.NewDefaultRouterConfig(
		logger,
		&config.Config{App: config.AppConfig{Name: "carinsurance-bench"}},
		setupHealthHandler(),
		handlers.NewCarHandler(service),
	))

	return engine
}

// BenchmarkLivenessHandler measures the performance of the liveness endpoint.
// This is a critical path for Kubernetes health checks and should be extremely fast.
func BenchmarkLivenessHandler(b *testing.B) {
	handler := setupHealthHandler()
	req := httptest.NewRequest(http.MethodGet, "/-/live", http.NoBody)

	b.ReportAllocs()

	for b.Loop() {
		w := httptest.NewRecorder()
		c := createGinContext(w, req)
		handler.Liveness(c)
	}
}

// BenchmarkReadinessHandler_WithChecks measures readiness with registered health checks.
func BenchmarkReadinessHandler_WithChecks(b *testing.B) {
	registry := ports.NewHealthRegistry()
	_ = registry.Register(&simpleHealthChecker{name: "database"})
	_ = registry.Register(&simpleHealthChecker{name: "sweep_lock"})

	buildInfo := handlers.NewBuildInfo("1.0.0", "abc123", "2024-01-01T00:00:00Z")
	handler := handlers.NewHealthHandler(registry, buildInfo)
	req := httptest.NewRequest(http.MethodGet, "/-/ready", http.NoBody)

	b.ReportAllocs()

	for b.Loop() {
		w := httptest.NewRecorder()
		c := createGinContext(w, req)
		handler.Readiness(c)
	}
}

// BenchmarkInsuranceValid measures a validity check through the full
// middleware chain and the SQLite store.
func BenchmarkInsuranceValid(b *testing.B) {
	router := setupRouter(b)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cars/1/insurance-valid?date=2025-06-15", http.NoBody)

	b.ReportAllocs()

	for b.Loop() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			b.Fatalf("unexpected status %d: %s", w.Code, w.Body.String())
		}
	}
}

// BenchmarkHistory measures building a car's history.
func BenchmarkHistory(b *testing.B) {
	router := setupRouter(b)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cars/1/history", http.NoBody)

	b.ReportAllocs()

	for b.Loop() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
	}
}

// BenchmarkRegisterClaim measures the claim write path including the
// coverage check.
func BenchmarkRegisterClaim(b *testing.B) {
	router := setupRouter(b)
	const body = `{"claimDate":"2025-03-01","description":"bench","amount":120.50}`

	b.ReportAllocs()

	for b.Loop() {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/cars/1/claims", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			b.Fatalf("unexpected status %d: %s", w.Code, w.Body.String())
		}
	}
}

// simpleHealthChecker is a minimal health checker for benchmarking.
type simpleHealthChecker struct {
	name string
}

func (s *simpleHealthChecker) Name() string {
	return s.name
}

func (s *simpleHealthChecker) Check(_ context.Context) error {
	return nil
}
