//go:build integration

package integration

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http/httptest"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	httpadapter "github.com/jsamuelsen/carinsurance-service/internal/adapters/http"
	"github.com/jsamuelsen/carinsurance-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/carinsurance-service/internal/adapters/lock"
	"github.com/jsamuelsen/carinsurance-service/internal/adapters/store/gormstore"
	"github.com/jsamuelsen/carinsurance-service/internal/app"
	"github.com/jsamuelsen/carinsurance-service/internal/domain"
	"github.com/jsamuelsen/carinsurance-service/internal/platform/clock"
	"github.com/jsamuelsen/carinsurance-service/internal/platform/config"
	"github.com/jsamuelsen/carinsurance-service/internal/ports"
)

// harnessToday is the calendar day the in-process service believes it is.
var harnessToday = domain.NewDate(2025, 6, 15)

// harness is the service wired as the serve command wires it, over a
// seeded SQLite file, behind an httptest server.
type harness struct {
	server  *httptest.Server
	store   *gormstore.Store
	clock   *clock.Fixed
	sweeper *app.ExpirationSweeper
}

// startHarness opens a fresh database under dir, seeds the demo data and
// starts serving. Call close when done.
func startHarness(dir string) (*harness, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store, err := gormstore.Open(gormstore.Config{
		Driver:       gormstore.DriverSQLite,
		DSN:          "file:" + filepath.Join(dir, "cars.db") + "?_foreign_keys=1&_busy_timeout=5000",
		MaxOpenConns: 1,
		LogLevel:     "silent",
		Logger:       logger,
	})
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	ctx := context.Background()

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}

	if _, err := store.Seed(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}

	fixed := clock.NewFixed(harnessToday)

	registry := ports.NewHealthRegistry()
	if err := registry.Register(store); err != nil {
		_ = store.Close()
		return nil, err
	}

	service := app.NewCarService(app.CarServiceConfig{
		Cars:     store.Cars(),
		Owners:   store.Owners(),
		Policies: store.Policies(),
		Claims:   store.Claims(),
		Clock:    fixed,
		Logger:   logger,
	})

	sweeper := app.NewExpirationSweeper(app.SweeperConfig{
		Policies: store.Policies(),
		Clock:    fixed,
		Lock:     lock.NewLocal(),
		Logger:   logger,
	})

	gin.SetMode(gin.TestMode)

	engine := gin.New()
	httpadapter.SetupRouter(engine, httpadapter.NewDefaultRouterConfig(
		logger,
		&config.Config{
			App:    config.AppConfig{Name: "carinsurance-integration"},
			Server: config.ServerConfig{RequestTimeout: 10 * time.Second},
		},
		handlers.NewHealthHandler(registry, handlers.NewBuildInfo("test", "none", "now")),
		handlers.NewCarHandler(service),
	))

	return &harness{
		server:  httptest.NewServer(engine),
		store:   store,
		clock:   fixed,
		sweeper: sweeper,
	}, nil
}

func (h *harness) URL() string {
	return h.server.URL
}

func (h *harness) close() {
	h.server.Close()
	_ = h.store.Close()
}
