//go:build e2e

package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"restaurant-deals/cmd/bootstrap"
	"restaurant-deals/cmd/bootstrap/components"
	"restaurant-deals/internal/infra/upstream"
	"restaurant-deals/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// RefreshInterval is how often the e2e app reloads the feed.
const RefreshInterval = 50 * time.Millisecond

// FeedServer stands in for the upstream restaurant feed. The served payload
// and status can be swapped while the app is running.
type FeedServer struct {
	*httptest.Server

	mu      sync.Mutex
	payload upstream.RestaurantsPayload
	status  int
	hits    int
}

func NewFeedServer(t *testing.T, payload upstream.RestaurantsPayload) *FeedServer {
	t.Helper()

	f := &FeedServer{payload: payload, status: http.StatusOK}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		f.mu.Lock()
		payload, status := f.payload, f.status
		f.hits++
		f.mu.Unlock()

		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(payload)
	}))
	t.Cleanup(f.Close)
	return f
}

func (f *FeedServer) Serve(payload upstream.RestaurantsPayload) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payload = payload
	f.status = http.StatusOK
}

func (f *FeedServer) Fail(status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = status
}

func (f *FeedServer) Hits() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits
}

// ------------------------------------------------------------
// Application for each test suite
// Returns router, config, and fx.App for proper lifecycle management
// ------------------------------------------------------------
func buildE2EApp(feedURL string) (*gin.Engine, config.Config, *fx.App, error) {
	var router *gin.Engine
	var cfg config.Config

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config {
			return createTestConfig(feedURL)
		}),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		components.UseCaseModule,
		components.InfraModule,
		bootstrap.SnapshotModule,
		components.HandlerModule,

		fx.Populate(&router, &cfg),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		return nil, cfg, nil, fmt.Errorf("failed to start fx app: %w", err)
	}
	return router, cfg, app, nil
}

func createTestConfig(feedURL string) config.Config {
	testConfig := config.NewTestConfig()
	testConfig.Upstream.URL = feedURL
	testConfig.Upstream.RefreshInterval = RefreshInterval
	return testConfig
}

// StartApp boots the whole application against feedURL and stops it when the
// test ends.
func StartApp(t *testing.T, feedURL string) (*gin.Engine, config.Config, error) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router, cfg, app, err := buildE2EApp(feedURL)
	if err != nil {
		return nil, cfg, err
	}

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})
	return router, cfg, nil
}

// ------------------------------------------------------------
// Setup shared by the e2e suites
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	Feed   *FeedServer
	Config config.Config
}

// SetupSharedSuite starts a feed serving payload and the app on top of it.
func (s *SharedSuite) SetupSharedSuite(t *testing.T, payload upstream.RestaurantsPayload) {
	s.Feed = NewFeedServer(t, payload)

	router, cfg, err := StartApp(t, s.Feed.URL)
	require.NoError(t, err, "failed to start the application")
	s.Router = router
	s.Config = cfg
	require.NotNil(t, s.Router, "router was not populated")
}
