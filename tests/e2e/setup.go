//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"experience-booking/cmd/bootstrap"
	"experience-booking/cmd/bootstrap/components"
	"experience-booking/internal/infra/memstore"
	"experience-booking/internal/infra/seed"
	"experience-booking/internal/pkg/config"
	"experience-booking/internal/usecase/commands"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

type e2eApp struct {
	router  *gin.Engine
	cfg     config.Config
	db      *memstore.DB
	catalog commands.ExperienceCommands
	logger  *slog.Logger
}

// setupE2EEnvironment builds the real application graph against the in-memory
// store, with the response cache backed by an in-process redis.
func setupE2EEnvironment(t *testing.T) (e2eApp, *miniredis.Miniredis) {
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	cfg := createTestConfig(mr.Addr())

	app, fxApp := buildE2EApp(cfg)
	require.NotNil(t, app.router, "router setup failed")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := fxApp.Stop(ctx); err != nil {
			slog.Warn("Failed to stop fx application", "error", err.Error())
		}
	})

	return app, mr
}

// buildE2EApp returns the populated graph and the fx.App for lifecycle management.
func buildE2EApp(cfg config.Config) (e2eApp, *fx.App) {
	var app e2eApp

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config { return cfg }),
	)

	fxApp := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.StoreModule,
		bootstrap.CacheModule,
		bootstrap.QueueModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		bootstrap.SeedModule,

		fx.Populate(&app.router, &app.cfg, &app.db, &app.catalog, &app.logger),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := fxApp.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}
	return app, fxApp
}

func createTestConfig(redisAddr string) config.Config {
	testConfig := config.NewTestConfig()
	testConfig.Cache.Enabled = true
	testConfig.Cache.RedisAddr = redisAddr
	return testConfig
}

// SharedSuite is embedded by every e2e suite. Each subtest starts from the
// seeded catalog with no bookings and an empty response cache.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	Config config.Config

	app   e2eApp
	redis *miniredis.Miniredis
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	app, mr := setupE2EEnvironment(t)
	s.app = app
	s.redis = mr
	s.Router = app.router
	s.Config = app.cfg
	require.NotEmpty(t, s.Config, "config not populated")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

func (s *SharedSuite) SetupSubTest() {
	s.resetState()
}

func (s *SharedSuite) SetupTest() {
	s.resetState()
}

func (s *SharedSuite) resetState() {
	s.app.db.Reset()
	s.redis.FlushAll()
	err := seed.SeedCatalog(context.Background(), s.Config.Catalog, s.app.catalog, s.app.logger)
	require.NoError(s.T(), err, "failed to reseed catalog")
}
