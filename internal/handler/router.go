package handler

import (
	"net/http"

	"experience-booking/internal/handler/api"
	resdto "experience-booking/internal/handler/dto/response"
	"experience-booking/internal/handler/httperr"
	"experience-booking/internal/handler/middleware"
	"experience-booking/internal/infra/cache"
	"experience-booking/internal/pkg/clock"
	"experience-booking/internal/pkg/config"
	"experience-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Experience *api.ExperienceHandler
	Booking    *api.BookingHandler
	User       *api.UserHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	store cache.Store,
	clk clock.Clock,
	h Handlers,
) {
	httperr.RegisterJSONFieldNames()
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, logger, store, clk, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger.GetSlogLogger()))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger.GetSlogLogger()))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, logger *middleware.Logger, store cache.Store, clk clock.Clock, h Handlers) {
	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	cacheExperiences := middleware.ResponseCache(store, commands.CacheGroupExperiences, logger.GetSlogLogger())
	cacheBookings := middleware.ResponseCache(store, commands.CacheGroupBookings, logger.GetSlogLogger())

	apiGroup := engine.Group("/api")
	addRoutes(apiGroup, []route{
		{Method: http.MethodGet, Path: "/health", Handler: healthCheck(clk)},

		{Method: http.MethodGet, Path: "/experiences", Handler: h.Experience.List, Mw: []gin.HandlerFunc{cacheExperiences}},
		{Method: http.MethodGet, Path: "/experiences/:id", Handler: h.Experience.Get},
		{Method: http.MethodGet, Path: "/experiences/:id/bookings", Handler: h.Experience.ListBookings},
		{Method: http.MethodGet, Path: "/categories", Handler: h.Experience.Categories, Mw: []gin.HandlerFunc{cacheExperiences}},
		{Method: http.MethodGet, Path: "/destinations", Handler: h.Experience.Destinations, Mw: []gin.HandlerFunc{cacheExperiences}},

		{Method: http.MethodPost, Path: "/bookings", Handler: h.Booking.Create},
		{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.List, Mw: []gin.HandlerFunc{cacheBookings}},
		{Method: http.MethodGet, Path: "/bookings/:id", Handler: h.Booking.Get},

		{Method: http.MethodPost, Path: "/users", Handler: h.User.Register},
		{Method: http.MethodGet, Path: "/users", Handler: h.User.GetByUsername},
		{Method: http.MethodGet, Path: "/users/:id", Handler: h.User.Get},
	})
}

// @Summary Health check
// @Description Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} resdto.HealthResponse
// @Router /health [get]
func healthCheck(clk clock.Clock) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, resdto.HealthResponse{Status: "ok", Timestamp: clk.Now().UTC()})
	}
}

// Route middleware goes into gin's own chain so c.Next inside it works.
func addRoutes(rg *gin.RouterGroup, routes []route) {
	for _, r := range routes {
		handlers := make([]gin.HandlerFunc, 0, len(r.Mw)+1)
		handlers = append(handlers, r.Mw...)
		handlers = append(handlers, r.Handler)
		rg.Handle(r.Method, r.Path, handlers...)
	}
}
