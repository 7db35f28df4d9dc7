package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"restaurant-deals/internal/handler/api"
	"restaurant-deals/internal/handler/middleware"
	"restaurant-deals/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, restaurantHandler *api.RestaurantHandler, healthHandler *api.HealthHandler) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg.Server, restaurantHandler, healthHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
	engine.NoRoute(middleware.NotFound())
}

func setupRoutes(engine *gin.Engine, cfg config.ServerConfig, restaurantHandler *api.RestaurantHandler, healthHandler *api.HealthHandler) {
	engine.GET("/health", healthHandler.Check)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group(basePath(cfg.APIBasePath))
	{
		restaurants := apiGroup.Group("/restaurants")
		addRoutes(restaurants, []route{
			{Method: http.MethodGet, Path: "/available", Handler: restaurantHandler.GetAvailableDeals},
			{Method: http.MethodGet, Path: "/peak-time", Handler: restaurantHandler.GetPeakTime},
		})
	}
}

// basePath normalises API_BASE_PATH to "/x/y" form; empty means the root.
func basePath(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return "/"
	}
	return "/" + p
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		g.Handle(r.Method, r.Path, r.Handler)
	}
}
