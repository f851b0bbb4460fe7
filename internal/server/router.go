package server

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/tutor-classes-api/api/swagger"
	"github.com/noah-isme/tutor-classes-api/internal/handler"
	internalmiddleware "github.com/noah-isme/tutor-classes-api/internal/middleware"
	"github.com/noah-isme/tutor-classes-api/internal/service"
	"github.com/noah-isme/tutor-classes-api/pkg/config"
	"github.com/noah-isme/tutor-classes-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/tutor-classes-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/tutor-classes-api/pkg/middleware/requestid"
)

// Dependencies are the collaborators the HTTP router is assembled from.
type Dependencies struct {
	Config  *config.Config
	Logger  *zap.Logger
	Metrics *service.MetricsService
	Classes *handler.ClassHandler
	Probes  *handler.MetricsHandler
}

// NewRouter builds the gin engine with middleware and every route mounted.
func NewRouter(deps Dependencies) *gin.Engine {
	cfg := deps.Config
	logr := deps.Logger
	if logr == nil {
		logr = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr, "/health", "/ready", cfg.Metrics.Path))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	if cfg.Metrics.Enabled {
		r.Use(internalmiddleware.Metrics(deps.Metrics, cfg.Metrics.Path))
	}

	r.GET("/health", deps.Probes.Health)
	r.GET("/ready", deps.Probes.Ready)
	if cfg.Metrics.Enabled {
		r.GET(cfg.Metrics.Path, deps.Probes.Prometheus)
	}

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	deps.Classes.RegisterRoutes(api)

	return r
}
