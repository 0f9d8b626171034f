package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/latlng-parcel/internal/adapter/handler"
	"github.com/marcos-nsantos/latlng-parcel/internal/infrastructure/middleware"
)

type Router struct {
	engine            *gin.Engine
	coordinateHandler *handler.CoordinateHandler
	parcelHandler     *handler.ParcelHandler
	rateLimiter       *middleware.RateLimiter
	logger            *zap.Logger
}

type RouterConfig struct {
	CoordinateHandler *handler.CoordinateHandler
	ParcelHandler     *handler.ParcelHandler
	// RateLimiter is optional; nil disables rate limiting.
	RateLimiter *middleware.RateLimiter
	Logger      *zap.Logger
	Environment string
}

func NewRouter(cfg RouterConfig) *Router {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine:            engine,
		coordinateHandler: cfg.CoordinateHandler,
		parcelHandler:     cfg.ParcelHandler,
		rateLimiter:       cfg.RateLimiter,
		logger:            cfg.Logger,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Metrics())
	r.engine.Use(middleware.CORS())
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.engine.Group("/api/v1")
	if r.rateLimiter != nil {
		api.Use(r.rateLimiter.Limit())
	}
	{
		coordinates := api.Group("/coordinates")
		{
			coordinates.POST("/normalize", r.coordinateHandler.Normalize)
			coordinates.POST("/encode", r.coordinateHandler.Encode)
			coordinates.POST("/decode", r.coordinateHandler.Decode)
			coordinates.POST("/equal", r.coordinateHandler.Compare)
		}

		parcels := api.Group("/parcels")
		{
			parcels.POST("", r.parcelHandler.Create)
			parcels.POST("/import", r.parcelHandler.Import)
			parcels.GET("", r.parcelHandler.List)
			parcels.GET("/:id", r.parcelHandler.Get)
			parcels.GET("/:id/raw", r.parcelHandler.GetRaw)
			parcels.DELETE("/:id", r.parcelHandler.Delete)
		}
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
