package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/killallgit/feedcast/api/episodes"
	"github.com/killallgit/feedcast/api/health"
	"github.com/killallgit/feedcast/api/types"
	"github.com/killallgit/feedcast/api/version"
	_ "github.com/killallgit/feedcast/docs/swagger"
	"github.com/killallgit/feedcast/pkg/config"
)

// RegisterRoutes registers all routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, cfg *config.Config, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) {
	if deps == nil {
		deps = &types.Dependencies{}
	}

	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	if cfg.Monitoring.Enabled {
		path := cfg.Monitoring.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		engine.GET(path, gin.WrapH(promhttp.Handler()))
	}

	if cfg.Monitoring.EnableDocs {
		engine.GET("/docs", func(c *gin.Context) {
			c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
		})
		docsGroup := engine.Group("/docs")
		docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	limited := func(group *gin.RouterGroup) *gin.RouterGroup {
		if cfg.RateLimiting.Enabled {
			group.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, cfg.RateLimiting.RPS, cfg.RateLimiting.Burst))
		}
		return group
	}

	// API v1 routes
	v1 := engine.Group("/api/v1")
	episodes.RegisterRoutes(limited(v1.Group("/episodes")), deps)

	// HTML pages at the site root
	episodes.RegisterPageRoutes(limited(engine.Group("")), deps)
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
