package api

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jengzang/life-rhythms-go/internal/config"
	"github.com/jengzang/life-rhythms-go/internal/handler"
	"github.com/jengzang/life-rhythms-go/internal/middleware"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, h *handler.DashboardHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(), middleware.Metrics())

	// CORS 中间件
	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	r.GET("/", h.Index)
	r.GET("/health", h.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API 路由组
	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(cfg.RateLimit, cfg.RateWindow))
	{
		api.GET("/filters", h.GetFilters)

		views := api.Group("/views")
		{
			views.GET("", h.GetViews)
			views.GET("/:view", h.GetView)
			views.GET("/:view/preview.png", h.GetPreview)
		}
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}
