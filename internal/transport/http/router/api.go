package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"musica-api/internal/core/cache"
	"musica-api/internal/core/config"
	"musica-api/internal/transport/http/handler"
	"musica-api/internal/transport/http/middleware"
	resp "musica-api/internal/transport/http/response"
)

// NewAPIEngine assembles the public engine: middleware chain first, then
// the system routes and the /api resource groups.
func NewAPIEngine(l *zap.Logger, db *gorm.DB, ca *cache.Cache, cfg *config.Config) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "X-Process-Time"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimit(200, 400))
	r.Use(middleware.ConcurrencyLimit(300))
	r.Use(middleware.MaxBodyBytes(16 << 20))
	r.Use(middleware.Timeout(10 * time.Second))
	r.Use(ginzap.RecoveryWithZap(l, true))
	r.Use(middleware.Metrics())
	r.Use(middleware.AccessLog(l))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, resp.Detail("Recurso no encontrado"))
	})

	handler.MountSistema(r, db, cfg, time.Now())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	ttl := time.Duration(cfg.Redis.TTLSec) * time.Second
	api := r.Group("/api")
	handler.MountUsuarios(api, db)
	handler.MountCanciones(api, db, ca, ttl)
	handler.MountFavoritos(api, db)

	return r
}
