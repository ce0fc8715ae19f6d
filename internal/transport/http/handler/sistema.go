package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"musica-api/internal/core/config"
	"musica-api/internal/core/database"
	"musica-api/internal/repo"
	resp "musica-api/internal/transport/http/response"
)

// MountSistema registers the informational routes that live outside /api.
func MountSistema(r *gin.Engine, db *gorm.DB, cfg *config.Config, startedAt time.Time) {
	r.GET("/api", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"mensaje":     "¡Bienvenido a la " + cfg.App.Name + "!",
			"descripcion": cfg.App.Description,
			"version":     cfg.App.Version,
			"estado":      "activo",
			"puerto":      cfg.App.HTTP.Port,
			"uptime":      time.Since(startedAt).String(),
			"endpoints": gin.H{
				"usuarios":     "/api/usuarios",
				"canciones":    "/api/canciones",
				"favoritos":    "/api/favoritos",
				"salud":        "/health",
				"estadisticas": "/stats",
				"metricas":     "/metrics",
			},
		})
	})

	r.GET("/health", func(c *gin.Context) {
		estado := "healthy"
		bd := "connected"
		code := http.StatusOK
		if !database.Ping(c, db) {
			estado = "unhealthy"
			bd = "disconnected"
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":         estado,
			"timestamp":      time.Now().UTC().Format(time.RFC3339),
			"uptime_seconds": int64(time.Since(startedAt).Seconds()),
			"database":       bd,
			"version":        cfg.App.Version,
			"environment":    cfg.App.Env,
			"port":           cfg.App.HTTP.Port,
		})
	})

	r.GET("/stats", func(c *gin.Context) {
		totalUsuarios, err := repo.NewUsuarioRepo(db).Count(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, resp.Detail("error al obtener estadísticas"))
			return
		}
		totalCanciones, err := repo.NewCancionRepo(db).Count(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, resp.Detail("error al obtener estadísticas"))
			return
		}
		totalFavoritos, err := repo.NewFavoritoRepo(db).Count(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, resp.Detail("error al obtener estadísticas"))
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"exito": true,
			"estadisticas": gin.H{
				"total_usuarios":  totalUsuarios,
				"total_canciones": totalCanciones,
				"total_favoritos": totalFavoritos,
				"fecha_consulta":  time.Now().UTC().Format(time.RFC3339),
			},
			"api_info": gin.H{
				"nombre":  cfg.App.Name,
				"version": cfg.App.Version,
				"entorno": cfg.App.Env,
			},
		})
	})
}
