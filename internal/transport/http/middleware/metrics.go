package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Collectors live under the musica_api namespace so the service's
// series stay distinguishable when several apps share a Prometheus.
var (
	peticionesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "musica_api",
			Name:      "http_requests_total",
			Help:      "Peticiones HTTP atendidas, por ruta, método y estado.",
		},
		[]string{"path", "method", "status"},
	)
	duracionPeticion = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "musica_api",
			Name:      "http_request_duration_seconds",
			Help:      "Duración de las peticiones HTTP.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)
)

func init() { prometheus.MustRegister(peticionesTotal, duracionPeticion) }

// Metrics observes every request under its route template; unmatched
// paths fall back to the raw URL so 404s remain visible without
// exploding label cardinality for real routes.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		inicio := time.Now()
		c.Next()

		ruta := c.FullPath()
		if ruta == "" {
			ruta = c.Request.URL.Path
		}
		peticionesTotal.WithLabelValues(ruta, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		duracionPeticion.WithLabelValues(ruta, c.Request.Method).Observe(time.Since(inicio).Seconds())
	}
}
