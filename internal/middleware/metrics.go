package middleware

import (
	"strconv"
	"time"

	phxmetrics "phoenixgrc/riskmatrix/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics coleta métricas Prometheus das requisições HTTP.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// c.FullPath() mantém a cardinalidade baixa; rotas inexistentes caem no path bruto.
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		phxmetrics.HTTPRequestCounter.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		phxmetrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
