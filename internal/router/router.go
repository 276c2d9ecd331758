package router

import (
	"time"

	"phoenixgrc/riskmatrix/internal/catalog"
	"phoenixgrc/riskmatrix/internal/handlers"
	phxmiddleware "phoenixgrc/riskmatrix/internal/middleware"
	"phoenixgrc/riskmatrix/pkg/features"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// SetupRouter configura e retorna uma instância do Gin Engine para o catálogo informado.
func SetupRouter(log *zap.Logger, cat *catalog.Catalog) *gin.Engine {
	router := gin.New()

	router.Use(phxmiddleware.Metrics())
	router.Use(phxmiddleware.GinZap(log, time.RFC3339, true))
	router.Use(phxmiddleware.GinRecovery(log, true))

	if features.IsEnabled(features.Metrics) {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	h := handlers.NewHandler(cat, log)
	router.GET("/health", h.HealthCheckHandler)

	setupV1Routes(router, h)

	return router
}

func setupV1Routes(r *gin.Engine, h *handlers.Handler) {
	apiV1 := r.Group("/api/v1")
	{
		apiV1.GET("/catalog", h.GetCatalogHandler)
		apiV1.POST("/assessments", h.CreateAssessmentHandler)
		apiV1.GET("/risk-matrix", h.GetRiskMatrixHandler)
	}
}
