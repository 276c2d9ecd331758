package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"phoenixgrc/riskmatrix/internal/catalog"
	"phoenixgrc/riskmatrix/internal/router"
	"phoenixgrc/riskmatrix/pkg/config"
	phxlog "phoenixgrc/riskmatrix/pkg/log"
	phxmetrics "phoenixgrc/riskmatrix/pkg/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	phxlog.Init(config.Cfg.LogLevel, config.Cfg.Environment)
	defer phxlog.Sync()

	gin.SetMode(config.Cfg.GinMode)
	phxmetrics.SetAppInfo(config.Cfg.AppVersion)

	cat, err := catalog.Load()
	if err != nil {
		phxlog.L.Fatal("Failed to load control catalog", zap.Error(err))
	}
	// Catálogo vazio é erro de configuração: reportar na inicialização, não em cada avaliação.
	if err := cat.Validate(); err != nil {
		phxlog.L.Fatal("Invalid control catalog", zap.Error(err))
	}
	phxlog.L.Info("Control catalog loaded",
		zap.String("scenario", cat.Scenario()),
		zap.Int("controls", cat.Len()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := router.Serve(ctx, phxlog.L, ":"+config.Cfg.Port, router.SetupRouter(phxlog.L, cat)); err != nil {
		phxlog.L.Fatal("Failed to start server", zap.Error(err))
	}
}
