package cli

import (
	"context"

	"phoenixgrc/riskmatrix/internal/router"
	"phoenixgrc/riskmatrix/pkg/config"
	phxlog "phoenixgrc/riskmatrix/pkg/log"
	phxmetrics "phoenixgrc/riskmatrix/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v3"
)

func (a *app) cmdServe() *cli.Command {
	var port string

	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the risk calculator HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "port",
				Usage:       "listen port (default: PORT from the environment, 8080)",
				Destination: &port,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			addr := prepareServer(port)
			return router.Serve(ctx, phxlog.L, addr, router.SetupRouter(phxlog.L, a.catalog))
		},
	}
}

// prepareServer aplica a mesma inicialização de cmd/server e retorna o endereço de escuta.
// Sem --port, vale config.Cfg.Port.
func prepareServer(port string) string {
	if config.Cfg.GinMode != "" {
		gin.SetMode(config.Cfg.GinMode)
	}
	phxmetrics.SetAppInfo(config.Cfg.AppVersion)

	if port == "" {
		port = config.Cfg.Port
	}
	if port == "" {
		port = "8080"
	}
	return ":" + port
}
