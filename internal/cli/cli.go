// Package cli implementa a interface de terminal da calculadora de risco.
package cli

import (
	"context"
	"errors"
	"io"

	"phoenixgrc/riskmatrix/internal/catalog"
	"phoenixgrc/riskmatrix/internal/matrixview"
	"phoenixgrc/riskmatrix/pkg/config"
	"phoenixgrc/riskmatrix/pkg/features"
	phxlog "phoenixgrc/riskmatrix/pkg/log"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

// app guarda o estado compartilhado pelos subcomandos.
type app struct {
	logLevel string
	noColor  bool
	catalog  *catalog.Catalog
}

func (a *app) viewOptions() matrixview.Options {
	return matrixview.Options{Color: !a.noColor && features.IsEnabled(features.ColorOutput)}
}

// Run executa a linha de comando. in e out substituem stdin/stdout (testes).
func Run(ctx context.Context, args []string, in io.Reader, out io.Writer, version string) error {
	a := &app{}

	cmd := &cli.Command{
		Name:    "riskcli",
		Usage:   "Estimate ransomware risk on a 9x9 probability/impact matrix",
		Version: version,
		Reader:  in,
		Writer:  out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error)",
				Value:       "warn",
				Sources:     cli.EnvVars("LOG_LEVEL"),
				Destination: &a.logLevel,
			},
			&cli.BoolFlag{
				Name:        "no-color",
				Usage:       "disable coloured output",
				Destination: &a.noColor,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			phxlog.Init(a.logLevel, config.Cfg.Environment)

			cat, err := catalog.Load()
			if err != nil {
				return ctx, err
			}
			if err := cat.Validate(); err != nil {
				return ctx, err
			}
			a.catalog = cat
			phxlog.L.Debug("Catalog loaded", zap.Int("controls", cat.Len()))
			return ctx, nil
		},
		Commands: []*cli.Command{
			a.cmdControls(),
			a.cmdAssess(),
			a.cmdInteractive(),
			a.cmdServe(),
		},
	}

	if err := cmd.Run(ctx, args); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		phxlog.L.Error("failed to run command", zap.Error(err))
		return err
	}
	return nil
}
