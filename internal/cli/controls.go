package cli

import (
	"context"

	"phoenixgrc/riskmatrix/internal/matrixview"

	"github.com/urfave/cli/v3"
)

func (a *app) cmdControls() *cli.Command {
	return &cli.Command{
		Name:    "controls",
		Aliases: []string{"ls"},
		Usage:   "List the security controls that can be applied",
		Action: func(ctx context.Context, c *cli.Command) error {
			return matrixview.WriteCatalog(c.Root().Writer, a.catalog.Scenario(), a.catalog.Controls())
		},
	}
}
