package cli

import (
	"context"
	"fmt"
	"io"

	"phoenixgrc/riskmatrix/internal/matrixview"
	"phoenixgrc/riskmatrix/internal/models"
	"phoenixgrc/riskmatrix/internal/riskutils"

	"github.com/urfave/cli/v3"
)

func (a *app) cmdAssess() *cli.Command {
	var controls []string

	return &cli.Command{
		Name:      "assess",
		Usage:     "Compute the risk for a set of applied controls",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:        "control",
				Aliases:     []string{"c"},
				Usage:       "applied control id, e.g. A.5.1 (repeatable)",
				Destination: &controls,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			ids := make([]models.ControlID, 0, len(controls))
			for _, id := range controls {
				ids = append(ids, models.ControlID(id))
			}
			return a.render(c.Root().Writer, models.NewSelection(ids...))
		},
	}
}

// render recalcula avaliação e matriz para a seleção e escreve tudo em w.
func (a *app) render(w io.Writer, selection models.Selection) error {
	assessment, err := riskutils.Assess(selection, a.catalog)
	if err != nil {
		return err
	}
	opts := a.viewOptions()

	if _, err := fmt.Fprintf(w, "%s\n\n", a.catalog.Scenario()); err != nil {
		return err
	}
	if err := matrixview.WriteAssessment(w, a.catalog.Selected(selection), assessment, opts); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	return matrixview.WriteMatrix(w, riskutils.BuildMatrix(assessment), opts)
}
