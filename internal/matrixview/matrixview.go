// Package matrixview desenha avaliações e a matriz de risco em texto para terminais.
package matrixview

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"phoenixgrc/riskmatrix/internal/models"

	"github.com/fatih/color"
)

// CurrentMarker é anexado à célula da avaliação atual.
const CurrentMarker = "⬅️"

const cellWidth = 13

// Options controla a saída.
type Options struct {
	Color bool
}

func (o Options) paint(category models.RiskCategory, s string) string {
	var c *color.Color
	switch category {
	case models.CategoryLow:
		c = color.New(color.FgGreen)
	case models.CategoryMedium:
		c = color.New(color.FgYellow)
	case models.CategoryHigh:
		c = color.New(color.FgRed)
	default:
		return s
	}
	if o.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}

// pad completa s com espaços até width runas.
func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-n)
}

// WriteCatalog lista os controles disponíveis com seus efeitos.
func WriteCatalog(w io.Writer, scenario string, controls []models.Control) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", scenario)
	for _, ctrl := range controls {
		fmt.Fprintf(&b, "%-8s prob %+d  impact %+d  %s: %s\n",
			ctrl.ID, ctrl.ProbabilityDelta, ctrl.ImpactDelta, ctrl.Name, ctrl.Description)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteAssessment escreve as descrições dos controles aplicados e os resultados escalares.
func WriteAssessment(w io.Writer, applied []models.Control, a models.RiskAssessment, opts Options) error {
	var b strings.Builder
	if len(applied) > 0 {
		b.WriteString("Description:\n")
		for _, ctrl := range applied {
			fmt.Fprintf(&b, "  %s (%s): %s\n", ctrl.Name, ctrl.ID, ctrl.Description)
		}
	}
	fmt.Fprintf(&b, "Final probability: %d / %d (%s)\n", a.Probability, models.MaxScore, a.ProbabilityLabel)
	fmt.Fprintf(&b, "Final impact: %d / %d\n", a.Impact, models.MaxScore)
	fmt.Fprintf(&b, "Risk level: %d %s (%s)\n", a.Level, a.Category.Indicator(), opts.paint(a.Category, string(a.Category)))
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteMatrix desenha a matriz 9x9: probabilidade nas linhas (9 no topo), impacto nas colunas.
func WriteMatrix(w io.Writer, m models.RiskMatrix, opts Options) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Risk matrix %dx%d\n", models.MatrixSize, models.MatrixSize)
	b.WriteString("   ")
	for j := models.MinScore; j <= models.MaxScore; j++ {
		b.WriteString(pad(fmt.Sprintf("%d", j), cellWidth))
	}
	b.WriteString("\n")

	for _, row := range m.Rows {
		fmt.Fprintf(&b, "%d  ", row.Probability)
		for _, cell := range row.Cells {
			text := cell.Category.Indicator() + " " + string(cell.Category)
			if cell.Current {
				text += " " + CurrentMarker
			}
			// O padding é calculado antes da cor para não contar os códigos ANSI.
			padded := pad(text, cellWidth)
			b.WriteString(opts.paint(cell.Category, strings.TrimRight(padded, " ")))
			b.WriteString(padded[len(strings.TrimRight(padded, " ")):])
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}
