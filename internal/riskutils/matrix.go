package riskutils

import "phoenixgrc/riskmatrix/internal/models"

// BuildMatrix gera a matriz 9x9 (probabilidade 9..1 nas linhas, impacto 1..9 nas colunas)
// e marca a célula correspondente à avaliação.
func BuildMatrix(assessment models.RiskAssessment) models.RiskMatrix {
	// Valores fora da escala não deveriam chegar aqui, mas a saturação garante uma única célula marcada.
	currentProb := Clamp(assessment.Probability)
	currentImp := Clamp(assessment.Impact)

	var m models.RiskMatrix
	for r := 0; r < models.MatrixSize; r++ {
		i := models.MaxScore - r
		row := models.MatrixRow{Probability: i}
		for c := 0; c < models.MatrixSize; c++ {
			j := models.MinScore + c
			value := i * j
			row.Cells[c] = models.MatrixCell{
				Probability: i,
				Impact:      j,
				Value:       value,
				Category:    ClassifyLevel(value),
				Current:     i == currentProb && j == currentImp,
			}
		}
		m.Rows[r] = row
	}
	return m
}
