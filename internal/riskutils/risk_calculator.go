package riskutils

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"phoenixgrc/riskmatrix/internal/models"
)

// Cenário base: probabilidade e impacto máximos, sem mitigação.
const (
	BaseProbability = models.MaxScore
	BaseImpact      = models.MaxScore
)

// Limites superiores (inclusivos) das categorias.
const (
	lowUpperBound    = 20
	mediumUpperBound = 50
)

// ErrUnknownControl é retornado quando a seleção referencia um controle fora do catálogo.
var ErrUnknownControl = errors.New("unknown control")

// UnknownControlError lista todos os identificadores desconhecidos de uma seleção, em ordem.
type UnknownControlError struct {
	IDs []models.ControlID
}

func (e *UnknownControlError) Error() string {
	ids := make([]string, len(e.IDs))
	for i, id := range e.IDs {
		ids[i] = string(id)
	}
	return fmt.Sprintf("%s: %s", ErrUnknownControl, strings.Join(ids, ", "))
}

// Is permite errors.Is(err, ErrUnknownControl).
func (e *UnknownControlError) Is(target error) bool {
	return target == ErrUnknownControl
}

// ControlLookup é o que o motor precisa do catálogo.
type ControlLookup interface {
	Get(id models.ControlID) (models.Control, bool)
}

// Assess calcula a avaliação de risco para a seleção.
// Todos os identificadores são validados antes de qualquer acumulação.
func Assess(selection models.Selection, lookup ControlLookup) (models.RiskAssessment, error) {
	var unknown []models.ControlID
	controls := make([]models.Control, 0, len(selection))
	for id := range selection {
		ctrl, ok := lookup.Get(id)
		if !ok {
			unknown = append(unknown, id)
			continue
		}
		controls = append(controls, ctrl)
	}
	if len(unknown) > 0 {
		sort.Slice(unknown, func(i, j int) bool { return unknown[i] < unknown[j] })
		return models.RiskAssessment{}, &UnknownControlError{IDs: unknown}
	}

	probability := BaseProbability
	impact := BaseImpact
	for _, ctrl := range controls {
		probability += ctrl.ProbabilityDelta
		impact += ctrl.ImpactDelta
	}

	return NewAssessment(probability, impact), nil
}

// NewAssessment monta uma avaliação a partir de probabilidade e impacto brutos, aplicando a saturação em [1,9].
func NewAssessment(probability, impact int) models.RiskAssessment {
	probability = Clamp(probability)
	impact = Clamp(impact)
	level := probability * impact
	return models.RiskAssessment{
		Probability:      probability,
		Impact:           impact,
		Level:            level,
		Category:         ClassifyLevel(level),
		ProbabilityLabel: LabelProbability(probability),
	}
}

// Clamp satura o valor na escala [1,9].
func Clamp(v int) int {
	if v < models.MinScore {
		return models.MinScore
	}
	if v > models.MaxScore {
		return models.MaxScore
	}
	return v
}

// ClassifyLevel é a única fonte dos limites de categoria, usada tanto pela avaliação quanto pela matriz.
func ClassifyLevel(level int) models.RiskCategory {
	switch {
	case level <= lowUpperBound:
		return models.CategoryLow
	case level <= mediumUpperBound:
		return models.CategoryMedium
	default:
		return models.CategoryHigh
	}
}

// LabelProbability traduz a probabilidade final em rótulo qualitativo.
func LabelProbability(probability int) models.ProbabilityLabel {
	switch {
	case probability >= 8:
		return models.ProbabilityVeryHigh
	case probability >= 6:
		return models.ProbabilityHigh
	case probability >= 4:
		return models.ProbabilityMedium
	case probability >= 2:
		return models.ProbabilityLow
	default:
		return models.ProbabilityVeryLow
	}
}
