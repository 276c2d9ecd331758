package models

// Limites da escala de probabilidade e impacto (matriz 9x9).
const (
	MinScore   = 1
	MaxScore   = 9
	MatrixSize = MaxScore - MinScore + 1
)

// ControlID identifica um controle no catálogo (referência do Anexo A da ISO 27001:2022, ex: "A.5.1").
type ControlID string

// Control é um controle de segurança com efeitos fixos sobre probabilidade e impacto.
type Control struct {
	ID               ControlID `json:"id" toml:"id"`
	Name             string    `json:"name" toml:"name"`
	ProbabilityDelta int       `json:"probability_delta" toml:"probability_delta"`
	ImpactDelta      int       `json:"impact_delta" toml:"impact_delta"`
	Description      string    `json:"description" toml:"description"`
}

// Selection é o conjunto de controles aplicados pelo usuário. Sem duplicatas, sem ordem.
type Selection map[ControlID]struct{}

// NewSelection cria uma Selection a partir de identificadores; duplicatas são colapsadas.
func NewSelection(ids ...ControlID) Selection {
	s := make(Selection, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has indica se o controle está na seleção.
func (s Selection) Has(id ControlID) bool {
	_, ok := s[id]
	return ok
}

// RiskCategory é a faixa qualitativa derivada do nível de risco.
type RiskCategory string

const (
	CategoryLow    RiskCategory = "Low"
	CategoryMedium RiskCategory = "Medium"
	CategoryHigh   RiskCategory = "High"
)

// Indicator retorna o marcador visual usado pelas interfaces para a categoria.
func (c RiskCategory) Indicator() string {
	switch c {
	case CategoryLow:
		return "🟢"
	case CategoryMedium:
		return "🟡"
	case CategoryHigh:
		return "🔴"
	default:
		return "⚪"
	}
}

// ProbabilityLabel é o rótulo qualitativo da probabilidade final.
type ProbabilityLabel string

const (
	ProbabilityVeryLow  ProbabilityLabel = "Very Low"
	ProbabilityLow      ProbabilityLabel = "Low"
	ProbabilityMedium   ProbabilityLabel = "Medium"
	ProbabilityHigh     ProbabilityLabel = "High"
	ProbabilityVeryHigh ProbabilityLabel = "Very High"
)

// RiskAssessment é o resultado do cálculo para uma seleção.
// Level é sempre Probability * Impact.
type RiskAssessment struct {
	Probability      int              `json:"probability"`
	Impact           int              `json:"impact"`
	Level            int              `json:"level"`
	Category         RiskCategory     `json:"category"`
	ProbabilityLabel ProbabilityLabel `json:"probability_label"`
}

// MatrixCell é uma célula da matriz de risco.
type MatrixCell struct {
	Probability int          `json:"probability"`
	Impact      int          `json:"impact"`
	Value       int          `json:"value"`
	Category    RiskCategory `json:"category"`
	Current     bool         `json:"current"`
}

// MatrixRow agrupa as células de uma linha de probabilidade (impacto 1..9).
type MatrixRow struct {
	Probability int                    `json:"probability"`
	Cells       [MatrixSize]MatrixCell `json:"cells"`
}

// RiskMatrix é a matriz 9x9; Rows[0] corresponde à probabilidade 9, Rows[8] à probabilidade 1.
type RiskMatrix struct {
	Rows [MatrixSize]MatrixRow `json:"rows"`
}

// Cell retorna a célula para o par (probabilidade, impacto).
func (m RiskMatrix) Cell(probability, impact int) (MatrixCell, bool) {
	if probability < MinScore || probability > MaxScore || impact < MinScore || impact > MaxScore {
		return MatrixCell{}, false
	}
	return m.Rows[MaxScore-probability].Cells[impact-MinScore], true
}

// Current retorna a célula marcada como atual.
func (m RiskMatrix) Current() (MatrixCell, bool) {
	for _, row := range m.Rows {
		for _, cell := range row.Cells {
			if cell.Current {
				return cell, true
			}
		}
	}
	return MatrixCell{}, false
}
