package riskutils

import (
	"errors"
	"testing"

	"phoenixgrc/riskmatrix/internal/catalog"
	"phoenixgrc/riskmatrix/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New("test scenario", []models.Control{
		{ID: "A", ProbabilityDelta: -2, ImpactDelta: 0},
		{ID: "B", ProbabilityDelta: 0, ImpactDelta: -3},
	})
	require.NoError(t, err)
	return c
}

func TestAssessEndToEndExample(t *testing.T) {
	c := newTestCatalog(t)

	a, err := Assess(models.NewSelection("A", "B"), c)
	require.NoError(t, err)
	assert.Equal(t, models.RiskAssessment{
		Probability:      7,
		Impact:           6,
		Level:            42,
		Category:         models.CategoryMedium,
		ProbabilityLabel: models.ProbabilityHigh,
	}, a)

	m := BuildMatrix(a)
	cell, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, 7, cell.Probability)
	assert.Equal(t, 6, cell.Impact)
	assert.Equal(t, models.CategoryMedium, cell.Category)
}

func TestAssessEmptySelection(t *testing.T) {
	a, err := Assess(models.NewSelection(), catalog.Default())
	require.NoError(t, err)
	assert.Equal(t, models.RiskAssessment{
		Probability:      9,
		Impact:           9,
		Level:            81,
		Category:         models.CategoryHigh,
		ProbabilityLabel: models.ProbabilityVeryHigh,
	}, a)
}

func TestAssessEmptyCatalog(t *testing.T) {
	empty, err := catalog.New("empty", nil)
	require.NoError(t, err)

	a, err := Assess(nil, empty)
	require.NoError(t, err)
	assert.Equal(t, 81, a.Level)
}

func TestAssessAllDefaultControls(t *testing.T) {
	c := catalog.Default()

	// Soma das deltas do catálogo: probabilidade -21, impacto -16. Ambos saturam em 1.
	sumProb, sumImp := 0, 0
	for _, ctrl := range c.Controls() {
		sumProb += ctrl.ProbabilityDelta
		sumImp += ctrl.ImpactDelta
	}
	require.Equal(t, -21, sumProb)
	require.Equal(t, -16, sumImp)

	a, err := Assess(models.NewSelection(c.IDs()...), c)
	require.NoError(t, err)
	assert.Equal(t, 1, a.Probability)
	assert.Equal(t, 1, a.Impact)
	assert.Equal(t, 1, a.Level)
	assert.Equal(t, models.CategoryLow, a.Category)
	assert.Equal(t, models.ProbabilityVeryLow, a.ProbabilityLabel)
}

func TestAssessDefaultControlSubsets(t *testing.T) {
	c := catalog.Default()

	testCases := []struct {
		name     string
		controls []models.ControlID
		prob     int
		imp      int
		category models.RiskCategory
		label    models.ProbabilityLabel
	}{
		{"single policy control", []models.ControlID{"A.5.1"}, 8, 8, models.CategoryHigh, models.ProbabilityVeryHigh},
		{"continuity and backup", []models.ControlID{"A.5.30", "A.8.13"}, 9, 4, models.CategoryMedium, models.ProbabilityVeryHigh},
		{"malware and monitoring", []models.ControlID{"A.8.7", "A.8.6", "A.8.16"}, 3, 8, models.CategoryMedium, models.ProbabilityLow},
		{"impact saturates at floor", []models.ControlID{"A.5.30", "A.8.13", "A.8.24", "A.5.1", "A.8.20"}, 7, 1, models.CategoryLow, models.ProbabilityHigh},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := Assess(models.NewSelection(tc.controls...), c)
			require.NoError(t, err)
			assert.Equal(t, tc.prob, a.Probability)
			assert.Equal(t, tc.imp, a.Impact)
			assert.Equal(t, tc.prob*tc.imp, a.Level)
			assert.Equal(t, tc.category, a.Category)
			assert.Equal(t, tc.label, a.ProbabilityLabel)
		})
	}
}

func TestAssessUnknownControl(t *testing.T) {
	c := newTestCatalog(t)

	a, err := Assess(models.NewSelection("A", "Z", "Y"), c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownControl))
	assert.Equal(t, models.RiskAssessment{}, a, "no partial assessment on failure")

	var unknownErr *UnknownControlError
	require.True(t, errors.As(err, &unknownErr))
	assert.Equal(t, []models.ControlID{"Y", "Z"}, unknownErr.IDs)
	assert.Equal(t, "unknown control: Y, Z", err.Error())
}

func TestClassifyLevelBoundaries(t *testing.T) {
	testCases := []struct {
		level    int
		expected models.RiskCategory
	}{
		{1, models.CategoryLow},
		{20, models.CategoryLow},
		{21, models.CategoryMedium},
		{50, models.CategoryMedium},
		{51, models.CategoryHigh},
		{81, models.CategoryHigh},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, ClassifyLevel(tc.level), "level %d", tc.level)
	}
}

func TestLabelProbability(t *testing.T) {
	expected := map[int]models.ProbabilityLabel{
		1: models.ProbabilityVeryLow,
		2: models.ProbabilityLow,
		3: models.ProbabilityLow,
		4: models.ProbabilityMedium,
		5: models.ProbabilityMedium,
		6: models.ProbabilityHigh,
		7: models.ProbabilityHigh,
		8: models.ProbabilityVeryHigh,
		9: models.ProbabilityVeryHigh,
	}
	for p, label := range expected {
		assert.Equal(t, label, LabelProbability(p), "probability %d", p)
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, Clamp(-12))
	assert.Equal(t, 1, Clamp(0))
	assert.Equal(t, 5, Clamp(5))
	assert.Equal(t, 9, Clamp(10))
}
