package matrixview

import (
	"bytes"
	"strings"
	"testing"

	"phoenixgrc/riskmatrix/internal/catalog"
	"phoenixgrc/riskmatrix/internal/models"
	"phoenixgrc/riskmatrix/internal/riskutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAssessment(t *testing.T) {
	cat := catalog.Default()
	sel := models.NewSelection("A.5.1")
	a, err := riskutils.Assess(sel, cat)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteAssessment(&buf, cat.Selected(sel), a, Options{}))

	out := buf.String()
	assert.Contains(t, out, "Information security policy (A.5.1): Defines the general rules for protecting information.")
	assert.Contains(t, out, "Final probability: 8 / 9 (Very High)")
	assert.Contains(t, out, "Final impact: 8 / 9")
	assert.Contains(t, out, "Risk level: 64 🔴 (High)")
}

func TestWriteAssessmentWithoutSelection(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAssessment(&buf, nil, riskutils.NewAssessment(9, 9), Options{}))
	assert.NotContains(t, buf.String(), "Description:")
}

func TestWriteMatrix(t *testing.T) {
	m := riskutils.BuildMatrix(riskutils.NewAssessment(7, 6))

	var buf bytes.Buffer
	require.NoError(t, WriteMatrix(&buf, m, Options{}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2+models.MatrixSize)
	assert.Equal(t, 1, strings.Count(buf.String(), CurrentMarker))

	row7 := lines[2+(models.MaxScore-7)]
	assert.True(t, strings.HasPrefix(row7, "7  "))
	assert.Contains(t, row7, "🟡 Medium "+CurrentMarker)
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestWriteMatrixWithColor(t *testing.T) {
	m := riskutils.BuildMatrix(riskutils.NewAssessment(1, 1))

	var buf bytes.Buffer
	require.NoError(t, WriteMatrix(&buf, m, Options{Color: true}))
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestWriteCatalog(t *testing.T) {
	cat := catalog.Default()
	var buf bytes.Buffer
	require.NoError(t, WriteCatalog(&buf, cat.Scenario(), cat.Controls()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, cat.Scenario()))
	assert.Contains(t, out, "A.5.30   prob +0  impact -3  ICT readiness for business continuity")
}
