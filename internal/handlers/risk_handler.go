package handlers

import (
	"errors"
	"net/http"

	"phoenixgrc/riskmatrix/internal/models"
	"phoenixgrc/riskmatrix/internal/riskutils"
	phxmetrics "phoenixgrc/riskmatrix/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AssessmentPayload defines the selection sent by the client. Duplicated ids are collapsed.
type AssessmentPayload struct {
	Controls []models.ControlID `json:"controls"`
}

// AssessmentResponse carries the computed assessment and the full matrix for one selection.
// Nothing is stored; AssessmentID only correlates the response with server logs.
type AssessmentResponse struct {
	AssessmentID    uuid.UUID             `json:"assessment_id"`
	Scenario        string                `json:"scenario"`
	AppliedControls []models.Control      `json:"applied_controls"`
	Assessment      models.RiskAssessment `json:"assessment"`
	Indicator       string                `json:"indicator"`
	Matrix          models.RiskMatrix     `json:"matrix"`
}

// CreateAssessmentHandler computes the risk for the selection in the request body.
func (h *Handler) CreateAssessmentHandler(c *gin.Context) {
	var payload AssessmentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload: " + err.Error()})
		return
	}
	h.respondWithAssessment(c, models.NewSelection(payload.Controls...))
}

// GetRiskMatrixHandler computes the risk for the selection given as repeated "control" query parameters.
func (h *Handler) GetRiskMatrixHandler(c *gin.Context) {
	query := c.QueryArray("control")
	ids := make([]models.ControlID, 0, len(query))
	for _, id := range query {
		ids = append(ids, models.ControlID(id))
	}
	h.respondWithAssessment(c, models.NewSelection(ids...))
}

func (h *Handler) respondWithAssessment(c *gin.Context, selection models.Selection) {
	assessment, err := riskutils.Assess(selection, h.catalog)
	if err != nil {
		var unknownErr *riskutils.UnknownControlError
		if errors.As(err, &unknownErr) {
			phxmetrics.RejectedSelectionsTotal.Inc()
			h.log.Warn("Selection rejected", zap.Error(err))
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error(), UnknownControls: unknownErr.IDs})
			return
		}
		h.log.Error("Failed to assess risk", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to assess risk"})
		return
	}

	resp := AssessmentResponse{
		AssessmentID:    uuid.New(),
		Scenario:        h.catalog.Scenario(),
		AppliedControls: h.catalog.Selected(selection),
		Assessment:      assessment,
		Indicator:       assessment.Category.Indicator(),
		Matrix:          riskutils.BuildMatrix(assessment),
	}
	phxmetrics.AssessmentsTotal.WithLabelValues(string(assessment.Category)).Inc()
	h.log.Debug("Risk assessed",
		zap.String("assessmentID", resp.AssessmentID.String()),
		zap.Int("controls", len(selection)),
		zap.Int("probability", assessment.Probability),
		zap.Int("impact", assessment.Impact),
		zap.Int("level", assessment.Level),
		zap.String("category", string(assessment.Category)),
	)

	c.JSON(http.StatusOK, resp)
}
