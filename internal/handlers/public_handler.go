package handlers

import (
	"net/http"

	"phoenixgrc/riskmatrix/internal/models"

	"github.com/gin-gonic/gin"
)

// CatalogResponse lists the risk scenario and every selectable control in catalog order.
type CatalogResponse struct {
	Scenario string           `json:"scenario"`
	Controls []models.Control `json:"controls"`
}

// GetCatalogHandler returns the fixed control catalog.
func (h *Handler) GetCatalogHandler(c *gin.Context) {
	c.JSON(http.StatusOK, CatalogResponse{
		Scenario: h.catalog.Scenario(),
		Controls: h.catalog.Controls(),
	})
}
