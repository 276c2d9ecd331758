package handlers

import (
	"net/http"

	"phoenixgrc/riskmatrix/internal/catalog"
	"phoenixgrc/riskmatrix/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler agrupa as dependências dos endpoints. O catálogo é injetado e somente lido.
type Handler struct {
	catalog *catalog.Catalog
	log     *zap.Logger
}

// NewHandler cria um Handler para o catálogo informado.
func NewHandler(cat *catalog.Catalog, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{catalog: cat, log: log}
}

// ErrorResponse é o corpo padrão de erro da API.
type ErrorResponse struct {
	Error           string             `json:"error"`
	UnknownControls []models.ControlID `json:"unknown_controls,omitempty"`
}

// HealthCheckHandler reporta 503 quando o catálogo está vazio (erro de configuração).
func (h *Handler) HealthCheckHandler(c *gin.Context) {
	if err := h.catalog.Validate(); err != nil {
		h.log.Error("Health check falhou: catálogo inválido", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"controls": h.catalog.Len(),
	})
}
