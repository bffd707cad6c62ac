package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agendavivo/agenda-api/internal/httperr"
	"github.com/agendavivo/agenda-api/internal/stats"
)

type DashboardHandler struct {
	stats  *stats.Service
	logger *slog.Logger
}

func NewDashboardHandler(statsService *stats.Service, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{stats: statsService, logger: logger}
}

func (h *DashboardHandler) GetStats(c *gin.Context) {
	_, establishmentID := actingUser(c)

	result, err := h.stats.Compute(c.Request.Context(), establishmentID)
	if err != nil {
		h.logger.Error("stats compute failed", "estabelecimento_id", establishmentID, "error", err)
		httperr.Internal(c, "failed_to_compute_stats", "Erro ao buscar estatísticas: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": result})
}
