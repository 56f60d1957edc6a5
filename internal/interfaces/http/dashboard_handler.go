package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/NotSleepp/possbien/internal/application/dto"
)

type dashboardService interface {
	GetSummary(ctx context.Context, companyID string) (*dto.DashboardSummaryResponse, error)
}

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc dashboardService
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc dashboardService) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Resumen del dashboard
// @Description  Ventas de hoy y del mes, serie de los últimos 7 días, top 5 productos del mes
// @Description  y cantidad de filas de stock bajo el mínimo. Las fechas se calculan en el servidor.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/dashboard/resumen [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext(), GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
