package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/kossayboubaker/TruckNavi-nouveau/internal/application/analytics"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/application/dto"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/domain"
)

// DashboardHandler números de las stat cards del dashboard.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler del dashboard.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Stats GET /dashboard/stats. Agregados según el rol del usuario.
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.StatsFor(c.Context(), GetUserID(c), GetRole(c))
	if err != nil {
		if errors.Is(err, domain.ErrUnknownRole) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "UNKNOWN_ROLE", Message: "rol sin dashboard"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
