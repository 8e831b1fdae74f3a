package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/kossayboubaker/TruckNavi-nouveau/internal/application/dto"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/application/leave"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/domain"
)

// LeaveHandler ciclo de los congés.
type LeaveHandler struct {
	uc *leave.UseCase
}

// NewLeaveHandler construye el handler de congés.
func NewLeaveHandler(uc *leave.UseCase) *LeaveHandler {
	return &LeaveHandler{uc: uc}
}

// Request POST /conge. El chofer presenta una solicitud.
func (h *LeaveHandler) Request(c *fiber.Ctx) error {
	var in dto.CreateLeaveRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.StartDate.IsZero() || in.EndDate.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start_date y end_date son requeridos"})
	}
	out, err := h.uc.Request(GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "end_date no puede ser anterior a start_date"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Validate GET /conge/validate/:token/:action. Acepta accept o reject.
func (h *LeaveHandler) Validate(c *fiber.Ctx) error {
	err := h.uc.Validate(c.Params("token"), c.Params("action"))
	return validationResult(c, err)
}

// ListMine GET /conge. Solicitudes del chofer autenticado.
func (h *LeaveHandler) ListMine(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	out, err := h.uc.ListByDriver(GetUserID(c), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
