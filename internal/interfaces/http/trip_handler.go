package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kossayboubaker/TruckNavi-nouveau/internal/application/dto"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/application/trip"
)

// TripHandler asignación y validación de viajes.
type TripHandler struct {
	uc *trip.UseCase
}

// NewTripHandler construye el handler de viajes.
func NewTripHandler(uc *trip.UseCase) *TripHandler {
	return &TripHandler{uc: uc}
}

// Assign POST /trip. El manager asigna un viaje a un chofer.
func (h *TripHandler) Assign(c *fiber.Ctx) error {
	var in dto.CreateTripRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.DriverID == "" || in.Departure == "" || in.Destination == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "driver_id, departure y destination son requeridos"})
	}
	out, err := h.uc.Assign(GetUserID(c), in)
	if err != nil {
		return validationResult(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Validate GET /trip/validation/:tripId?action=accept|refuse. Lo resuelve
// el super admin desde la notificación driver_assignment.
func (h *TripHandler) Validate(c *fiber.Ctx) error {
	err := h.uc.Validate(c.Params("tripId"), c.Query("action"))
	return validationResult(c, err)
}

// ListMine GET /trip. Viajes del chofer autenticado.
func (h *TripHandler) ListMine(c *fiber.Ctx) error {
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
