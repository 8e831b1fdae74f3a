package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/kossayboubaker/TruckNavi-nouveau/internal/application/dto"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/application/notification"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/domain"
)

// NotificationHandler bandeja de notificaciones del usuario autenticado.
type NotificationHandler struct {
	uc *notification.UseCase
}

// NewNotificationHandler construye el handler de notificaciones.
func NewNotificationHandler(uc *notification.UseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// List godoc
// @Summary      Backlog de notificaciones del usuario (más recientes primero)
// @Tags         notifications
// @Produce      json
// @Success      200  {array}  dto.NotificationResponse
// @Router       /user/notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(items)
}

// MarkSeen PUT /user/notifications/:id/seen. Solo el destinatario.
func (h *NotificationHandler) MarkSeen(c *fiber.Ctx) error {
	err := h.uc.MarkSeen(GetUserID(c), c.Params("id"))
	return h.mutationResult(c, err)
}

// Delete DELETE /user/notifications/:id. Solo el destinatario.
func (h *NotificationHandler) Delete(c *fiber.Ctx) error {
	err := h.uc.Delete(GetUserID(c), c.Params("id"))
	return h.mutationResult(c, err)
}

func (h *NotificationHandler) mutationResult(c *fiber.Ctx, err error) error {
	switch {
	case err == nil:
		return c.JSON(fiber.Map{"message": "ok"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "notificación desconocida"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la notificación pertenece a otro usuario"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
