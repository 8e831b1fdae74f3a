package notification

import (
	"time"

	"github.com/google/uuid"

	"github.com/kossayboubaker/TruckNavi-nouveau/internal/application/dto"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/application/ports"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/domain"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/domain/entity"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/domain/repository"
)

// UseCase bandeja de notificaciones: creación + push, backlog, marcar vista,
// eliminación. La lista viaja siempre más reciente primero; el cliente
// antepone las que llegan por el canal websocket.
type UseCase struct {
	repo   repository.NotificationRepository
	pusher ports.NotificationPusher
}

// NewUseCase construye el caso de uso de notificaciones.
func NewUseCase(repo repository.NotificationRepository, pusher ports.NotificationPusher) *UseCase {
	return &UseCase{repo: repo, pusher: pusher}
}

// Notify persiste la notificación y la empuja por el canal websocket del
// destinatario. event es el nombre del evento socket (leave_request,
// new_notification, driver_assignment).
func (uc *UseCase) Notify(event string, n *entity.Notification) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	if err := uc.repo.Create(n); err != nil {
		return err
	}
	uc.pusher.Push(event, n)
	return nil
}

// List devuelve el backlog del usuario, más recientes primero.
func (uc *UseCase) List(recipientID string) ([]*dto.NotificationResponse, error) {
	items, err := uc.repo.ListByRecipient(recipientID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.NotificationResponse, 0, len(items))
	for _, n := range items {
		out = append(out, ToResponse(n))
	}
	return out, nil
}

// MarkSeen marca una notificación como vista. Solo el destinatario puede
// hacerlo; la transición es de una sola dirección (false -> true).
func (uc *UseCase) MarkSeen(recipientID, notifID string) error {
	n, err := uc.owned(recipientID, notifID)
	if err != nil {
		return err
	}
	if n.Seen {
		return nil
	}
	return uc.repo.MarkSeen(notifID)
}

// Delete elimina una notificación de la bandeja de su destinatario.
func (uc *UseCase) Delete(recipientID, notifID string) error {
	if _, err := uc.owned(recipientID, notifID); err != nil {
		return err
	}
	return uc.repo.Delete(notifID)
}

// DeleteByToken limpia las notificaciones ligadas a un token de validación
// ya consumido.
func (uc *UseCase) DeleteByToken(token string) error {
	return uc.repo.DeleteByToken(token)
}

func (uc *UseCase) owned(recipientID, notifID string) (*entity.Notification, error) {
	n, err := uc.repo.GetByID(notifID)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, domain.ErrNotFound
	}
	if n.Recipient != recipientID {
		return nil, domain.ErrForbidden
	}
	return n, nil
}

// ToResponse mapea la entidad al payload que consume el panel y el socket.
func ToResponse(n *entity.Notification) *dto.NotificationResponse {
	if n == nil {
		return nil
	}
	return &dto.NotificationResponse{
		ID:            n.ID,
		Recipient:     n.Recipient,
		Sender:        n.Sender,
		Type:          n.Type,
		Message:       n.Message,
		Token:         n.Token,
		RelatedEntity: n.RelatedEntity,
		Seen:          n.Seen,
		CreatedAt:     n.CreatedAt,
	}
}
