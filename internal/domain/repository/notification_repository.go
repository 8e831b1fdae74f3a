package repository

import "github.com/kossayboubaker/TruckNavi-nouveau/internal/domain/entity"

// NotificationRepository puerto de persistencia de notificaciones.
type NotificationRepository interface {
	Create(n *entity.Notification) error
	GetByID(id string) (*entity.Notification, error)
	// ListByRecipient devuelve el backlog del usuario, más recientes primero.
	ListByRecipient(recipientID string) ([]*entity.Notification, error)
	MarkSeen(id string) error
	Delete(id string) error
	// DeleteByToken elimina las notificaciones ligadas a un token de
	// validación ya consumido (todas las bandejas donde se duplicó).
	DeleteByToken(token string) error
}
