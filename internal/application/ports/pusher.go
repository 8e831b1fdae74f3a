package ports

import "github.com/kossayboubaker/TruckNavi-nouveau/internal/domain/entity"

// NotificationPusher empuja una notificación ya persistida hacia las
// conexiones vivas del destinatario. La implementa el hub websocket; el uso
// de interfaz evita que la capa de aplicación dependa del transporte.
//
// El nombre del evento es uno de: leave_request, new_notification,
// driver_assignment.
type NotificationPusher interface {
	Push(event string, n *entity.Notification)
}
