package entity

import "time"

// Tipos de notificación. Los tres primeros son accionables: llevan un token
// de validación o una entidad relacionada que permite aceptar/rechazar
// sin salir del panel.
const (
	NotifAccountValidation = "account_validation"
	NotifDriverAssignment  = "driver_assignment"
	NotifLeaveRequest      = "leave_request"
	NotifGeneric           = "generic"
)

// Notification notificación en la bandeja de un usuario. Se crea en el
// servidor y se empuja por el canal websocket; el único campo mutable es
// Seen (false -> true, una sola dirección).
type Notification struct {
	ID            string
	Recipient     string // user id destinatario
	Sender        string // user id emisor, opcional
	Type          string
	Message       string
	Token         string // credencial de acción para aceptar/rechazar, opcional
	RelatedEntity string // id del recurso ligado (ej. trip id), opcional
	Seen          bool
	CreatedAt     time.Time
}

// Actionable indica si la notificación permite aceptar/rechazar en línea.
func (n *Notification) Actionable() bool {
	return n.Token != "" || n.RelatedEntity != ""
}
