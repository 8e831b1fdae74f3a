package entity

import "time"

// Estados de una solicitud de congé (permiso/vacaciones de un chofer).
const (
	LeavePending  = "pending"
	LeaveAccepted = "accepted"
	LeaveRejected = "rejected"
)

// LeaveRequest solicitud de congé presentada por un chofer. El manager la
// resuelve mediante el token de validación incluido en la notificación.
type LeaveRequest struct {
	ID              string
	DriverID        string
	Reason          string
	StartDate       time.Time
	EndDate         time.Time
	ValidationToken string // credencial de un solo uso para aceptar/rechazar
	Status          string // pending, accepted, rejected
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
