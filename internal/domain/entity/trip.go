package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un viaje asignado a un chofer.
const (
	TripPending  = "pending"
	TripAccepted = "accepted"
	TripRefused  = "refused"
)

// Trip viaje asignado por un manager a un chofer; el super admin lo valida
// desde la notificación driver_assignment.
type Trip struct {
	ID          string
	CompanyID   string
	DriverID    string
	ManagerID   string
	Departure   string
	Destination string
	DistanceKm  decimal.Decimal
	Cost        decimal.Decimal // NUMERIC en DB, mapeado vía pgx-shopspring-decimal
	Status      string          // pending, accepted, refused
	StartsAt    time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
