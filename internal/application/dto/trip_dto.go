package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTripRequest asignación de un viaje a un chofer por parte del manager.
type CreateTripRequest struct {
	DriverID    string          `json:"driver_id"`
	Departure   string          `json:"departure"`
	Destination string          `json:"destination"`
	DistanceKm  decimal.Decimal `json:"distance_km"`
	Cost        decimal.Decimal `json:"cost"`
	StartsAt    time.Time       `json:"starts_at"`
}

// TripResponse representación pública de un viaje.
type TripResponse struct {
	ID          string          `json:"_id"`
	DriverID    string          `json:"driver_id"`
	ManagerID   string          `json:"manager_id"`
	Departure   string          `json:"departure"`
	Destination string          `json:"destination"`
	DistanceKm  decimal.Decimal `json:"distance_km"`
	Cost        decimal.Decimal `json:"cost"`
	Status      string          `json:"status"`
	StartsAt    time.Time       `json:"starts_at"`
	CreatedAt   time.Time       `json:"created_at"`
}
