package dto

import "time"

// CreateLeaveRequest solicitud de congé presentada por un chofer.
type CreateLeaveRequest struct {
	Reason    string    `json:"reason"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// LeaveResponse representación pública de una solicitud de congé.
type LeaveResponse struct {
	ID        string    `json:"_id"`
	DriverID  string    `json:"driver_id"`
	Reason    string    `json:"reason"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
