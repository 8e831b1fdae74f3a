package dto

import "github.com/shopspring/decimal"

// DashboardStatsResponse números para las stat cards del dashboard.
// Según el rol del usuario algunos campos quedan en cero.
type DashboardStatsResponse struct {
	TotalDrivers  int             `json:"total_drivers"`
	TotalManagers int             `json:"total_managers"`
	ActiveTrips   int             `json:"active_trips"`
	PendingTrips  int             `json:"pending_trips"`
	PendingLeaves int             `json:"pending_leaves"`
	MonthlyCost   decimal.Decimal `json:"monthly_cost"`
	UnseenNotifs  int             `json:"unseen_notifications"`
}
