package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// DashboardCounts agregados para las stat cards del dashboard.
type DashboardCounts struct {
	TotalDrivers  int
	TotalManagers int
	ActiveTrips   int
	PendingTrips  int
	PendingLeaves int
	UnseenNotifs  int
	MonthlyCost   decimal.Decimal
}

// AnalyticsRepository consultas de agregación para los dashboards.
type AnalyticsRepository interface {
	// CompanyCounts agregados de toda la empresa (super_admin y manager).
	CompanyCounts(ctx context.Context, companyID string) (*DashboardCounts, error)
	// DriverCounts agregados restringidos a un chofer.
	DriverCounts(ctx context.Context, driverID string) (*DashboardCounts, error)
}
