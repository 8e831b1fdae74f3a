package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kossayboubaker/TruckNavi-nouveau/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de agregación para las stat cards del dashboard.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// CompanyCounts agregados de toda la empresa (dashboards de super_admin y manager).
func (r *AnalyticsRepo) CompanyCounts(ctx context.Context, companyID string) (*repository.DashboardCounts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users WHERE company_id = $1 AND role = 'driver'),
			(SELECT COUNT(*) FROM users WHERE company_id = $1 AND role = 'manager'),
			(SELECT COUNT(*) FROM trips WHERE company_id = $1 AND status = 'accepted'),
			(SELECT COUNT(*) FROM trips WHERE company_id = $1 AND status = 'pending'),
			(SELECT COUNT(*) FROM leave_requests lr
				JOIN users u ON u.id = lr.driver_id
				WHERE u.company_id = $1 AND lr.status = 'pending'),
			(SELECT COUNT(*) FROM notifications n
				JOIN users u ON u.id = n.recipient
				WHERE u.company_id = $1 AND NOT n.seen),
			COALESCE((SELECT SUM(cost) FROM trips
				WHERE company_id = $1
				AND created_at >= date_trunc('month', now())), 0)`
	var c repository.DashboardCounts
	err := r.pool.QueryRow(ctx, query, companyID).Scan(
		&c.TotalDrivers, &c.TotalManagers, &c.ActiveTrips, &c.PendingTrips,
		&c.PendingLeaves, &c.UnseenNotifs, &c.MonthlyCost,
	)
	if err != nil {
		return nil, fmt.Errorf("company counts: %w", err)
	}
	return &c, nil
}

// DriverCounts agregados restringidos a un chofer (su dashboard).
func (r *AnalyticsRepo) DriverCounts(ctx context.Context, driverID string) (*repository.DashboardCounts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM trips WHERE driver_id = $1 AND status = 'accepted'),
			(SELECT COUNT(*) FROM trips WHERE driver_id = $1 AND status = 'pending'),
			(SELECT COUNT(*) FROM leave_requests WHERE driver_id = $1 AND status = 'pending'),
			(SELECT COUNT(*) FROM notifications WHERE recipient = $1 AND NOT seen),
			COALESCE((SELECT SUM(cost) FROM trips
				WHERE driver_id = $1
				AND created_at >= date_trunc('month', now())), 0)`
	var c repository.DashboardCounts
	err := r.pool.QueryRow(ctx, query, driverID).Scan(
		&c.ActiveTrips, &c.PendingTrips, &c.PendingLeaves, &c.UnseenNotifs, &c.MonthlyCost,
	)
	if err != nil {
		return nil, fmt.Errorf("driver counts: %w", err)
	}
	return &c, nil
}
