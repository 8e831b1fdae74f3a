package analytics

import (
	"context"

	"github.com/kossayboubaker/TruckNavi-nouveau/internal/application/dto"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/domain"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/domain/entity"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/domain/repository"
)

// DashboardUseCase números de las stat cards según el rol del usuario.
type DashboardUseCase struct {
	repo     repository.AnalyticsRepository
	userRepo repository.UserRepository
}

// NewDashboardUseCase construye el caso de uso del dashboard.
func NewDashboardUseCase(repo repository.AnalyticsRepository, userRepo repository.UserRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, userRepo: userRepo}
}

// StatsFor agregados para el dashboard del usuario. super_admin y manager
// ven la empresa completa; el chofer solo lo suyo. Un rol fuera del enum no
// recibe datos (fail-closed).
func (uc *DashboardUseCase) StatsFor(ctx context.Context, userID, role string) (*dto.DashboardStatsResponse, error) {
	var counts *repository.DashboardCounts
	var err error

	switch role {
	case entity.RoleSuperAdmin, entity.RoleManager:
		user, uerr := uc.userRepo.GetByID(userID)
		if uerr != nil {
			return nil, uerr
		}
		if user == nil {
			return nil, domain.ErrUserNotFound
		}
		counts, err = uc.repo.CompanyCounts(ctx, user.CompanyID)
	case entity.RoleDriver:
		counts, err = uc.repo.DriverCounts(ctx, userID)
	default:
		return nil, domain.ErrUnknownRole
	}
	if err != nil {
		return nil, err
	}

	return &dto.DashboardStatsResponse{
		TotalDrivers:  counts.TotalDrivers,
		TotalManagers: counts.TotalManagers,
		ActiveTrips:   counts.ActiveTrips,
		PendingTrips:  counts.PendingTrips,
		PendingLeaves: counts.PendingLeaves,
		MonthlyCost:   counts.MonthlyCost,
		UnseenNotifs:  counts.UnseenNotifs,
	}, nil
}
