package repository

import "github.com/kossayboubaker/TruckNavi-nouveau/internal/domain/entity"

// LeaveRepository puerto de persistencia de solicitudes de congé.
type LeaveRepository interface {
	Create(lr *entity.LeaveRequest) error
	GetByID(id string) (*entity.LeaveRequest, error)
	FindByToken(token string) (*entity.LeaveRequest, error)
	UpdateStatus(id, status string) error
	ListByDriver(driverID string, limit, offset int) ([]*entity.LeaveRequest, error)
}
