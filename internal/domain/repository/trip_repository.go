package repository

import "github.com/kossayboubaker/TruckNavi-nouveau/internal/domain/entity"

// TripRepository puerto de persistencia de viajes.
type TripRepository interface {
	Create(trip *entity.Trip) error
	GetByID(id string) (*entity.Trip, error)
	UpdateStatus(id, status string) error
	ListByDriver(driverID string, limit, offset int) ([]*entity.Trip, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Trip, error)
}
