package repository

import "github.com/kossayboubaker/TruckNavi-nouveau/internal/domain/entity"

// CompanyRepository puerto de persistencia de empresas.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	FindByEmail(email string) (*entity.Company, error)
	Update(company *entity.Company) error
}
