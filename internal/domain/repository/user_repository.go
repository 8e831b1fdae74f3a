package repository

import (
	"time"

	"github.com/kossayboubaker/TruckNavi-nouveau/internal/domain/entity"
)

// UserRepository puerto de persistencia de usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.User, error)
	// ListByRole usuarios de una empresa con un rol dado (ej. los managers
	// que deben recibir una solicitud de congé).
	ListByRole(companyID, role string) ([]*entity.User, error)
	Delete(id string) error

	// FindByValidationToken busca un chofer pendiente por su token de
	// invitación; nil si no existe o ya fue consumido.
	FindByValidationToken(token string) (*entity.User, error)
	// SetResetToken guarda el token de reset de contraseña y su expiración.
	SetResetToken(userID, token string, expires time.Time) error
	// FindByResetToken busca por token de reset vigente; nil si no hay.
	FindByResetToken(token string) (*entity.User, error)
	// UpdatePassword cambia el hash y limpia el token de reset.
	UpdatePassword(userID, passwordHash string) error
}
