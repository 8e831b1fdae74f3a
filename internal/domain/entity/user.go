package entity

import "time"

// Roles válidos para User. El enum es cerrado: cualquier otro valor
// se trata como rol desconocido y bloquea la navegación (fail-closed).
const (
	RoleSuperAdmin = "super_admin"
	RoleManager    = "manager"
	RoleDriver     = "driver"
)

// Estados de cuenta.
const (
	StatusActive  = "active"
	StatusPending = "pending" // chofer invitado que aún no aceptó
	StatusBlocked = "blocked"
)

// KnownRole indica si el rol pertenece al enum cerrado.
func KnownRole(role string) bool {
	switch role {
	case RoleSuperAdmin, RoleManager, RoleDriver:
		return true
	}
	return false
}

// User representa un usuario del sistema de transporte (pertenece a una Company).
type User struct {
	ID           string
	CompanyID    string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Phone        string
	Country      string
	Role         string // super_admin, manager, driver
	Status       string // active, pending, blocked
	Image        string // nombre de archivo bajo /uploads, opcional

	// ValidationToken credencial de un solo uso para aceptar/rechazar la
	// cuenta de un chofer invitado (vacío cuando ya fue consumida).
	ValidationToken string
	ResetToken      string // token de reset de contraseña, opcional
	ResetExpires    *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName nombre completo para mostrar en notificaciones y correos.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
