package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kossayboubaker/TruckNavi-nouveau/internal/domain"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/domain/entity"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, company_id, first_name, last_name, email, password_hash, phone, country,
	role, status, image, validation_token, reset_token, reset_expires, created_at, updated_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, user.CompanyID, user.FirstName, user.LastName, user.Email, user.PasswordHash,
		user.Phone, user.Country, user.Role, user.Status, user.Image,
		user.ValidationToken, user.ResetToken, user.ResetExpires, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.one(`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// FindByEmail obtiene un usuario por email; nil si no existe.
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	return r.one(`SELECT `+userColumns+` FROM users WHERE email = $1 LIMIT 1`, email)
}

// FindByValidationToken busca un chofer pendiente por su token de invitación.
func (r *UserRepo) FindByValidationToken(token string) (*entity.User, error) {
	if token == "" {
		return nil, nil
	}
	return r.one(`SELECT `+userColumns+` FROM users WHERE validation_token = $1`, token)
}

// FindByResetToken busca por token de reset; nil si no hay.
func (r *UserRepo) FindByResetToken(token string) (*entity.User, error) {
	if token == "" {
		return nil, nil
	}
	return r.one(`SELECT `+userColumns+` FROM users WHERE reset_token = $1`, token)
}

// SetResetToken guarda el token de reset de contraseña y su expiración.
func (r *UserRepo) SetResetToken(userID, token string, expires time.Time) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE users SET reset_token = $2, reset_expires = $3, updated_at = now() WHERE id = $1`,
		userID, token, expires,
	)
	if err != nil {
		return fmt.Errorf("set reset token: %w", err)
	}
	return nil
}

// UpdatePassword cambia el hash y limpia el token de reset.
func (r *UserRepo) UpdatePassword(userID, passwordHash string) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE users SET password_hash = $2, reset_token = '', reset_expires = NULL, updated_at = now() WHERE id = $1`,
		userID, passwordHash,
	)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// Update actualiza un usuario.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET first_name = $2, last_name = $3, email = $4, phone = $5, country = $6,
			role = $7, status = $8, image = $9, validation_token = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, user.FirstName, user.LastName, user.Email, user.Phone, user.Country,
		user.Role, user.Status, user.Image, user.ValidationToken, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// ListByCompany lista usuarios por empresa con paginación.
func (r *UserRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + `
		FROM users WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.list(query, companyID, limit, offset)
}

// ListByRole usuarios de una empresa con un rol dado.
func (r *UserRepo) ListByRole(companyID, role string) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + `
		FROM users WHERE company_id = $1 AND role = $2 ORDER BY created_at`
	return r.list(query, companyID, role)
}

// Delete elimina un usuario por ID.
func (r *UserRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (r *UserRepo) one(query string, args ...any) (*entity.User, error) {
	var u entity.User
	err := r.pool.QueryRow(context.Background(), query, args...).Scan(
		&u.ID, &u.CompanyID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash,
		&u.Phone, &u.Country, &u.Role, &u.Status, &u.Image,
		&u.ValidationToken, &u.ResetToken, &u.ResetExpires, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

func (r *UserRepo) list(query string, args ...any) ([]*entity.User, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var out []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(
			&u.ID, &u.CompanyID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash,
			&u.Phone, &u.Country, &u.Role, &u.Status, &u.Image,
			&u.ValidationToken, &u.ResetToken, &u.ResetExpires, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, &u)
	}
	return out, rows.Err()
}

// isUniqueViolation detecta el código 23505 de PostgreSQL.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
