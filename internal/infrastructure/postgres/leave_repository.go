package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kossayboubaker/TruckNavi-nouveau/internal/domain/entity"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/domain/repository"
)

var _ repository.LeaveRepository = (*LeaveRepo)(nil)

const leaveColumns = `id, driver_id, reason, start_date, end_date, validation_token, status, created_at, updated_at`

// LeaveRepo implementación del puerto LeaveRepository sobre PostgreSQL.
type LeaveRepo struct {
	pool *pgxpool.Pool
}

// NewLeaveRepository construye el adaptador de persistencia para congés.
func NewLeaveRepository(pool *pgxpool.Pool) *LeaveRepo {
	return &LeaveRepo{pool: pool}
}

// Create persiste una nueva solicitud.
func (r *LeaveRepo) Create(lr *entity.LeaveRequest) error {
	query := `
		INSERT INTO leave_requests (` + leaveColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		lr.ID, lr.DriverID, lr.Reason, lr.StartDate, lr.EndDate, lr.ValidationToken,
		lr.Status, lr.CreatedAt, lr.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert leave request: %w", err)
	}
	return nil
}

// GetByID obtiene una solicitud por ID; nil si no existe.
func (r *LeaveRepo) GetByID(id string) (*entity.LeaveRequest, error) {
	return r.one(`SELECT `+leaveColumns+` FROM leave_requests WHERE id = $1`, id)
}

// FindByToken busca por token de validación; nil si no existe.
func (r *LeaveRepo) FindByToken(token string) (*entity.LeaveRequest, error) {
	if token == "" {
		return nil, nil
	}
	return r.one(`SELECT `+leaveColumns+` FROM leave_requests WHERE validation_token = $1`, token)
}

// UpdateStatus cambia el estado de una solicitud.
func (r *LeaveRepo) UpdateStatus(id, status string) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE leave_requests SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update leave status: %w", err)
	}
	return nil
}

// ListByDriver solicitudes de un chofer con paginación.
func (r *LeaveRepo) ListByDriver(driverID string, limit, offset int) ([]*entity.LeaveRequest, error) {
	query := `SELECT ` + leaveColumns + `
		FROM leave_requests WHERE driver_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, driverID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list leave requests: %w", err)
	}
	defer rows.Close()
	var out []*entity.LeaveRequest
	for rows.Next() {
		var lr entity.LeaveRequest
		if err := rows.Scan(
			&lr.ID, &lr.DriverID, &lr.Reason, &lr.StartDate, &lr.EndDate, &lr.ValidationToken,
			&lr.Status, &lr.CreatedAt, &lr.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan leave request: %w", err)
		}
		out = append(out, &lr)
	}
	return out, rows.Err()
}

func (r *LeaveRepo) one(query string, args ...any) (*entity.LeaveRequest, error) {
	var lr entity.LeaveRequest
	err := r.pool.QueryRow(context.Background(), query, args...).Scan(
		&lr.ID, &lr.DriverID, &lr.Reason, &lr.StartDate, &lr.EndDate, &lr.ValidationToken,
		&lr.Status, &lr.CreatedAt, &lr.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get leave request: %w", err)
	}
	return &lr, nil
}
