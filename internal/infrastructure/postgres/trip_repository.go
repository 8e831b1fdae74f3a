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

var _ repository.TripRepository = (*TripRepo)(nil)

const tripColumns = `id, company_id, driver_id, manager_id, departure, destination,
	distance_km, cost, status, starts_at, created_at, updated_at`

// TripRepo implementación del puerto TripRepository sobre PostgreSQL.
type TripRepo struct {
	pool *pgxpool.Pool
}

// NewTripRepository construye el adaptador de persistencia para viajes.
func NewTripRepository(pool *pgxpool.Pool) *TripRepo {
	return &TripRepo{pool: pool}
}

// Create persiste un nuevo viaje.
func (r *TripRepo) Create(t *entity.Trip) error {
	query := `
		INSERT INTO trips (` + tripColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.pool.Exec(context.Background(), query,
		t.ID, t.CompanyID, t.DriverID, t.ManagerID, t.Departure, t.Destination,
		t.DistanceKm, t.Cost, t.Status, t.StartsAt, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert trip: %w", err)
	}
	return nil
}

// GetByID obtiene un viaje por ID; nil si no existe.
func (r *TripRepo) GetByID(id string) (*entity.Trip, error) {
	var t entity.Trip
	err := r.pool.QueryRow(context.Background(),
		`SELECT `+tripColumns+` FROM trips WHERE id = $1`, id).Scan(
		&t.ID, &t.CompanyID, &t.DriverID, &t.ManagerID, &t.Departure, &t.Destination,
		&t.DistanceKm, &t.Cost, &t.Status, &t.StartsAt, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get trip: %w", err)
	}
	return &t, nil
}

// UpdateStatus cambia el estado de un viaje.
func (r *TripRepo) UpdateStatus(id, status string) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE trips SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update trip status: %w", err)
	}
	return nil
}

// ListByDriver viajes de un chofer con paginación.
func (r *TripRepo) ListByDriver(driverID string, limit, offset int) ([]*entity.Trip, error) {
	query := `SELECT ` + tripColumns + `
		FROM trips WHERE driver_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.list(query, driverID, limit, offset)
}

// ListByCompany viajes de la empresa con paginación.
func (r *TripRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Trip, error) {
	query := `SELECT ` + tripColumns + `
		FROM trips WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.list(query, companyID, limit, offset)
}

func (r *TripRepo) list(query string, args ...any) ([]*entity.Trip, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	defer rows.Close()
	var out []*entity.Trip
	for rows.Next() {
		var t entity.Trip
		if err := rows.Scan(
			&t.ID, &t.CompanyID, &t.DriverID, &t.ManagerID, &t.Departure, &t.Destination,
			&t.DistanceKm, &t.Cost, &t.Status, &t.StartsAt, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan trip: %w", err)
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}
