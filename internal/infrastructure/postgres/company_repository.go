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

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{pool: pool}
}

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(c *entity.Company) error {
	query := `
		INSERT INTO companies (id, name, email, vat_code, address, phone, legal_rep, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		c.ID, c.Name, c.Email, c.VATCode, c.Address, c.Phone, c.LegalRep, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID; nil si no existe.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	return r.one(`SELECT id, name, email, vat_code, address, phone, legal_rep, created_at, updated_at
		FROM companies WHERE id = $1`, id)
}

// FindByEmail obtiene una empresa por email; nil si no existe.
func (r *CompanyRepo) FindByEmail(email string) (*entity.Company, error) {
	return r.one(`SELECT id, name, email, vat_code, address, phone, legal_rep, created_at, updated_at
		FROM companies WHERE email = $1 LIMIT 1`, email)
}

// Update actualiza una empresa (perfil de empresa del panel).
func (r *CompanyRepo) Update(c *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, email = $3, vat_code = $4, address = $5, phone = $6,
			legal_rep = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		c.ID, c.Name, c.Email, c.VATCode, c.Address, c.Phone, c.LegalRep, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

func (r *CompanyRepo) one(query string, args ...any) (*entity.Company, error) {
	var c entity.Company
	err := r.pool.QueryRow(context.Background(), query, args...).Scan(
		&c.ID, &c.Name, &c.Email, &c.VATCode, &c.Address, &c.Phone, &c.LegalRep, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}
