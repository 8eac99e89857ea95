package postgres

import (
	"context"
	"errors"

	"github.com/Hemasri-atike/Ihire-sub000/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type companyRepo struct {
	db *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) domain.CompanyRepository {
	return &companyRepo{db: db}
}

func (r *companyRepo) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	query := `
		SELECT id, name, logo_url, location, created_at
		FROM companies
		WHERE id = $1
	`
	var c domain.Company
	err := r.db.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.LogoURL, &c.Location, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}
