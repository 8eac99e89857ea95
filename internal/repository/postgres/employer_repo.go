package postgres

import (
	"context"
	"errors"

	"github.com/Hemasri-atike/Ihire-sub000/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type employerRepo struct {
	db *pgxpool.Pool
}

func NewEmployerRepository(db *pgxpool.Pool) domain.EmployerRepository {
	return &employerRepo{db: db}
}

func (r *employerRepo) GetByID(ctx context.Context, id int64) (*domain.Employer, error) {
	query := `
		SELECT id, user_id, email, name, role, company_id, created_at
		FROM employers
		WHERE id = $1
	`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *employerRepo) GetByUserID(ctx context.Context, userID string) (*domain.Employer, error) {
	query := `
		SELECT id, user_id, email, name, role, company_id, created_at
		FROM employers
		WHERE user_id = $1
	`
	return r.scanOne(r.db.QueryRow(ctx, query, userID))
}

func (r *employerRepo) scanOne(row pgx.Row) (*domain.Employer, error) {
	var e domain.Employer
	err := row.Scan(&e.ID, &e.UserID, &e.Email, &e.Name, &e.Role, &e.CompanyID, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}
