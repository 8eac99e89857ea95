package domain

import (
	"context"
	"time"
)

// Company is the hiring organisation invites attach employers to.
type Company struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	LogoURL   *string   `json:"logo_url"`
	Location  *string   `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}

// CompanyRepository defines storage operations for companies
type CompanyRepository interface {
	GetByID(ctx context.Context, id int64) (*Company, error)
}

// CompanyUsecase defines business logic operations
type CompanyUsecase interface {
	GetPublicCard(ctx context.Context, id int64) (*Company, error)
}
