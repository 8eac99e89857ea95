package usecase

import (
	"context"

	"github.com/Hemasri-atike/Ihire-sub000/internal/domain"
)

type employerUsecase struct {
	employerRepo domain.EmployerRepository
}

func NewEmployerUsecase(repo domain.EmployerRepository) domain.EmployerUsecase {
	return &employerUsecase{employerRepo: repo}
}

// GetCurrent resolves the employer row behind an authenticated identity.
// Role and company membership always come from the store, never from token
// claims.
func (uc *employerUsecase) GetCurrent(ctx context.Context, userID string) (*domain.Employer, error) {
	return uc.employerRepo.GetByUserID(ctx, userID)
}
