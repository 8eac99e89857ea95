package usecase

import (
	"context"
	"errors"

	"github.com/Hemasri-atike/Ihire-sub000/internal/domain"
	"github.com/Hemasri-atike/Ihire-sub000/pkg/apperror"
)

type companyUsecase struct {
	companyRepo domain.CompanyRepository
}

func NewCompanyUsecase(repo domain.CompanyRepository) domain.CompanyUsecase {
	return &companyUsecase{companyRepo: repo}
}

// GetPublicCard returns the public company card shown on the acceptance page.
func (uc *companyUsecase) GetPublicCard(ctx context.Context, id int64) (*domain.Company, error) {
	company, err := uc.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company not found")
		}
		return nil, apperror.Internal(err)
	}
	return company, nil
}
