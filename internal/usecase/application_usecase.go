package usecase

import (
	"context"

	"go-pipeline-tracker/internal/domain"
	"go-pipeline-tracker/pkg/apperror"
)

type applicationUsecase struct {
	appRepo domain.ApplicationRepository
}

// NewApplicationUsecase creates a new direct-application usecase
func NewApplicationUsecase(appRepo domain.ApplicationRepository) domain.ApplicationUsecase {
	return &applicationUsecase{appRepo: appRepo}
}

// Apply creates a direct application for the calling candidate. The record
// is self-contained: status starts at Applied and lives on the record.
func (uc *applicationUsecase) Apply(ctx context.Context, userID string, app *domain.DirectApplication) error {
	if app.Position == "" {
		return apperror.BadRequest("Position title is required")
	}
	if app.Email == "" {
		return apperror.BadRequest("Email is required")
	}

	app.CreatedBy = userID
	app.Status = domain.DirectStatusApplied

	if err := uc.appRepo.Create(ctx, app); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (uc *applicationUsecase) GetMyApplications(ctx context.Context, userID string) ([]domain.DirectApplication, error) {
	apps, err := uc.appRepo.FetchByCreator(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}
