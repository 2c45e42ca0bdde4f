package usecase

import (
	"context"

	"go-pipeline-tracker/internal/domain"
	"go-pipeline-tracker/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type positionUsecase struct {
	positionRepo domain.PositionRepository
	validate     *validator.Validate
}

// NewPositionUsecase creates a new position usecase
func NewPositionUsecase(positionRepo domain.PositionRepository, validate *validator.Validate) domain.PositionUsecase {
	return &positionUsecase{positionRepo: positionRepo, validate: validate}
}

func (uc *positionUsecase) CreatePosition(ctx context.Context, userID string, pos *domain.Position) error {
	pos.CreatedBy = userID
	if err := uc.validate.Struct(pos); err != nil {
		return apperror.BadRequest(err.Error())
	}
	if err := uc.positionRepo.Create(ctx, pos); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (uc *positionUsecase) ListOpenPositions(ctx context.Context) ([]domain.Position, error) {
	positions, err := uc.positionRepo.FetchOpen(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return positions, nil
}

func (uc *positionUsecase) ListMyPositions(ctx context.Context, userID string) ([]domain.Position, error) {
	positions, err := uc.positionRepo.FetchByCreator(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return positions, nil
}

func (uc *positionUsecase) UpdatePosition(ctx context.Context, userID string, pos *domain.Position) error {
	// Creator scoping happens in the repository so a non-owner sees NotFound,
	// never someone else's posting
	pos.CreatedBy = userID
	if err := uc.validate.Struct(pos); err != nil {
		return apperror.BadRequest(err.Error())
	}
	if err := uc.positionRepo.Update(ctx, pos); err != nil {
		return storeError(err)
	}
	return nil
}

func (uc *positionUsecase) DeletePosition(ctx context.Context, userID, id string) error {
	if err := uc.positionRepo.Delete(ctx, id, userID); err != nil {
		return storeError(err)
	}
	return nil
}
