package usecase

import (
	"context"

	"go-pipeline-tracker/internal/domain"
	"go-pipeline-tracker/pkg/apperror"
)

type inboxUsecase struct {
	messageRepo domain.MessageRepository
	userRepo    domain.UserRepository
}

// NewInboxUsecase creates a new inbox usecase
func NewInboxUsecase(messageRepo domain.MessageRepository, userRepo domain.UserRepository) domain.InboxUsecase {
	return &inboxUsecase{messageRepo: messageRepo, userRepo: userRepo}
}

// ListMessages returns the caller's inbox, newest first. Hiring roles also
// see messages addressed to the system sender label.
func (uc *inboxUsecase) ListMessages(ctx context.Context, userID string) ([]domain.Message, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.Unauthorized("User not found")
	}

	isManager := user.Role == domain.RoleEmployer || user.Role == domain.RoleHiringManager
	messages, err := uc.messageRepo.FetchByRecipient(ctx, user.Email, isManager)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return messages, nil
}

func (uc *inboxUsecase) MarkMessage(ctx context.Context, id, status string) (*domain.Message, error) {
	if status != domain.MessageStatusRead && status != domain.MessageStatusUnread {
		return nil, apperror.BadRequest("Invalid status value")
	}

	msg, err := uc.messageRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, storeError(err)
	}
	return msg, nil
}
