package usecase_test

import (
	"context"
	"testing"

	"go-pipeline-tracker/internal/domain"
	"go-pipeline-tracker/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestInboxListing(t *testing.T) {
	ctx := context.Background()

	t.Run("Should include system broadcasts for hiring roles", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		msgRepo := new(MockMessageRepo)
		uc := usecase.NewInboxUsecase(msgRepo, userRepo)

		userRepo.On("GetByID", ctx, "u1").Return(&domain.User{ID: "u1", Email: "manager@example.com", Role: domain.RoleHiringManager}, nil)
		msgRepo.On("FetchByRecipient", ctx, "manager@example.com", true).Return([]domain.Message{{ID: "m1"}}, nil)

		messages, err := uc.ListMessages(ctx, "u1")
		assert.NoError(t, err)
		assert.Len(t, messages, 1)
		msgRepo.AssertExpectations(t)
	})

	t.Run("Should not include broadcasts for recruiters", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		msgRepo := new(MockMessageRepo)
		uc := usecase.NewInboxUsecase(msgRepo, userRepo)

		userRepo.On("GetByID", ctx, "u2").Return(&domain.User{ID: "u2", Email: "rec@example.com", Role: domain.RoleRecruiter}, nil)
		msgRepo.On("FetchByRecipient", ctx, "rec@example.com", false).Return([]domain.Message{}, nil)

		_, err := uc.ListMessages(ctx, "u2")
		assert.NoError(t, err)
		msgRepo.AssertExpectations(t)
	})

	t.Run("Should reject an unknown caller", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewInboxUsecase(new(MockMessageRepo), userRepo)

		userRepo.On("GetByID", ctx, "ghost").Return(nil, domain.ErrNotFound)

		_, err := uc.ListMessages(ctx, "ghost")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "User not found")
	})
}

func TestMarkMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject an unknown read state", func(t *testing.T) {
		uc := usecase.NewInboxUsecase(new(MockMessageRepo), new(MockUserRepo))

		_, err := uc.MarkMessage(ctx, "m1", "archived")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid status")
	})

	t.Run("Should persist a valid read state", func(t *testing.T) {
		msgRepo := new(MockMessageRepo)
		uc := usecase.NewInboxUsecase(msgRepo, new(MockUserRepo))

		msgRepo.On("UpdateStatus", ctx, "m1", domain.MessageStatusRead).Return(&domain.Message{ID: "m1", Status: domain.MessageStatusRead}, nil)

		msg, err := uc.MarkMessage(ctx, "m1", domain.MessageStatusRead)
		assert.NoError(t, err)
		assert.Equal(t, domain.MessageStatusRead, msg.Status)
	})

	t.Run("Should surface not found for a missing message", func(t *testing.T) {
		msgRepo := new(MockMessageRepo)
		uc := usecase.NewInboxUsecase(msgRepo, new(MockUserRepo))

		msgRepo.On("UpdateStatus", ctx, "ghost", domain.MessageStatusRead).Return(nil, domain.ErrNotFound)

		_, err := uc.MarkMessage(ctx, "ghost", domain.MessageStatusRead)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Record not found")
	})
}
