package usecase

import (
	"context"
	"fmt"

	"go-pipeline-tracker/internal/domain"
	"go-pipeline-tracker/pkg/apperror"
	"go-pipeline-tracker/pkg/logger"
)

type interviewUsecase struct {
	interviewRepo domain.InterviewRepository
	positionRepo  domain.PositionRepository
	userRepo      domain.UserRepository
	messageRepo   domain.MessageRepository
	senderLabel   string
}

// NewInterviewUsecase creates the interview usecase with its notification
// dispatcher collaborators.
func NewInterviewUsecase(
	interviewRepo domain.InterviewRepository,
	positionRepo domain.PositionRepository,
	userRepo domain.UserRepository,
	messageRepo domain.MessageRepository,
	senderLabel string,
) domain.InterviewUsecase {
	if senderLabel == "" {
		senderLabel = "System"
	}
	return &interviewUsecase{
		interviewRepo: interviewRepo,
		positionRepo:  positionRepo,
		userRepo:      userRepo,
		messageRepo:   messageRepo,
		senderLabel:   senderLabel,
	}
}

func (uc *interviewUsecase) CreateInterview(ctx context.Context, iv *domain.Interview, notify bool) error {
	if err := uc.interviewRepo.Create(ctx, iv); err != nil {
		return apperror.Internal(err)
	}
	if notify {
		uc.notifyHiringManager(ctx, iv)
	}
	return nil
}

func (uc *interviewUsecase) ListInterviews(ctx context.Context) ([]domain.Interview, error) {
	interviews, err := uc.interviewRepo.Fetch(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return interviews, nil
}

func (uc *interviewUsecase) UpdateInterview(ctx context.Context, iv *domain.Interview, notify bool) error {
	if err := uc.interviewRepo.Update(ctx, iv); err != nil {
		return storeError(err)
	}
	if notify {
		uc.notifyHiringManager(ctx, iv)
	}
	return nil
}

func (uc *interviewUsecase) DeleteInterview(ctx context.Context, id string) error {
	if err := uc.interviewRepo.Delete(ctx, id); err != nil {
		return storeError(err)
	}
	return nil
}

// notifyHiringManager resolves the position matching the interview's
// free-text job position, then the position's creator, and writes an inbox
// message to them. Best-effort: every failure is logged and swallowed so the
// parent create/update never fails on a notification miss.
//
// The title join is a known fragility inherited from the interview record
// carrying a label instead of a position id.
func (uc *interviewUsecase) notifyHiringManager(ctx context.Context, iv *domain.Interview) {
	position, err := uc.positionRepo.GetByTitle(ctx, iv.JobPosition)
	if err != nil || position.CreatedBy == "" {
		logger.Log.Warn("notification skipped: position not found or has no creator",
			"job_position", iv.JobPosition, "error", err)
		return
	}

	manager, err := uc.userRepo.GetByID(ctx, position.CreatedBy)
	if err != nil || manager.Email == "" {
		logger.Log.Warn("notification skipped: hiring manager not found",
			"position_id", position.ID, "created_by", position.CreatedBy, "error", err)
		return
	}

	subject := fmt.Sprintf("Interview Update: %s %s", iv.CandidateFirstName, iv.CandidateLastName)
	body := fmt.Sprintf(`Interview Status Update
-----------------------
Candidate: %s %s
Position: %s
Interviewer: %s

Status: %s
Result: %s
Rating: %d/5

Feedback: %s`,
		iv.CandidateFirstName, iv.CandidateLastName,
		iv.JobPosition,
		iv.InterviewerName,
		iv.Status,
		iv.Result,
		iv.Rating,
		orDefault(iv.Feedback, "No feedback provided."),
	)

	msg := &domain.Message{
		To:        manager.Email,
		From:      uc.senderLabel,
		Subject:   subject,
		Body:      body,
		Status:    domain.MessageStatusUnread,
		RelatedID: &iv.ID,
	}
	if err := uc.messageRepo.Create(ctx, msg); err != nil {
		logger.Log.Warn("notification skipped: message write failed",
			"recipient", manager.Email, "error", err)
		return
	}

	logger.Log.Info("hiring manager notified", "recipient", manager.Email, "interview_id", iv.ID)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
