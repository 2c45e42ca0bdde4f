package usecase

import (
	"context"
	"strings"

	"go-pipeline-tracker/internal/domain"
	"go-pipeline-tracker/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type submissionUsecase struct {
	subRepo      domain.SubmissionRepository
	candRepo     domain.CandidateRepository
	positionRepo domain.PositionRepository
	validate     *validator.Validate
}

// NewSubmissionUsecase creates a new recruiter-submission usecase
func NewSubmissionUsecase(
	subRepo domain.SubmissionRepository,
	candRepo domain.CandidateRepository,
	positionRepo domain.PositionRepository,
	validate *validator.Validate,
) domain.SubmissionUsecase {
	return &submissionUsecase{
		subRepo:      subRepo,
		candRepo:     candRepo,
		positionRepo: positionRepo,
		validate:     validate,
	}
}

// SubmitCandidate creates the person record and the join record. The two
// writes are not transactional: a candidate without a surviving submission is
// harmless, and an orphaned submission is dropped from every view.
func (uc *submissionUsecase) SubmitCandidate(ctx context.Context, recruiterID, positionID string, cand *domain.Candidate) (*domain.Submission, error) {
	if err := uc.validate.Struct(cand); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	position, err := uc.positionRepo.GetByID(ctx, positionID)
	if err != nil {
		return nil, apperror.NotFound("Position not found")
	}

	cand.SubmittedBy = recruiterID
	cand.Status = domain.CandidateStatusSubmitted
	if cand.Position == "" {
		cand.Position = position.Title
	}
	if err := uc.candRepo.Create(ctx, cand); err != nil {
		return nil, apperror.Internal(err)
	}

	sub := &domain.Submission{
		CandidateID: cand.ID,
		PositionID:  position.ID,
		SubmittedBy: recruiterID,
	}
	if err := uc.subRepo.Create(ctx, sub); err != nil {
		return nil, apperror.Internal(err)
	}
	return sub, nil
}

// ListMySubmissions returns the recruiter's submissions with linked records
// populated, filtered in memory over the populated candidate the way the
// dashboard expects. Submissions whose candidate was deleted are dropped
// whenever any filter is active.
func (uc *submissionUsecase) ListMySubmissions(ctx context.Context, recruiterID string, filter domain.SubmissionFilter) ([]domain.SubmissionWithRefs, error) {
	subs, err := uc.subRepo.FetchByRecruiterWithRefs(ctx, recruiterID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if !filterActive(filter) {
		return subs, nil
	}

	filtered := make([]domain.SubmissionWithRefs, 0, len(subs))
	for _, sub := range subs {
		if filter.SubmissionID != "" && sub.ID != filter.SubmissionID {
			continue
		}
		if sub.Candidate == nil {
			continue
		}
		c := sub.Candidate
		if !containsFold(c.DisplayName(), filter.CandidateName) {
			continue
		}
		if !containsFold(c.Email, filter.Email) {
			continue
		}
		if filter.Phone != "" && !strings.Contains(c.Phone, filter.Phone) {
			continue
		}
		if !containsFold(c.HiringManager, filter.HiringManager) {
			continue
		}
		if !containsFold(c.Company, filter.Company) {
			continue
		}
		filtered = append(filtered, sub)
	}
	return filtered, nil
}

func (uc *submissionUsecase) DeleteSubmission(ctx context.Context, recruiterID, id string) error {
	if err := uc.subRepo.Delete(ctx, id, recruiterID); err != nil {
		return storeError(err)
	}
	return nil
}

func filterActive(f domain.SubmissionFilter) bool {
	return f.SubmissionID != "" || f.CandidateName != "" || f.Email != "" ||
		f.Phone != "" || f.HiringManager != "" || f.Company != ""
}

// containsFold is a case-insensitive substring match; an empty needle always
// matches.
func containsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
