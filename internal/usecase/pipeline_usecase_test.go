package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"go-pipeline-tracker/internal/domain"
	"go-pipeline-tracker/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Repositories
type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.DirectApplication) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id string) (*domain.DirectApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DirectApplication), args.Error(1)
}
func (m *MockApplicationRepo) Fetch(ctx context.Context) ([]domain.DirectApplication, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DirectApplication), args.Error(1)
}
func (m *MockApplicationRepo) FetchByStatus(ctx context.Context, status string) ([]domain.DirectApplication, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DirectApplication), args.Error(1)
}
func (m *MockApplicationRepo) FetchByEmail(ctx context.Context, email string) ([]domain.DirectApplication, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DirectApplication), args.Error(1)
}
func (m *MockApplicationRepo) FetchByCreator(ctx context.Context, userID string) ([]domain.DirectApplication, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DirectApplication), args.Error(1)
}
func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return m.Called(ctx, id, status).Error(0)
}
func (m *MockApplicationRepo) UpdateStatusAndOnboarding(ctx context.Context, id, status, onboarding string) error {
	return m.Called(ctx, id, status, onboarding).Error(0)
}
func (m *MockApplicationRepo) SetOnboardingStatus(ctx context.Context, id, onboarding string) error {
	return m.Called(ctx, id, onboarding).Error(0)
}

type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) Create(ctx context.Context, cand *domain.Candidate) error {
	return m.Called(ctx, cand).Error(0)
}
func (m *MockCandidateRepo) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}
func (m *MockCandidateRepo) FetchByEmail(ctx context.Context, email string) ([]domain.Candidate, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Candidate), args.Error(1)
}
func (m *MockCandidateRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return m.Called(ctx, id, status).Error(0)
}
func (m *MockCandidateRepo) UpdateStatusAndOnboarding(ctx context.Context, id, status, onboarding string) error {
	return m.Called(ctx, id, status, onboarding).Error(0)
}
func (m *MockCandidateRepo) SetOnboardingStatus(ctx context.Context, id, onboarding string) error {
	return m.Called(ctx, id, onboarding).Error(0)
}

type MockSubmissionRepo struct {
	mock.Mock
}

func (m *MockSubmissionRepo) Create(ctx context.Context, sub *domain.Submission) error {
	return m.Called(ctx, sub).Error(0)
}
func (m *MockSubmissionRepo) FetchWithRefs(ctx context.Context) ([]domain.SubmissionWithRefs, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SubmissionWithRefs), args.Error(1)
}
func (m *MockSubmissionRepo) FetchByRecruiterWithRefs(ctx context.Context, userID string) ([]domain.SubmissionWithRefs, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SubmissionWithRefs), args.Error(1)
}
func (m *MockSubmissionRepo) Delete(ctx context.Context, id, submittedBy string) error {
	return m.Called(ctx, id, submittedBy).Error(0)
}

func newPipelineUC(appRepo *MockApplicationRepo, candRepo *MockCandidateRepo, subRepo *MockSubmissionRepo) domain.PipelineUsecase {
	return usecase.NewPipelineUsecase(appRepo, candRepo, subRepo, usecase.Limits{})
}

func TestResolveOwnership(t *testing.T) {
	ctx := context.Background()

	t.Run("Should resolve to direct store when the application owns the id", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		candRepo := new(MockCandidateRepo)
		uc := newPipelineUC(appRepo, candRepo, new(MockSubmissionRepo))

		appRepo.On("GetByID", ctx, "a1").Return(&domain.DirectApplication{ID: "a1", Status: domain.DirectStatusApplied}, nil)
		candRepo.On("GetByID", ctx, "a1").Return(nil, domain.ErrNotFound)

		handle, err := uc.Resolve(ctx, "a1")
		assert.NoError(t, err)
		assert.Equal(t, domain.SourceDirect, handle.Source)
		assert.Equal(t, "a1", handle.ID())
		assert.Equal(t, domain.StatusApplied, handle.Status())
	})

	t.Run("Should fall through to candidate store", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		candRepo := new(MockCandidateRepo)
		uc := newPipelineUC(appRepo, candRepo, new(MockSubmissionRepo))

		appRepo.On("GetByID", ctx, "c1").Return(nil, domain.ErrNotFound)
		candRepo.On("GetByID", ctx, "c1").Return(&domain.Candidate{ID: "c1", Status: domain.CandidateStatusSubmitted}, nil)

		handle, err := uc.Resolve(ctx, "c1")
		assert.NoError(t, err)
		assert.Equal(t, domain.SourceCandidate, handle.Source)
		assert.Equal(t, domain.StatusSubmitted, handle.Status())
	})

	t.Run("Should return not found when neither store owns the id", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		candRepo := new(MockCandidateRepo)
		uc := newPipelineUC(appRepo, candRepo, new(MockSubmissionRepo))

		appRepo.On("GetByID", ctx, "zzz").Return(nil, domain.ErrNotFound)
		candRepo.On("GetByID", ctx, "zzz").Return(nil, domain.ErrNotFound)

		_, err := uc.Resolve(ctx, "zzz")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Record not found")
	})

	t.Run("Should prefer the direct store when both stores own the id", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		candRepo := new(MockCandidateRepo)
		uc := newPipelineUC(appRepo, candRepo, new(MockSubmissionRepo))

		appRepo.On("GetByID", ctx, "dup").Return(&domain.DirectApplication{ID: "dup", Status: domain.DirectStatusApplied}, nil)
		candRepo.On("GetByID", ctx, "dup").Return(&domain.Candidate{ID: "dup", Status: domain.CandidateStatusHired}, nil)

		handle, err := uc.Resolve(ctx, "dup")
		assert.NoError(t, err)
		assert.Equal(t, domain.SourceDirect, handle.Source)
	})
}

func TestStatusTransitions(t *testing.T) {
	ctx := context.Background()

	t.Run("Should write the direct vocabulary on review", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		candRepo := new(MockCandidateRepo)
		uc := newPipelineUC(appRepo, candRepo, new(MockSubmissionRepo))

		appRepo.On("GetByID", ctx, "a1").Return(&domain.DirectApplication{ID: "a1", Status: domain.DirectStatusApplied}, nil)
		candRepo.On("GetByID", ctx, "a1").Return(nil, domain.ErrNotFound)
		appRepo.On("UpdateStatus", ctx, "a1", domain.DirectStatusUnderReview).Return(nil)

		entry, err := uc.Review(ctx, "a1")
		assert.NoError(t, err)
		assert.Equal(t, string(domain.StatusUnderReview), entry.Status)
		appRepo.AssertExpectations(t)
	})

	t.Run("Should write the candidate vocabulary on review", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		candRepo := new(MockCandidateRepo)
		uc := newPipelineUC(appRepo, candRepo, new(MockSubmissionRepo))

		appRepo.On("GetByID", ctx, "c1").Return(nil, domain.ErrNotFound)
		candRepo.On("GetByID", ctx, "c1").Return(&domain.Candidate{ID: "c1", Status: domain.CandidateStatusSubmitted}, nil)
		candRepo.On("UpdateStatus", ctx, "c1", domain.CandidateStatusUnderReview).Return(nil)

		entry, err := uc.Review(ctx, "c1")
		assert.NoError(t, err)
		assert.Equal(t, string(domain.StatusUnderReview), entry.Status)
		assert.True(t, entry.IsRecruiterSubmission)
		candRepo.AssertExpectations(t)
	})

	t.Run("Should re-assert rejected without error", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		candRepo := new(MockCandidateRepo)
		uc := newPipelineUC(appRepo, candRepo, new(MockSubmissionRepo))

		appRepo.On("GetByID", ctx, "a1").Return(&domain.DirectApplication{ID: "a1", Status: domain.DirectStatusRejected}, nil)
		candRepo.On("GetByID", ctx, "a1").Return(nil, domain.ErrNotFound)
		appRepo.On("UpdateStatus", ctx, "a1", domain.DirectStatusRejected).Return(nil)

		entry, err := uc.Reject(ctx, "a1")
		assert.NoError(t, err)
		assert.Equal(t, string(domain.StatusRejected), entry.Status)
	})

	t.Run("Should allow hire after reject", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		candRepo := new(MockCandidateRepo)
		uc := newPipelineUC(appRepo, candRepo, new(MockSubmissionRepo))

		appRepo.On("GetByID", ctx, "a1").Return(&domain.DirectApplication{ID: "a1", Status: domain.DirectStatusRejected}, nil)
		candRepo.On("GetByID", ctx, "a1").Return(nil, domain.ErrNotFound)
		appRepo.On("UpdateStatusAndOnboarding", ctx, "a1", domain.DirectStatusHired, domain.OnboardingPending).Return(nil)

		entry, err := uc.Hire(ctx, "a1")
		assert.NoError(t, err)
		assert.Equal(t, string(domain.StatusHired), entry.Status)
		assert.Equal(t, domain.OnboardingPending, entry.OnboardingStatus)
	})

	t.Run("Should surface not found on unknown id", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		candRepo := new(MockCandidateRepo)
		uc := newPipelineUC(appRepo, candRepo, new(MockSubmissionRepo))

		appRepo.On("GetByID", ctx, "zzz").Return(nil, domain.ErrNotFound)
		candRepo.On("GetByID", ctx, "zzz").Return(nil, domain.ErrNotFound)

		_, err := uc.Review(ctx, "zzz")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Record not found")
	})
}

func TestHireOnboarding(t *testing.T) {
	ctx := context.Background()

	t.Run("Should start onboarding at Pending on first hire", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		candRepo := new(MockCandidateRepo)
		uc := newPipelineUC(appRepo, candRepo, new(MockSubmissionRepo))

		appRepo.On("GetByID", ctx, "a1").Return(&domain.DirectApplication{ID: "a1", Status: domain.DirectStatusInterview}, nil)
		candRepo.On("GetByID", ctx, "a1").Return(nil, domain.ErrNotFound)
		appRepo.On("UpdateStatusAndOnboarding", ctx, "a1", domain.DirectStatusHired, domain.OnboardingPending).Return(nil)

		entry, err := uc.Hire(ctx, "a1")
		assert.NoError(t, err)
		assert.Equal(t, domain.OnboardingPending, entry.OnboardingStatus)
		appRepo.AssertExpectations(t)
	})

	t.Run("Should not regress advanced onboarding on repeat hire", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		candRepo := new(MockCandidateRepo)
		uc := newPipelineUC(appRepo, candRepo, new(MockSubmissionRepo))

		appRepo.On("GetByID", ctx, "a1").Return(&domain.DirectApplication{
			ID:               "a1",
			Status:           domain.DirectStatusHired,
			OnboardingStatus: domain.OnboardingInProgress,
		}, nil)
		candRepo.On("GetByID", ctx, "a1").Return(nil, domain.ErrNotFound)
		appRepo.On("UpdateStatusAndOnboarding", ctx, "a1", domain.DirectStatusHired, domain.OnboardingInProgress).Return(nil)

		entry, err := uc.Hire(ctx, "a1")
		assert.NoError(t, err)
		assert.Equal(t, domain.OnboardingInProgress, entry.OnboardingStatus)
		appRepo.AssertExpectations(t)
	})

	t.Run("Should hire a recruiter candidate in its own vocabulary", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		candRepo := new(MockCandidateRepo)
		uc := newPipelineUC(appRepo, candRepo, new(MockSubmissionRepo))

		appRepo.On("GetByID", ctx, "c1").Return(nil, domain.ErrNotFound)
		candRepo.On("GetByID", ctx, "c1").Return(&domain.Candidate{ID: "c1", Status: domain.CandidateStatusShortlisted}, nil)
		candRepo.On("UpdateStatusAndOnboarding", ctx, "c1", domain.CandidateStatusHired, domain.OnboardingPending).Return(nil)

		entry, err := uc.Hire(ctx, "c1")
		assert.NoError(t, err)
		assert.Equal(t, string(domain.StatusHired), entry.Status)
		candRepo.AssertExpectations(t)
	})
}

func TestSetOnboardingStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject an unknown onboarding value", func(t *testing.T) {
		uc := newPipelineUC(new(MockApplicationRepo), new(MockCandidateRepo), new(MockSubmissionRepo))

		_, err := uc.SetOnboardingStatus(ctx, "a1", "Finished")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid onboarding status")
	})

	t.Run("Should write onboarding regardless of hire state", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		candRepo := new(MockCandidateRepo)
		uc := newPipelineUC(appRepo, candRepo, new(MockSubmissionRepo))

		// Record is still in Interview; the write is allowed anyway.
		appRepo.On("GetByID", ctx, "a1").Return(&domain.DirectApplication{ID: "a1", Status: domain.DirectStatusInterview}, nil)
		candRepo.On("GetByID", ctx, "a1").Return(nil, domain.ErrNotFound)
		appRepo.On("SetOnboardingStatus", ctx, "a1", domain.OnboardingCompleted).Return(nil)

		entry, err := uc.SetOnboardingStatus(ctx, "a1", domain.OnboardingCompleted)
		assert.NoError(t, err)
		assert.Equal(t, domain.OnboardingCompleted, entry.OnboardingStatus)
		appRepo.AssertExpectations(t)
	})
}

func TestListPipeline(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	apps := []domain.DirectApplication{
		{ID: "a1", CandidateName: "Dana Direct", Email: "dana@example.com", Position: "Backend Engineer", Status: domain.DirectStatusApplied, AppliedAt: now.Add(-2 * time.Hour)},
		{ID: "a2", CandidateName: "Omar Older", Email: "omar@example.com", Position: "Data Analyst", Status: domain.DirectStatusHired, OnboardingStatus: domain.OnboardingInProgress, AppliedAt: now.Add(-48 * time.Hour)},
	}
	subs := []domain.SubmissionWithRefs{
		{
			Submission: domain.Submission{ID: "s1", CandidateID: "c1", PositionID: "p1", CreatedAt: now.Add(-1 * time.Hour)},
			Candidate:  &domain.Candidate{ID: "c1", FirstName: "Rita", LastName: "Recruited", Email: "rita@example.com", Status: domain.CandidateStatusSubmitted},
			Position:   &domain.Position{ID: "p1", Title: "Engineer", Department: "Platform"},
		},
		{
			// Orphan: position deleted after submission.
			Submission: domain.Submission{ID: "s2", CandidateID: "c2", PositionID: "gone", CreatedAt: now},
			Candidate:  &domain.Candidate{ID: "c2", FirstName: "Oscar", LastName: "Orphan", Email: "oscar@example.com"},
		},
	}

	t.Run("Should merge both stores and drop orphans", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		subRepo := new(MockSubmissionRepo)
		uc := newPipelineUC(appRepo, new(MockCandidateRepo), subRepo)

		appRepo.On("Fetch", ctx).Return(apps, nil)
		subRepo.On("FetchWithRefs", ctx).Return(subs, nil)

		result, err := uc.ListPipeline(ctx, domain.PipelineFilter{})
		assert.NoError(t, err)
		assert.Equal(t, int64(3), result.Total)

		// Newest first: the submission sits between the two applications.
		assert.Equal(t, "c1", result.Data[0].ID)
		assert.Equal(t, "a1", result.Data[1].ID)
		assert.Equal(t, "a2", result.Data[2].ID)

		// Submission entries are keyed by candidate id and carry the
		// populated position title.
		sub := result.Data[0]
		assert.True(t, sub.IsRecruiterSubmission)
		assert.Equal(t, "Rita Recruited", sub.CandidateName)
		assert.Equal(t, "Engineer", sub.Position)
		assert.Equal(t, string(domain.StatusSubmitted), sub.Status)
		assert.Equal(t, domain.OnboardingPending, sub.OnboardingStatus)
	})

	t.Run("Should filter by status case-insensitively", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		subRepo := new(MockSubmissionRepo)
		uc := newPipelineUC(appRepo, new(MockCandidateRepo), subRepo)

		appRepo.On("Fetch", ctx).Return(apps, nil)
		subRepo.On("FetchWithRefs", ctx).Return(subs, nil)

		result, err := uc.ListPipeline(ctx, domain.PipelineFilter{Status: "hired"})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), result.Total)
		assert.Equal(t, "a2", result.Data[0].ID)
	})

	t.Run("Should search across name, email and position", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		subRepo := new(MockSubmissionRepo)
		uc := newPipelineUC(appRepo, new(MockCandidateRepo), subRepo)

		appRepo.On("Fetch", ctx).Return(apps, nil)
		subRepo.On("FetchWithRefs", ctx).Return(subs, nil)

		result, err := uc.ListPipeline(ctx, domain.PipelineFilter{Search: "rita@"})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), result.Total)
		assert.Equal(t, "c1", result.Data[0].ID)
	})

	t.Run("Should paginate the unified list", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		subRepo := new(MockSubmissionRepo)
		uc := newPipelineUC(appRepo, new(MockCandidateRepo), subRepo)

		appRepo.On("Fetch", ctx).Return(apps, nil)
		subRepo.On("FetchWithRefs", ctx).Return(subs, nil)

		result, err := uc.ListPipeline(ctx, domain.PipelineFilter{Page: 2, PageSize: 2})
		assert.NoError(t, err)
		assert.Equal(t, int64(3), result.Total)
		assert.Equal(t, 2, result.Page)
		assert.Equal(t, 2, result.TotalPages)
		assert.Len(t, result.Data, 1)
		assert.Equal(t, "a2", result.Data[0].ID)
	})
}

func TestHistoryByEmail(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("Should merge entries from both stores newest first", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		candRepo := new(MockCandidateRepo)
		uc := newPipelineUC(appRepo, candRepo, new(MockSubmissionRepo))

		appRepo.On("FetchByEmail", ctx, "sam@example.com").Return([]domain.DirectApplication{
			{ID: "a1", Email: "sam@example.com", Status: domain.DirectStatusRejected, AppliedAt: now.Add(-72 * time.Hour)},
		}, nil)
		candRepo.On("FetchByEmail", ctx, "sam@example.com").Return([]domain.Candidate{
			{ID: "c1", Email: "sam@example.com", Status: domain.CandidateStatusInterview, CreatedAt: now},
		}, nil)

		entries, err := uc.HistoryByEmail(ctx, "sam@example.com")
		assert.NoError(t, err)
		assert.Len(t, entries, 2)
		assert.Equal(t, "c1", entries[0].ID)
		assert.Equal(t, "a1", entries[1].ID)
	})

	t.Run("Should reject an empty email", func(t *testing.T) {
		uc := newPipelineUC(new(MockApplicationRepo), new(MockCandidateRepo), new(MockSubmissionRepo))

		_, err := uc.HistoryByEmail(ctx, "")
		assert.Error(t, err)
	})
}

func TestHiredPipeline(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("Should tag entry types and exclude non-hired submissions", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		subRepo := new(MockSubmissionRepo)
		uc := newPipelineUC(appRepo, new(MockCandidateRepo), subRepo)

		appRepo.On("FetchByStatus", ctx, domain.DirectStatusHired).Return([]domain.DirectApplication{
			{ID: "a1", Status: domain.DirectStatusHired, AppliedAt: now},
		}, nil)
		subRepo.On("FetchWithRefs", ctx).Return([]domain.SubmissionWithRefs{
			{
				Submission: domain.Submission{ID: "s1", CreatedAt: now.Add(-time.Hour)},
				Candidate:  &domain.Candidate{ID: "c1", Status: domain.CandidateStatusHired},
				Position:   &domain.Position{ID: "p1", Title: "Engineer", Department: "Platform"},
			},
			{
				Submission: domain.Submission{ID: "s2", CreatedAt: now},
				Candidate:  &domain.Candidate{ID: "c2", Status: domain.CandidateStatusInterview},
				Position:   &domain.Position{ID: "p2", Title: "Analyst"},
			},
		}, nil)

		entries, err := uc.HiredPipeline(ctx)
		assert.NoError(t, err)
		assert.Len(t, entries, 2)
		assert.Equal(t, domain.EntryTypeDirect, entries[0].Type)
		assert.Equal(t, domain.EntryTypeAgency, entries[1].Type)
		assert.Equal(t, "Platform", entries[1].Department)
	})
}

func TestExportPipeline(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	apps := []domain.DirectApplication{
		{ID: "a1", CandidateName: "Dana Direct", Email: "dana@example.com", Position: "Backend Engineer", Status: domain.DirectStatusApplied, AppliedAt: now},
	}

	t.Run("Should export csv with selected columns", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		subRepo := new(MockSubmissionRepo)
		uc := newPipelineUC(appRepo, new(MockCandidateRepo), subRepo)

		appRepo.On("Fetch", ctx).Return(apps, nil)
		subRepo.On("FetchWithRefs", ctx).Return([]domain.SubmissionWithRefs{}, nil)

		data, filename, err := uc.ExportPipeline(ctx, domain.PipelineExportRequest{
			Format:  "csv",
			Columns: []string{"candidate_name", "status", "source"},
		})
		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(filename, "pipeline_"))
		assert.True(t, strings.HasSuffix(filename, ".csv"))

		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		assert.Len(t, lines, 2)
		assert.Equal(t, "candidate_name,status,source", lines[0])
		assert.Equal(t, "Dana Direct,Applied,Direct", lines[1])
	})

	t.Run("Should default to xlsx with all columns", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		subRepo := new(MockSubmissionRepo)
		uc := newPipelineUC(appRepo, new(MockCandidateRepo), subRepo)

		appRepo.On("Fetch", ctx).Return(apps, nil)
		subRepo.On("FetchWithRefs", ctx).Return([]domain.SubmissionWithRefs{}, nil)

		data, filename, err := uc.ExportPipeline(ctx, domain.PipelineExportRequest{})
		assert.NoError(t, err)
		assert.NotEmpty(t, data)
		assert.True(t, strings.HasSuffix(filename, ".xlsx"))
	})

	t.Run("Should reject an unknown column", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		subRepo := new(MockSubmissionRepo)
		uc := newPipelineUC(appRepo, new(MockCandidateRepo), subRepo)

		appRepo.On("Fetch", ctx).Return(apps, nil)
		subRepo.On("FetchWithRefs", ctx).Return([]domain.SubmissionWithRefs{}, nil)

		_, _, err := uc.ExportPipeline(ctx, domain.PipelineExportRequest{Columns: []string{"salary"}})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid export column")
	})
}
