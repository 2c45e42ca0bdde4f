package domain

import (
	"context"
	"time"
)

// DirectApplication status vocabulary. This is one of two physical encodings
// of the pipeline state; see pipeline.go for the canonical model.
const (
	DirectStatusApplied     = "Applied"
	DirectStatusScreening   = "Screening"
	DirectStatusUnderReview = "Under Review"
	DirectStatusInterview   = "Interview"
	DirectStatusOffer       = "Offer"
	DirectStatusHired       = "Hired"
	DirectStatusRejected    = "Rejected"
)

// DirectApplication is a self-contained record for a self-service application.
// Status and the onboarding flag live directly on the record, so no join
// table is involved for this entry path.
type DirectApplication struct {
	ID               string    `json:"id"`
	JobID            *string   `json:"job_id,omitempty"`
	Position         string    `json:"position"` // denormalized position title
	CandidateName    string    `json:"candidate_name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	ResumeURL        string    `json:"resume_url"`
	Status           string    `json:"status"`
	OnboardingStatus string    `json:"onboarding_status"`
	CreatedBy        string    `json:"created_by"`
	AppliedAt        time.Time `json:"applied_at"`
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *DirectApplication) error
	GetByID(ctx context.Context, id string) (*DirectApplication, error)
	Fetch(ctx context.Context) ([]DirectApplication, error)
	FetchByStatus(ctx context.Context, status string) ([]DirectApplication, error)
	FetchByEmail(ctx context.Context, email string) ([]DirectApplication, error)
	FetchByCreator(ctx context.Context, userID string) ([]DirectApplication, error)
	UpdateStatus(ctx context.Context, id, status string) error
	// UpdateStatusAndOnboarding writes both fields in a single statement so a
	// hire is one atomic document update.
	UpdateStatusAndOnboarding(ctx context.Context, id, status, onboarding string) error
	SetOnboardingStatus(ctx context.Context, id, onboarding string) error
}

type ApplicationUsecase interface {
	// Apply creates a DirectApplication for the calling candidate.
	Apply(ctx context.Context, userID string, app *DirectApplication) error
	GetMyApplications(ctx context.Context, userID string) ([]DirectApplication, error)
}
