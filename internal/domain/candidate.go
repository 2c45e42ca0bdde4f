package domain

import (
	"context"
	"time"
)

// Candidate status vocabulary. Deliberately different from the
// DirectApplication vocabulary; both map onto the canonical pipeline model.
const (
	CandidateStatusSubmitted   = "Submitted"
	CandidateStatusUnderReview = "Under Review"
	CandidateStatusPhoneScreen = "Phone Screen Scheduled"
	CandidateStatusShortlisted = "Shortlisted"
	CandidateStatusInterview   = "Interview"
	CandidateStatusRejected    = "Rejected"
	CandidateStatusOnsite      = "Onsite Scheduled"
	CandidateStatusHired       = "Hired"
)

// Candidate represents the person a recruiter submitted, independent of which
// position(s) they were submitted against. Status and the onboarding flag are
// carried here, not on the Submission join record.
type Candidate struct {
	ID                 string    `json:"id"`
	FirstName          string    `json:"first_name"`
	LastName           string    `json:"last_name"`
	Email              string    `json:"email" validate:"required,email"`
	Phone              string    `json:"phone"`
	Position           string    `json:"position"` // free-text position label
	Agency             string    `json:"agency"`
	Recruiter          string    `json:"recruiter"`
	Company            string    `json:"company"`
	HiringManager      string    `json:"hiring_manager"`
	Status             string    `json:"status"`
	OnboardingStatus   string    `json:"onboarding_status"`
	ResumePath         string    `json:"resume_path"`
	ResumeOriginalName string    `json:"resume_original_name"`
	SubmittedBy        string    `json:"submitted_by"`
	CreatedAt          time.Time `json:"created_at"`
}

// DisplayName joins the name fields the way every view renders them.
func (c *Candidate) DisplayName() string {
	return c.FirstName + " " + c.LastName
}

type CandidateRepository interface {
	Create(ctx context.Context, cand *Candidate) error
	GetByID(ctx context.Context, id string) (*Candidate, error)
	FetchByEmail(ctx context.Context, email string) ([]Candidate, error)
	UpdateStatus(ctx context.Context, id, status string) error
	UpdateStatusAndOnboarding(ctx context.Context, id, status, onboarding string) error
	SetOnboardingStatus(ctx context.Context, id, onboarding string) error
}
