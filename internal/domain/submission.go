package domain

import (
	"context"
	"time"
)

// Submission is a pure join between a Candidate and a Position, created by a
// recruiter. It carries no status of its own; status is always read through
// the linked Candidate.
type Submission struct {
	ID          string    `json:"id"`
	CandidateID string    `json:"candidate_id"`
	PositionID  string    `json:"position_id"`
	SubmittedBy string    `json:"submitted_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// SubmissionWithRefs is a submission with its linked records populated.
// Candidate or Position is nil when the referenced record has been deleted;
// such orphans are excluded from unified views, never surfaced as errors.
type SubmissionWithRefs struct {
	Submission
	Candidate *Candidate `json:"candidate,omitempty"`
	Position  *Position  `json:"position,omitempty"`
}

// SubmissionFilter narrows a recruiter's submission list. All matches are
// case-insensitive substring checks over the populated candidate.
type SubmissionFilter struct {
	SubmissionID  string
	CandidateName string
	Email         string
	Phone         string
	HiringManager string
	Company       string
}

type SubmissionRepository interface {
	Create(ctx context.Context, sub *Submission) error
	FetchWithRefs(ctx context.Context) ([]SubmissionWithRefs, error)
	FetchByRecruiterWithRefs(ctx context.Context, userID string) ([]SubmissionWithRefs, error)
	// Delete removes a submission owned by the given recruiter. Returns
	// ErrNotFound when no owned row matches.
	Delete(ctx context.Context, id, submittedBy string) error
}

type SubmissionUsecase interface {
	// SubmitCandidate creates the Candidate record and the join in one call.
	SubmitCandidate(ctx context.Context, recruiterID, positionID string, cand *Candidate) (*Submission, error)
	ListMySubmissions(ctx context.Context, recruiterID string, filter SubmissionFilter) ([]SubmissionWithRefs, error)
	DeleteSubmission(ctx context.Context, recruiterID, id string) error
}
