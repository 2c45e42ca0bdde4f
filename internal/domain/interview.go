package domain

import (
	"context"
	"time"
)

// Interview is a scheduled or completed interview round. The job position is
// a free-text label, not a position id; the notification dispatcher joins it
// against position titles best-effort.
type Interview struct {
	ID                 string     `json:"id"`
	CandidateFirstName string     `json:"candidate_first_name"`
	CandidateLastName  string     `json:"candidate_last_name"`
	Email              string     `json:"email"`
	JobPosition        string     `json:"job_position"`
	InterviewerName    string     `json:"interviewer_name"`
	Date               *time.Time `json:"date,omitempty"`
	Time               string     `json:"time"`
	Type               string     `json:"type"`
	Status             string     `json:"status"`
	Result             string     `json:"result"`
	Rating             int        `json:"rating"`
	Feedback           string     `json:"feedback"`
	Resume             string     `json:"resume"`
	CreatedAt          time.Time  `json:"created_at"`
}

type InterviewRepository interface {
	Create(ctx context.Context, iv *Interview) error
	Fetch(ctx context.Context) ([]Interview, error)
	Update(ctx context.Context, iv *Interview) error
	Delete(ctx context.Context, id string) error
}

type InterviewUsecase interface {
	// CreateInterview persists the interview and, when notify is set,
	// dispatches a manager notification best-effort.
	CreateInterview(ctx context.Context, iv *Interview, notify bool) error
	ListInterviews(ctx context.Context) ([]Interview, error)
	UpdateInterview(ctx context.Context, iv *Interview, notify bool) error
	DeleteInterview(ctx context.Context, id string) error
}
