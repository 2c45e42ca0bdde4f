package domain

import (
	"context"
	"time"
)

// Position status constants
const (
	PositionStatusOpen   = "Open"
	PositionStatusClosed = "Closed"
)

// Position is a job posting owned by the hiring actor who created it.
// It is referenced, never owned, by applications and submissions.
type Position struct {
	ID             string    `json:"id"`
	Title          string    `json:"title" validate:"required"`
	Department     string    `json:"department"`
	Project        string    `json:"project"`
	Description    string    `json:"description"`
	RequiredSkills []string  `json:"required_skills"`
	Location       string    `json:"location"`
	Openings       int       `json:"openings"`
	Status         string    `json:"status"` // Open | Closed
	CreatedBy      string    `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
}

type PositionRepository interface {
	Create(ctx context.Context, pos *Position) error
	GetByID(ctx context.Context, id string) (*Position, error)
	// GetByTitle returns the first position matching an exact title. Used by
	// the interview notification dispatcher, which joins on the free-text
	// job position string.
	GetByTitle(ctx context.Context, title string) (*Position, error)
	FetchOpen(ctx context.Context) ([]Position, error)
	FetchByCreator(ctx context.Context, userID string) ([]Position, error)
	Update(ctx context.Context, pos *Position) error
	Delete(ctx context.Context, id, createdBy string) error
}

type PositionUsecase interface {
	CreatePosition(ctx context.Context, userID string, pos *Position) error
	ListOpenPositions(ctx context.Context) ([]Position, error)
	ListMyPositions(ctx context.Context, userID string) ([]Position, error)
	UpdatePosition(ctx context.Context, userID string, pos *Position) error
	DeletePosition(ctx context.Context, userID, id string) error
}
