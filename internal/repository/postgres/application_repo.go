package postgres

import (
	"context"
	"errors"
	"time"

	"go-pipeline-tracker/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new direct-application repository
func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

const applicationColumns = `id, job_id, position, candidate_name, email, phone, resume_url, status, onboarding_status, created_by, applied_at`

func scanApplication(row pgx.Row) (*domain.DirectApplication, error) {
	var app domain.DirectApplication
	err := row.Scan(
		&app.ID, &app.JobID, &app.Position, &app.CandidateName, &app.Email,
		&app.Phone, &app.ResumeURL, &app.Status, &app.OnboardingStatus,
		&app.CreatedBy, &app.AppliedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

// Create inserts a new direct application
func (r *applicationRepo) Create(ctx context.Context, app *domain.DirectApplication) error {
	query := `
		INSERT INTO applications (id, job_id, position, candidate_name, email, phone, resume_url, status, onboarding_status, created_by, applied_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	if app.Status == "" {
		app.Status = domain.DirectStatusApplied
	}
	if app.OnboardingStatus == "" {
		app.OnboardingStatus = domain.OnboardingPending
	}
	if app.AppliedAt.IsZero() {
		app.AppliedAt = time.Now()
	}

	_, err := r.db.Exec(ctx, query,
		app.ID, app.JobID, app.Position, app.CandidateName, app.Email,
		app.Phone, app.ResumeURL, app.Status, app.OnboardingStatus,
		app.CreatedBy, app.AppliedAt,
	)
	return err
}

func (r *applicationRepo) GetByID(ctx context.Context, id string) (*domain.DirectApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`
	return scanApplication(r.db.QueryRow(ctx, query, id))
}

func (r *applicationRepo) Fetch(ctx context.Context) ([]domain.DirectApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications ORDER BY applied_at DESC`
	return r.fetch(ctx, query)
}

func (r *applicationRepo) FetchByStatus(ctx context.Context, status string) ([]domain.DirectApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE status = $1 ORDER BY applied_at DESC`
	return r.fetch(ctx, query, status)
}

func (r *applicationRepo) FetchByEmail(ctx context.Context, email string) ([]domain.DirectApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE email = $1 ORDER BY applied_at DESC`
	return r.fetch(ctx, query, email)
}

func (r *applicationRepo) FetchByCreator(ctx context.Context, userID string) ([]domain.DirectApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE created_by = $1 ORDER BY applied_at DESC`
	return r.fetch(ctx, query, userID)
}

func (r *applicationRepo) fetch(ctx context.Context, query string, args ...any) ([]domain.DirectApplication, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.DirectApplication
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		applications = append(applications, *app)
	}
	return applications, rows.Err()
}

// UpdateStatus writes a new status in a single conditional update
func (r *applicationRepo) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE applications SET status = $2 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatusAndOnboarding writes status and onboarding flag in one statement
func (r *applicationRepo) UpdateStatusAndOnboarding(ctx context.Context, id, status, onboarding string) error {
	query := `UPDATE applications SET status = $2, onboarding_status = $3 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status, onboarding)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *applicationRepo) SetOnboardingStatus(ctx context.Context, id, onboarding string) error {
	query := `UPDATE applications SET onboarding_status = $2 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, onboarding)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
