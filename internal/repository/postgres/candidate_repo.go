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

type candidateRepo struct {
	db *pgxpool.Pool
}

// NewCandidateRepository creates a new candidate repository
func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepo{db: db}
}

const candidateColumns = `id, first_name, last_name, email, phone, position, agency, recruiter, company, hiring_manager, status, onboarding_status, resume_path, resume_original_name, submitted_by, created_at`

func scanCandidate(row pgx.Row) (*domain.Candidate, error) {
	var c domain.Candidate
	err := row.Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.Position,
		&c.Agency, &c.Recruiter, &c.Company, &c.HiringManager, &c.Status,
		&c.OnboardingStatus, &c.ResumePath, &c.ResumeOriginalName,
		&c.SubmittedBy, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *candidateRepo) Create(ctx context.Context, cand *domain.Candidate) error {
	query := `
		INSERT INTO candidates (id, first_name, last_name, email, phone, position, agency, recruiter, company, hiring_manager, status, onboarding_status, resume_path, resume_original_name, submitted_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	if cand.ID == "" {
		cand.ID = uuid.NewString()
	}
	if cand.Status == "" {
		cand.Status = domain.CandidateStatusSubmitted
	}
	if cand.OnboardingStatus == "" {
		cand.OnboardingStatus = domain.OnboardingPending
	}
	if cand.CreatedAt.IsZero() {
		cand.CreatedAt = time.Now()
	}

	_, err := r.db.Exec(ctx, query,
		cand.ID, cand.FirstName, cand.LastName, cand.Email, cand.Phone,
		cand.Position, cand.Agency, cand.Recruiter, cand.Company,
		cand.HiringManager, cand.Status, cand.OnboardingStatus,
		cand.ResumePath, cand.ResumeOriginalName, cand.SubmittedBy,
		cand.CreatedAt,
	)
	return err
}

func (r *candidateRepo) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1`
	return scanCandidate(r.db.QueryRow(ctx, query, id))
}

func (r *candidateRepo) FetchByEmail(ctx context.Context, email string) ([]domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE email = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var candidates []domain.Candidate
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, *c)
	}
	return candidates, rows.Err()
}

func (r *candidateRepo) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE candidates SET status = $2 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *candidateRepo) UpdateStatusAndOnboarding(ctx context.Context, id, status, onboarding string) error {
	query := `UPDATE candidates SET status = $2, onboarding_status = $3 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status, onboarding)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *candidateRepo) SetOnboardingStatus(ctx context.Context, id, onboarding string) error {
	query := `UPDATE candidates SET onboarding_status = $2 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, onboarding)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
