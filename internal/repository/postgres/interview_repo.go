package postgres

import (
	"context"
	"time"

	"go-pipeline-tracker/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type interviewRepo struct {
	db *pgxpool.Pool
}

// NewInterviewRepository creates a new interview repository
func NewInterviewRepository(db *pgxpool.Pool) domain.InterviewRepository {
	return &interviewRepo{db: db}
}

const interviewColumns = `id, candidate_first_name, candidate_last_name, email, job_position, interviewer_name, interview_date, interview_time, interview_type, status, result, rating, feedback, resume, created_at`

func (r *interviewRepo) Create(ctx context.Context, iv *domain.Interview) error {
	query := `
		INSERT INTO interviews (id, candidate_first_name, candidate_last_name, email, job_position, interviewer_name, interview_date, interview_time, interview_type, status, result, rating, feedback, resume, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	if iv.ID == "" {
		iv.ID = uuid.NewString()
	}
	if iv.Status == "" {
		iv.Status = "Scheduled"
	}
	if iv.CreatedAt.IsZero() {
		iv.CreatedAt = time.Now()
	}

	_, err := r.db.Exec(ctx, query,
		iv.ID, iv.CandidateFirstName, iv.CandidateLastName, iv.Email,
		iv.JobPosition, iv.InterviewerName, iv.Date, iv.Time, iv.Type,
		iv.Status, iv.Result, iv.Rating, iv.Feedback, iv.Resume, iv.CreatedAt,
	)
	return err
}

func (r *interviewRepo) Fetch(ctx context.Context) ([]domain.Interview, error) {
	query := `SELECT ` + interviewColumns + ` FROM interviews ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var interviews []domain.Interview
	for rows.Next() {
		var iv domain.Interview
		err := rows.Scan(
			&iv.ID, &iv.CandidateFirstName, &iv.CandidateLastName, &iv.Email,
			&iv.JobPosition, &iv.InterviewerName, &iv.Date, &iv.Time, &iv.Type,
			&iv.Status, &iv.Result, &iv.Rating, &iv.Feedback, &iv.Resume,
			&iv.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		interviews = append(interviews, iv)
	}
	return interviews, rows.Err()
}

func (r *interviewRepo) Update(ctx context.Context, iv *domain.Interview) error {
	query := `
		UPDATE interviews
		SET candidate_first_name = $2, candidate_last_name = $3, email = $4,
		    job_position = $5, interviewer_name = $6, interview_date = $7,
		    interview_time = $8, interview_type = $9, status = $10,
		    result = $11, rating = $12, feedback = $13, resume = $14
		WHERE id = $1`

	result, err := r.db.Exec(ctx, query,
		iv.ID, iv.CandidateFirstName, iv.CandidateLastName, iv.Email,
		iv.JobPosition, iv.InterviewerName, iv.Date, iv.Time, iv.Type,
		iv.Status, iv.Result, iv.Rating, iv.Feedback, iv.Resume,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *interviewRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM interviews WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
