package postgres

import (
	"context"
	"time"

	"go-pipeline-tracker/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type submissionRepo struct {
	db *pgxpool.Pool
}

// NewSubmissionRepository creates a new submission repository
func NewSubmissionRepository(db *pgxpool.Pool) domain.SubmissionRepository {
	return &submissionRepo{db: db}
}

func (r *submissionRepo) Create(ctx context.Context, sub *domain.Submission) error {
	query := `
		INSERT INTO submissions (id, candidate_id, position_id, submitted_by, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now()
	}

	_, err := r.db.Exec(ctx, query,
		sub.ID, sub.CandidateID, sub.PositionID, sub.SubmittedBy, sub.CreatedAt,
	)
	return err
}

// submissionJoinQuery LEFT JOINs both referenced records so callers can see
// and drop orphaned joins instead of the database hiding them.
const submissionJoinQuery = `
	SELECT
		s.id, s.candidate_id, s.position_id, s.submitted_by, s.created_at,
		c.id, c.first_name, c.last_name, c.email, c.phone, c.position,
		c.agency, c.recruiter, c.company, c.hiring_manager, c.status,
		c.onboarding_status, c.resume_path, c.resume_original_name,
		c.submitted_by, c.created_at,
		p.id, p.title, p.department, p.project, p.description,
		p.required_skills, p.location, p.openings, p.status, p.created_by,
		p.created_at
	FROM submissions s
	LEFT JOIN candidates c ON s.candidate_id = c.id
	LEFT JOIN positions p ON s.position_id = p.id`

func (r *submissionRepo) FetchWithRefs(ctx context.Context) ([]domain.SubmissionWithRefs, error) {
	return r.fetchWithRefs(ctx, submissionJoinQuery+` ORDER BY s.created_at DESC`)
}

func (r *submissionRepo) FetchByRecruiterWithRefs(ctx context.Context, userID string) ([]domain.SubmissionWithRefs, error) {
	return r.fetchWithRefs(ctx, submissionJoinQuery+` WHERE s.submitted_by = $1 ORDER BY s.created_at DESC`, userID)
}

func (r *submissionRepo) fetchWithRefs(ctx context.Context, query string, args ...any) ([]domain.SubmissionWithRefs, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []domain.SubmissionWithRefs
	for rows.Next() {
		var (
			sub domain.SubmissionWithRefs

			candID        *string
			candFirst     *string
			candLast      *string
			candEmail     *string
			candPhone     *string
			candPosition  *string
			candAgency    *string
			candRecruiter *string
			candCompany   *string
			candManager   *string
			candStatus    *string
			candOnboard   *string
			candResume    *string
			candResName   *string
			candSubmitter *string
			candCreated   *time.Time

			posID       *string
			posTitle    *string
			posDept     *string
			posProject  *string
			posDesc     *string
			posSkills   []string
			posLocation *string
			posOpenings *int
			posStatus   *string
			posCreator  *string
			posCreated  *time.Time
		)

		err := rows.Scan(
			&sub.ID, &sub.CandidateID, &sub.PositionID, &sub.SubmittedBy, &sub.CreatedAt,
			&candID, &candFirst, &candLast, &candEmail, &candPhone, &candPosition,
			&candAgency, &candRecruiter, &candCompany, &candManager, &candStatus,
			&candOnboard, &candResume, &candResName, &candSubmitter, &candCreated,
			&posID, &posTitle, &posDept, &posProject, &posDesc,
			&posSkills, &posLocation, &posOpenings, &posStatus, &posCreator,
			&posCreated,
		)
		if err != nil {
			return nil, err
		}

		if candID != nil {
			sub.Candidate = &domain.Candidate{
				ID:                 *candID,
				FirstName:          deref(candFirst),
				LastName:           deref(candLast),
				Email:              deref(candEmail),
				Phone:              deref(candPhone),
				Position:           deref(candPosition),
				Agency:             deref(candAgency),
				Recruiter:          deref(candRecruiter),
				Company:            deref(candCompany),
				HiringManager:      deref(candManager),
				Status:             deref(candStatus),
				OnboardingStatus:   deref(candOnboard),
				ResumePath:         deref(candResume),
				ResumeOriginalName: deref(candResName),
				SubmittedBy:        deref(candSubmitter),
			}
			if candCreated != nil {
				sub.Candidate.CreatedAt = *candCreated
			}
		}

		if posID != nil {
			sub.Position = &domain.Position{
				ID:             *posID,
				Title:          deref(posTitle),
				Department:     deref(posDept),
				Project:        deref(posProject),
				Description:    deref(posDesc),
				RequiredSkills: posSkills,
				Location:       deref(posLocation),
				Status:         deref(posStatus),
				CreatedBy:      deref(posCreator),
			}
			if posOpenings != nil {
				sub.Position.Openings = *posOpenings
			}
			if posCreated != nil {
				sub.Position.CreatedAt = *posCreated
			}
		}

		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

func (r *submissionRepo) Delete(ctx context.Context, id, submittedBy string) error {
	query := `DELETE FROM submissions WHERE id = $1 AND submitted_by = $2`
	result, err := r.db.Exec(ctx, query, id, submittedBy)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
