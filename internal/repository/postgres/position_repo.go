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

type positionRepo struct {
	db *pgxpool.Pool
}

// NewPositionRepository creates a new position repository
func NewPositionRepository(db *pgxpool.Pool) domain.PositionRepository {
	return &positionRepo{db: db}
}

const positionColumns = `id, title, department, project, description, required_skills, location, openings, status, created_by, created_at`

func scanPosition(row pgx.Row) (*domain.Position, error) {
	var p domain.Position
	err := row.Scan(
		&p.ID, &p.Title, &p.Department, &p.Project, &p.Description,
		&p.RequiredSkills, &p.Location, &p.Openings, &p.Status,
		&p.CreatedBy, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *positionRepo) Create(ctx context.Context, pos *domain.Position) error {
	query := `
		INSERT INTO positions (id, title, department, project, description, required_skills, location, openings, status, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	if pos.ID == "" {
		pos.ID = uuid.NewString()
	}
	if pos.Status == "" {
		pos.Status = domain.PositionStatusOpen
	}
	if pos.Openings == 0 {
		pos.Openings = 1
	}
	if pos.RequiredSkills == nil {
		pos.RequiredSkills = []string{}
	}
	if pos.CreatedAt.IsZero() {
		pos.CreatedAt = time.Now()
	}

	_, err := r.db.Exec(ctx, query,
		pos.ID, pos.Title, pos.Department, pos.Project, pos.Description,
		pos.RequiredSkills, pos.Location, pos.Openings, pos.Status,
		pos.CreatedBy, pos.CreatedAt,
	)
	return err
}

func (r *positionRepo) GetByID(ctx context.Context, id string) (*domain.Position, error) {
	query := `SELECT ` + positionColumns + ` FROM positions WHERE id = $1`
	return scanPosition(r.db.QueryRow(ctx, query, id))
}

// GetByTitle returns the oldest position with an exact title match, mirroring
// the first-match behavior the notification dispatcher relies on.
func (r *positionRepo) GetByTitle(ctx context.Context, title string) (*domain.Position, error) {
	query := `SELECT ` + positionColumns + ` FROM positions WHERE title = $1 ORDER BY created_at ASC LIMIT 1`
	return scanPosition(r.db.QueryRow(ctx, query, title))
}

func (r *positionRepo) FetchOpen(ctx context.Context) ([]domain.Position, error) {
	query := `SELECT ` + positionColumns + ` FROM positions WHERE status = $1 ORDER BY created_at DESC`
	return r.fetch(ctx, query, domain.PositionStatusOpen)
}

func (r *positionRepo) FetchByCreator(ctx context.Context, userID string) ([]domain.Position, error) {
	query := `SELECT ` + positionColumns + ` FROM positions WHERE created_by = $1 ORDER BY created_at DESC`
	return r.fetch(ctx, query, userID)
}

func (r *positionRepo) fetch(ctx context.Context, query string, args ...any) ([]domain.Position, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var positions []domain.Position
	for rows.Next() {
		p, err := scanPosition(rows)
		if err != nil {
			return nil, err
		}
		positions = append(positions, *p)
	}
	return positions, rows.Err()
}

// Update rewrites the editable fields, scoped to the creator
func (r *positionRepo) Update(ctx context.Context, pos *domain.Position) error {
	query := `
		UPDATE positions
		SET title = $3, department = $4, project = $5, description = $6,
		    required_skills = $7, location = $8, openings = $9, status = $10
		WHERE id = $1 AND created_by = $2`

	result, err := r.db.Exec(ctx, query,
		pos.ID, pos.CreatedBy, pos.Title, pos.Department, pos.Project,
		pos.Description, pos.RequiredSkills, pos.Location, pos.Openings,
		pos.Status,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *positionRepo) Delete(ctx context.Context, id, createdBy string) error {
	query := `DELETE FROM positions WHERE id = $1 AND created_by = $2`
	result, err := r.db.Exec(ctx, query, id, createdBy)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
