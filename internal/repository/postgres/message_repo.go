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

type messageRepo struct {
	db *pgxpool.Pool
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *pgxpool.Pool) domain.MessageRepository {
	return &messageRepo{db: db}
}

const messageColumns = `id, recipient, sender, subject, body, status, related_id, created_at`

func scanMessage(row pgx.Row) (*domain.Message, error) {
	var m domain.Message
	err := row.Scan(
		&m.ID, &m.To, &m.From, &m.Subject, &m.Body, &m.Status,
		&m.RelatedID, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *messageRepo) Create(ctx context.Context, msg *domain.Message) error {
	query := `
		INSERT INTO messages (id, recipient, sender, subject, body, status, related_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.Status == "" {
		msg.Status = domain.MessageStatusUnread
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}

	_, err := r.db.Exec(ctx, query,
		msg.ID, msg.To, msg.From, msg.Subject, msg.Body, msg.Status,
		msg.RelatedID, msg.CreatedAt,
	)
	return err
}

func (r *messageRepo) FetchByRecipient(ctx context.Context, email string, includeSystem bool) ([]domain.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages WHERE recipient = $1 ORDER BY created_at DESC`
	args := []any{email}
	if includeSystem {
		query = `SELECT ` + messageColumns + ` FROM messages WHERE recipient = $1 OR recipient = $2 ORDER BY created_at DESC`
		args = append(args, "System")
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, *m)
	}
	return messages, rows.Err()
}

func (r *messageRepo) UpdateStatus(ctx context.Context, id, status string) (*domain.Message, error) {
	query := `UPDATE messages SET status = $2 WHERE id = $1 RETURNING ` + messageColumns
	return scanMessage(r.db.QueryRow(ctx, query, id, status))
}
