package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"awkwardturtle/api/internal/models"
)

var ErrMessageNotFound = errors.New("message not found")

type MessageRepository interface {
	Create(ctx context.Context, senderID, receiverID int64, content string) (models.Message, error)
	GetByID(ctx context.Context, id int64) (models.Message, error)
	ListByReceiver(ctx context.Context, userID int64) ([]models.Message, error)
	ListBySender(ctx context.Context, userID int64) ([]models.Message, error)
	MarkRead(ctx context.Context, id int64, readAt time.Time) (models.Message, error)
}

type PostgresMessageRepository struct {
	db Querier
}

func NewMessageRepository(db Querier) *PostgresMessageRepository {
	return &PostgresMessageRepository{db: db}
}

const messageColumns = `id, sender_id, receiver_id, content, is_read, read_at, created_at, updated_at`

func (r *PostgresMessageRepository) Create(ctx context.Context, senderID, receiverID int64, content string) (models.Message, error) {
	const query = `
		INSERT INTO messages (sender_id, receiver_id, content, is_read, created_at, updated_at)
		VALUES ($1, $2, $3, FALSE, NOW(), NOW())
		RETURNING ` + messageColumns

	return scanMessage(r.db.QueryRow(ctx, query, senderID, receiverID, content))
}

func (r *PostgresMessageRepository) GetByID(ctx context.Context, id int64) (models.Message, error) {
	const query = `SELECT ` + messageColumns + ` FROM messages WHERE id = $1`

	msg, err := scanMessage(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Message{}, ErrMessageNotFound
		}
		return models.Message{}, err
	}
	return msg, nil
}

func (r *PostgresMessageRepository) ListByReceiver(ctx context.Context, userID int64) ([]models.Message, error) {
	const query = `
		SELECT ` + messageColumns + `
		FROM messages
		WHERE receiver_id = $1
		ORDER BY created_at DESC
	`
	return r.list(ctx, query, userID)
}

func (r *PostgresMessageRepository) ListBySender(ctx context.Context, userID int64) ([]models.Message, error) {
	const query = `
		SELECT ` + messageColumns + `
		FROM messages
		WHERE sender_id = $1
		ORDER BY created_at DESC
	`
	return r.list(ctx, query, userID)
}

func (r *PostgresMessageRepository) MarkRead(ctx context.Context, id int64, readAt time.Time) (models.Message, error) {
	const query = `
		UPDATE messages
		SET is_read = TRUE, read_at = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + messageColumns

	msg, err := scanMessage(r.db.QueryRow(ctx, query, id, readAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Message{}, ErrMessageNotFound
		}
		return models.Message{}, err
	}
	return msg, nil
}

func (r *PostgresMessageRepository) list(ctx context.Context, query string, userID int64) ([]models.Message, error) {
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]models.Message, 0)
	for rows.Next() {
		var msg models.Message
		if err := rows.Scan(
			&msg.ID,
			&msg.SenderID,
			&msg.ReceiverID,
			&msg.Content,
			&msg.IsRead,
			&msg.ReadAt,
			&msg.CreatedAt,
			&msg.UpdatedAt,
		); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

func scanMessage(row pgx.Row) (models.Message, error) {
	var msg models.Message
	err := row.Scan(
		&msg.ID,
		&msg.SenderID,
		&msg.ReceiverID,
		&msg.Content,
		&msg.IsRead,
		&msg.ReadAt,
		&msg.CreatedAt,
		&msg.UpdatedAt,
	)
	return msg, err
}
