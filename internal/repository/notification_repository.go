package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"awkwardturtle/api/internal/models"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationRepository interface {
	Create(ctx context.Context, n models.Notification) (models.Notification, error)
	ListByOwner(ctx context.Context, userID int64) ([]models.Notification, error)
	GetByOwner(ctx context.Context, id, userID int64) (models.Notification, error)
	MarkRead(ctx context.Context, id, userID int64) error
	DeleteByOwner(ctx context.Context, userID int64) error
	CountUnread(ctx context.Context, userID int64) (int64, error)
	DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type PostgresNotificationRepository struct {
	db Querier
}

func NewNotificationRepository(db Querier) *PostgresNotificationRepository {
	return &PostgresNotificationRepository{db: db}
}

const notificationColumns = `id, user_id, notification_type, title, message, related_id, is_read, created_at`

func (r *PostgresNotificationRepository) Create(ctx context.Context, n models.Notification) (models.Notification, error) {
	const query = `
		INSERT INTO notifications (user_id, notification_type, title, message, related_id, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, FALSE, NOW())
		RETURNING ` + notificationColumns

	return scanNotification(r.db.QueryRow(ctx, query, n.UserID, n.Type, n.Title, n.Message, n.RelatedID))
}

func (r *PostgresNotificationRepository) ListByOwner(ctx context.Context, userID int64) ([]models.Notification, error) {
	const query = `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := make([]models.Notification, 0)
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(
			&n.ID,
			&n.UserID,
			&n.Type,
			&n.Title,
			&n.Message,
			&n.RelatedID,
			&n.IsRead,
			&n.CreatedAt,
		); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// GetByOwner looks up by id and owner in one predicate, so a foreign
// notification is indistinguishable from a missing one.
func (r *PostgresNotificationRepository) GetByOwner(ctx context.Context, id, userID int64) (models.Notification, error) {
	const query = `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE id = $1 AND user_id = $2
	`

	n, err := scanNotification(r.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Notification{}, ErrNotificationNotFound
		}
		return models.Notification{}, err
	}
	return n, nil
}

func (r *PostgresNotificationRepository) MarkRead(ctx context.Context, id, userID int64) error {
	const query = `
		UPDATE notifications SET is_read = TRUE
		WHERE id = $1 AND user_id = $2
	`
	cmd, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *PostgresNotificationRepository) DeleteByOwner(ctx context.Context, userID int64) error {
	const query = `DELETE FROM notifications WHERE user_id = $1`
	_, err := r.db.Exec(ctx, query, userID)
	return err
}

func (r *PostgresNotificationRepository) CountUnread(ctx context.Context, userID int64) (int64, error) {
	const query = `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = FALSE`

	var count int64
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresNotificationRepository) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	const query = `DELETE FROM notifications WHERE is_read = TRUE AND created_at < $1`

	cmd, err := r.db.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func scanNotification(row pgx.Row) (models.Notification, error) {
	var n models.Notification
	err := row.Scan(
		&n.ID,
		&n.UserID,
		&n.Type,
		&n.Title,
		&n.Message,
		&n.RelatedID,
		&n.IsRead,
		&n.CreatedAt,
	)
	return n, err
}
