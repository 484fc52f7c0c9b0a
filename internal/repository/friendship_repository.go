package repository

import (
	"context"
	"errors"
	"fmt"

	"awkwardturtle/api/internal/models"
)

var (
	ErrFriendshipNotFound = errors.New("friendship not found")
	ErrDuplicateEdge      = errors.New("friendship already exists")
)

type FriendshipRepository interface {
	Create(ctx context.Context, userA, userB int64) error
	Delete(ctx context.Context, userA, userB int64) error
	ListUsernames(ctx context.Context, userID int64) ([]string, error)
}

type PostgresFriendshipRepository struct {
	db Querier
}

func NewFriendshipRepository(db Querier) *PostgresFriendshipRepository {
	return &PostgresFriendshipRepository{db: db}
}

// Create inserts the edge in its canonical (lo, hi) form. The check and
// insert run in one transaction; the unique constraint is the backstop
// for a concurrent add from the other side.
func (r *PostgresFriendshipRepository) Create(ctx context.Context, userA, userB int64) error {
	lo, hi := models.NormalizePair(userA, userB)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}

	const existsQuery = `
		SELECT EXISTS (SELECT 1 FROM friendships WHERE user_lo = $1 AND user_hi = $2)
	`
	var exists bool
	if err := tx.QueryRow(ctx, existsQuery, lo, hi).Scan(&exists); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	if exists {
		_ = tx.Rollback(ctx)
		return ErrDuplicateEdge
	}

	const insertQuery = `
		INSERT INTO friendships (user_lo, user_hi, created_at)
		VALUES ($1, $2, NOW())
	`
	if _, err := tx.Exec(ctx, insertQuery, lo, hi); err != nil {
		_ = tx.Rollback(ctx)
		if isUniqueViolation(err) {
			return ErrDuplicateEdge
		}
		return err
	}

	return tx.Commit(ctx)
}

// Delete removes the single canonical row, which makes the edge vanish
// for both endpoints at once.
func (r *PostgresFriendshipRepository) Delete(ctx context.Context, userA, userB int64) error {
	lo, hi := models.NormalizePair(userA, userB)

	const query = `DELETE FROM friendships WHERE user_lo = $1 AND user_hi = $2`
	cmd, err := r.db.Exec(ctx, query, lo, hi)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrFriendshipNotFound
	}
	return nil
}

// ListUsernames resolves every friend of userID with one either-column
// query over the normalized edge table.
func (r *PostgresFriendshipRepository) ListUsernames(ctx context.Context, userID int64) ([]string, error) {
	const query = `
		SELECT u.username
		FROM friendships f
		JOIN users u ON u.id = CASE WHEN f.user_lo = $1 THEN f.user_hi ELSE f.user_lo END
		WHERE f.user_lo = $1 OR f.user_hi = $1
		ORDER BY f.created_at
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	usernames := make([]string, 0)
	for rows.Next() {
		var username string
		if err := rows.Scan(&username); err != nil {
			return nil, err
		}
		usernames = append(usernames, username)
	}
	return usernames, rows.Err()
}
