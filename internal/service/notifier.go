package service

import (
	"context"

	"awkwardturtle/api/internal/models"
)

// Notifier is the producer side of the notification feed. Enqueue is
// fire-and-forget: it runs after the triggering action's primary write
// and can never undo it.
type Notifier interface {
	Enqueue(ctx context.Context, ownerID int64, ntype models.NotificationType, title, body string, relatedID *int64)
}
