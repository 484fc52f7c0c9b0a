package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"awkwardturtle/api/internal/apperr"
	"awkwardturtle/api/internal/config"
	"awkwardturtle/api/internal/models"
	"awkwardturtle/api/internal/repository"
)

type NotificationService struct {
	notifications repository.NotificationRepository
	cache         *redis.Client
	cfg           *config.AppConfig
	log           zerolog.Logger
}

func NewNotificationService(
	notifications repository.NotificationRepository,
	cache *redis.Client,
	cfg *config.AppConfig,
	log zerolog.Logger,
) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		cache:         cache,
		cfg:           cfg,
		log:           log,
	}
}

// Enqueue records a notification for ownerID. Failures are logged and
// swallowed so the triggering action is never rolled back.
func (s *NotificationService) Enqueue(ctx context.Context, ownerID int64, ntype models.NotificationType, title, body string, relatedID *int64) {
	n := models.Notification{
		UserID:    ownerID,
		Type:      ntype,
		Title:     title,
		RelatedID: relatedID,
	}
	if body != "" {
		n.Message = &body
	}

	if _, err := s.notifications.Create(ctx, n); err != nil {
		s.log.Warn().Err(err).
			Int64("owner_id", ownerID).
			Str("type", string(ntype)).
			Msg("enqueue notification failed")
		return
	}

	s.invalidateUnread(ctx, ownerID)
}

func (s *NotificationService) List(ctx context.Context, owner models.User) ([]models.Notification, int64, error) {
	notifications, err := s.notifications.ListByOwner(ctx, owner.ID)
	if err != nil {
		return nil, 0, err
	}

	unread := s.UnreadCount(ctx, owner.ID)
	return notifications, unread, nil
}

func (s *NotificationService) Get(ctx context.Context, owner models.User, id int64) (models.Notification, error) {
	n, err := s.notifications.GetByOwner(ctx, id, owner.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return models.Notification{}, apperr.NotFound("Notification not found")
		}
		return models.Notification{}, err
	}
	return n, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, owner models.User, id int64) error {
	if err := s.notifications.MarkRead(ctx, id, owner.ID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return apperr.NotFound("Notification not found")
		}
		return err
	}

	s.invalidateUnread(ctx, owner.ID)
	return nil
}

func (s *NotificationService) DeleteAll(ctx context.Context, owner models.User) error {
	if err := s.notifications.DeleteByOwner(ctx, owner.ID); err != nil {
		return err
	}

	s.invalidateUnread(ctx, owner.ID)
	return nil
}

// UnreadCount serves the owner's unread total from the cache, falling
// back to SQL on a miss. The count is advisory; cache trouble degrades
// to a direct query, never to an error.
func (s *NotificationService) UnreadCount(ctx context.Context, ownerID int64) int64 {
	key := unreadKey(ownerID)

	if s.cache != nil {
		count, err := s.cache.Get(ctx, key).Int64()
		if err == nil {
			return count
		}
		if !errors.Is(err, redis.Nil) {
			s.log.Debug().Err(err).Msg("unread cache read failed")
		}
	}

	count, err := s.notifications.CountUnread(ctx, ownerID)
	if err != nil {
		s.log.Warn().Err(err).Int64("owner_id", ownerID).Msg("count unread failed")
		return 0
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, count, s.cfg.Notifications.UnreadCacheTTL).Err(); err != nil {
			s.log.Debug().Err(err).Msg("unread cache write failed")
		}
	}
	return count
}

// PurgeRead deletes read notifications older than retention. Invoked by
// the scheduler.
func (s *NotificationService) PurgeRead(ctx context.Context, retention time.Duration) (int64, error) {
	return s.notifications.DeleteReadBefore(ctx, time.Now().Add(-retention))
}

func (s *NotificationService) invalidateUnread(ctx context.Context, ownerID int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, unreadKey(ownerID)).Err(); err != nil {
		s.log.Debug().Err(err).Int64("owner_id", ownerID).Msg("unread cache invalidate failed")
	}
}

func unreadKey(ownerID int64) string {
	return fmt.Sprintf("notif:unread:%d", ownerID)
}
