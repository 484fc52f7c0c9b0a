// Package memory provides in-memory repository implementations with
// the same semantics as the Postgres ones. They back tests and local
// runs without a database.
package memory

import (
	"context"
	"sync"
	"time"

	"awkwardturtle/api/internal/models"
	"awkwardturtle/api/internal/repository"
)

var (
	_ repository.UserRepository         = (*UserRepository)(nil)
	_ repository.FriendshipRepository   = (*FriendshipRepository)(nil)
	_ repository.MessageRepository      = (*MessageRepository)(nil)
	_ repository.NotificationRepository = (*NotificationRepository)(nil)
)

type UserRepository struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]models.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[int64]models.User)}
}

func (r *UserRepository) Create(_ context.Context, username string, passwordHash string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == username {
			return models.User{}, repository.ErrDuplicateUsername
		}
	}

	r.nextID++
	now := time.Now()
	user := models.User{
		ID:           r.nextID,
		Username:     username,
		PasswordHash: passwordHash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.users[user.ID] = user
	return user, nil
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, repository.ErrUserNotFound
}

func (r *UserRepository) GetByID(_ context.Context, id int64) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return models.User{}, repository.ErrUserNotFound
	}
	return user, nil
}

func (r *UserRepository) UpdateActive(_ context.Context, id int64, active bool) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return models.User{}, repository.ErrUserNotFound
	}
	user.IsActive = active
	user.UpdatedAt = time.Now()
	r.users[id] = user
	return user, nil
}

type FriendshipRepository struct {
	mu    sync.Mutex
	users *UserRepository
	edges []models.Friendship
}

func NewFriendshipRepository(users *UserRepository) *FriendshipRepository {
	return &FriendshipRepository{users: users}
}

func (r *FriendshipRepository) Create(_ context.Context, userA, userB int64) error {
	lo, hi := models.NormalizePair(userA, userB)

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.edges {
		if e.UserLo == lo && e.UserHi == hi {
			return repository.ErrDuplicateEdge
		}
	}
	r.edges = append(r.edges, models.Friendship{UserLo: lo, UserHi: hi, CreatedAt: time.Now()})
	return nil
}

func (r *FriendshipRepository) Delete(_ context.Context, userA, userB int64) error {
	lo, hi := models.NormalizePair(userA, userB)

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.edges {
		if e.UserLo == lo && e.UserHi == hi {
			r.edges = append(r.edges[:i], r.edges[i+1:]...)
			return nil
		}
	}
	return repository.ErrFriendshipNotFound
}

func (r *FriendshipRepository) ListUsernames(ctx context.Context, userID int64) ([]string, error) {
	r.mu.Lock()
	edges := make([]models.Friendship, len(r.edges))
	copy(edges, r.edges)
	r.mu.Unlock()

	usernames := make([]string, 0)
	for _, e := range edges {
		var otherID int64
		switch userID {
		case e.UserLo:
			otherID = e.UserHi
		case e.UserHi:
			otherID = e.UserLo
		default:
			continue
		}

		other, err := r.users.GetByID(ctx, otherID)
		if err != nil {
			return nil, err
		}
		usernames = append(usernames, other.Username)
	}
	return usernames, nil
}

type MessageRepository struct {
	mu       sync.Mutex
	nextID   int64
	messages []models.Message
}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{}
}

func (r *MessageRepository) Create(_ context.Context, senderID, receiverID int64, content string) (models.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	now := time.Now()
	msg := models.Message{
		ID:         r.nextID,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	r.messages = append(r.messages, msg)
	return msg, nil
}

func (r *MessageRepository) GetByID(_ context.Context, id int64) (models.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range r.messages {
		if m.ID == id {
			return m, nil
		}
	}
	return models.Message{}, repository.ErrMessageNotFound
}

func (r *MessageRepository) ListByReceiver(_ context.Context, userID int64) ([]models.Message, error) {
	return r.listWhere(func(m models.Message) bool { return m.ReceiverID == userID }), nil
}

func (r *MessageRepository) ListBySender(_ context.Context, userID int64) ([]models.Message, error) {
	return r.listWhere(func(m models.Message) bool { return m.SenderID == userID }), nil
}

// listWhere returns matches newest first.
func (r *MessageRepository) listWhere(match func(models.Message) bool) []models.Message {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Message, 0)
	for i := len(r.messages) - 1; i >= 0; i-- {
		if match(r.messages[i]) {
			out = append(out, r.messages[i])
		}
	}
	return out
}

func (r *MessageRepository) MarkRead(_ context.Context, id int64, readAt time.Time) (models.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, m := range r.messages {
		if m.ID == id {
			at := readAt
			r.messages[i].IsRead = true
			r.messages[i].ReadAt = &at
			r.messages[i].UpdatedAt = time.Now()
			return r.messages[i], nil
		}
	}
	return models.Message{}, repository.ErrMessageNotFound
}

type NotificationRepository struct {
	mu            sync.Mutex
	nextID        int64
	notifications []models.Notification
}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) Create(_ context.Context, n models.Notification) (models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	n.ID = r.nextID
	n.IsRead = false
	n.CreatedAt = time.Now()
	r.notifications = append(r.notifications, n)
	return n, nil
}

func (r *NotificationRepository) ListByOwner(_ context.Context, userID int64) ([]models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Notification, 0)
	for i := len(r.notifications) - 1; i >= 0; i-- {
		if r.notifications[i].UserID == userID {
			out = append(out, r.notifications[i])
		}
	}
	return out, nil
}

func (r *NotificationRepository) GetByOwner(_ context.Context, id, userID int64) (models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, n := range r.notifications {
		if n.ID == id && n.UserID == userID {
			return n, nil
		}
	}
	return models.Notification{}, repository.ErrNotificationNotFound
}

func (r *NotificationRepository) MarkRead(_ context.Context, id, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, n := range r.notifications {
		if n.ID == id && n.UserID == userID {
			r.notifications[i].IsRead = true
			return nil
		}
	}
	return repository.ErrNotificationNotFound
}

func (r *NotificationRepository) DeleteByOwner(_ context.Context, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.notifications[:0]
	for _, n := range r.notifications {
		if n.UserID != userID {
			kept = append(kept, n)
		}
	}
	r.notifications = kept
	return nil
}

func (r *NotificationRepository) CountUnread(_ context.Context, userID int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	for _, n := range r.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *NotificationRepository) DeleteReadBefore(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var purged int64
	kept := r.notifications[:0]
	for _, n := range r.notifications {
		if n.IsRead && n.CreatedAt.Before(cutoff) {
			purged++
			continue
		}
		kept = append(kept, n)
	}
	r.notifications = kept
	return purged, nil
}
