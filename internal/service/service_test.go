package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"awkwardturtle/api/internal/config"
	"awkwardturtle/api/internal/models"
	"awkwardturtle/api/internal/repository/memory"
)

// --- shared test fixtures ---

func testConfig() *config.AppConfig {
	return &config.AppConfig{
		Environment: "test",
		Security: config.SecurityConfig{
			JWTSecret:      "test-secret",
			AccessTokenTTL: 24 * time.Hour,
			CookieName:     "access_token",
		},
		Notifications: config.NotificationsConfig{
			UnreadCacheTTL: time.Minute,
			PurgeRetention: 30 * 24 * time.Hour,
		},
	}
}

type enqueued struct {
	OwnerID   int64
	Type      models.NotificationType
	Title     string
	Body      string
	RelatedID *int64
}

// notifierRecorder captures Enqueue calls for assertions.
type notifierRecorder struct {
	events []enqueued
}

func (r *notifierRecorder) Enqueue(_ context.Context, ownerID int64, ntype models.NotificationType, title, body string, relatedID *int64) {
	r.events = append(r.events, enqueued{
		OwnerID:   ownerID,
		Type:      ntype,
		Title:     title,
		Body:      body,
		RelatedID: relatedID,
	})
}

type fixture struct {
	users    *memory.UserRepository
	friends  *memory.FriendshipRepository
	messages *memory.MessageRepository
	notifier *notifierRecorder

	auth    *AuthService
	friend  *FriendService
	message *MessageService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cfg := testConfig()
	logger := zerolog.Nop()

	users := memory.NewUserRepository()
	friends := memory.NewFriendshipRepository(users)
	messages := memory.NewMessageRepository()
	notifier := &notifierRecorder{}

	return &fixture{
		users:    users,
		friends:  friends,
		messages: messages,
		notifier: notifier,
		auth:     NewAuthService(users, cfg, logger),
		friend:   NewFriendService(users, friends, notifier, logger),
		message:  NewMessageService(users, messages, notifier, logger),
	}
}

func (f *fixture) register(t *testing.T, username string) models.User {
	t.Helper()

	user, err := f.auth.Register(context.Background(), username, "password123")
	if err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
	return user
}
