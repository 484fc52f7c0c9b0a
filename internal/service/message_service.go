package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"awkwardturtle/api/internal/apperr"
	"awkwardturtle/api/internal/models"
	"awkwardturtle/api/internal/repository"
)

type MessageService struct {
	users    repository.UserRepository
	messages repository.MessageRepository
	notifier Notifier
	log      zerolog.Logger
}

func NewMessageService(
	users repository.UserRepository,
	messages repository.MessageRepository,
	notifier Notifier,
	log zerolog.Logger,
) *MessageService {
	return &MessageService{
		users:    users,
		messages: messages,
		notifier: notifier,
		log:      log,
	}
}

// Send appends a message and notifies the receiver. Self-messages are
// allowed; only recipient existence is checked.
func (s *MessageService) Send(ctx context.Context, sender models.User, receiverID int64, content string) (models.Message, error) {
	receiver, err := s.users.GetByID(ctx, receiverID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return models.Message{}, apperr.NotFound("Recipient not found")
		}
		return models.Message{}, err
	}

	msg, err := s.messages.Create(ctx, sender.ID, receiver.ID, content)
	if err != nil {
		return models.Message{}, err
	}

	msgID := msg.ID
	s.notifier.Enqueue(ctx, receiver.ID, models.NotificationNewMessage,
		"New Message", fmt.Sprintf("%s sent you a message", sender.Username), &msgID)

	return msg, nil
}

func (s *MessageService) Inbox(ctx context.Context, user models.User) ([]models.Message, error) {
	return s.messages.ListByReceiver(ctx, user.ID)
}

func (s *MessageService) Outbox(ctx context.Context, user models.User) ([]models.Message, error) {
	return s.messages.ListBySender(ctx, user.ID)
}

// MarkRead transitions a message to read and notifies the sender. Only
// the receiver may do this. Re-marking an already-read message re-runs
// the update and re-notifies, matching the original contract.
func (s *MessageService) MarkRead(ctx context.Context, actor models.User, messageID int64) (models.Message, error) {
	msg, err := s.messages.GetByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return models.Message{}, apperr.NotFound("Message not found")
		}
		return models.Message{}, err
	}

	if msg.ReceiverID != actor.ID {
		return models.Message{}, apperr.Forbidden("You can only mark your own messages as read")
	}

	msg, err = s.messages.MarkRead(ctx, messageID, time.Now())
	if err != nil {
		return models.Message{}, err
	}

	msgID := msg.ID
	s.notifier.Enqueue(ctx, msg.SenderID, models.NotificationMessageRead,
		"Message Read", fmt.Sprintf("%s read your message", actor.Username), &msgID)

	return msg, nil
}
