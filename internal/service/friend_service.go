package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"awkwardturtle/api/internal/apperr"
	"awkwardturtle/api/internal/models"
	"awkwardturtle/api/internal/repository"
)

type FriendService struct {
	users    repository.UserRepository
	friends  repository.FriendshipRepository
	notifier Notifier
	log      zerolog.Logger
}

func NewFriendService(
	users repository.UserRepository,
	friends repository.FriendshipRepository,
	notifier Notifier,
	log zerolog.Logger,
) *FriendService {
	return &FriendService{
		users:    users,
		friends:  friends,
		notifier: notifier,
		log:      log,
	}
}

// Add creates the edge between actor and the named user. The add is
// unilateral; the target just gets a friend_request notification.
func (s *FriendService) Add(ctx context.Context, actor models.User, targetUsername string) error {
	target, err := s.users.FindByUsername(ctx, targetUsername)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return apperr.NotFound("User '%s' not found", targetUsername)
		}
		return err
	}

	if target.ID == actor.ID {
		return apperr.InvalidOperation("You cannot add yourself as a friend")
	}

	if err := s.friends.Create(ctx, actor.ID, target.ID); err != nil {
		if errors.Is(err, repository.ErrDuplicateEdge) {
			return apperr.Conflict("User '%s' is already your friend", targetUsername)
		}
		return err
	}

	actorID := actor.ID
	s.notifier.Enqueue(ctx, target.ID, models.NotificationFriendRequest,
		"Friend Request", fmt.Sprintf("%s added you as a friend", actor.Username), &actorID)

	s.log.Info().
		Str("actor", actor.Username).
		Str("target", target.Username).
		Msg("friendship added")
	return nil
}

func (s *FriendService) Remove(ctx context.Context, actor models.User, targetUsername string) error {
	target, err := s.users.FindByUsername(ctx, targetUsername)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return apperr.NotFound("User '%s' not found", targetUsername)
		}
		return err
	}

	if err := s.friends.Delete(ctx, actor.ID, target.ID); err != nil {
		if errors.Is(err, repository.ErrFriendshipNotFound) {
			return apperr.InvalidOperation("User '%s' is not your friend", targetUsername)
		}
		return err
	}

	s.log.Info().
		Str("actor", actor.Username).
		Str("target", target.Username).
		Msg("friendship removed")
	return nil
}

func (s *FriendService) List(ctx context.Context, actor models.User) ([]string, error) {
	return s.friends.ListUsernames(ctx, actor.ID)
}
