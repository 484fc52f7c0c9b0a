package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"awkwardturtle/api/internal/apperr"
	"awkwardturtle/api/internal/config"
	"awkwardturtle/api/internal/models"
	"awkwardturtle/api/internal/repository"
	"awkwardturtle/api/internal/security"
)

type AuthService struct {
	users repository.UserRepository
	cfg   *config.AppConfig
	log   zerolog.Logger
}

func NewAuthService(users repository.UserRepository, cfg *config.AppConfig, log zerolog.Logger) *AuthService {
	return &AuthService{
		users: users,
		cfg:   cfg,
		log:   log,
	}
}

// Register creates a new active user. Username matching is exact and
// case-sensitive.
func (s *AuthService) Register(ctx context.Context, username, password string) (models.User, error) {
	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return models.User{}, apperr.Conflict("Username already registered")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return models.User{}, err
	}

	passwordHash, err := security.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	user, err := s.users.Create(ctx, username, passwordHash)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return models.User{}, apperr.Conflict("Username already registered")
		}
		return models.User{}, err
	}

	s.log.Info().Str("username", user.Username).Int64("user_id", user.ID).Msg("user registered")
	return user, nil
}

// Login verifies credentials, flips the user active, and issues a
// session token. Unknown username and wrong password are deliberately
// indistinguishable.
func (s *AuthService) Login(ctx context.Context, username, password string) (models.User, string, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return models.User{}, "", apperr.Unauthenticated("Invalid username or password")
		}
		return models.User{}, "", err
	}

	if !security.CheckPassword(password, user.PasswordHash) {
		return models.User{}, "", apperr.Unauthenticated("Invalid username or password")
	}

	user, err = s.MarkUserActive(ctx, user.ID)
	if err != nil {
		return models.User{}, "", err
	}

	token, err := security.IssueToken(s.cfg.Security.JWTSecret, user.Username, s.cfg.Security.AccessTokenTTL)
	if err != nil {
		return models.User{}, "", err
	}

	s.log.Info().Str("username", user.Username).Msg("user logged in")
	return user, token, nil
}

// Logout flips the user inactive. Token invalidation is cookie deletion
// only; a copied token stays valid until natural expiry.
func (s *AuthService) Logout(ctx context.Context, user models.User) error {
	if _, err := s.MarkUserInactive(ctx, user.ID); err != nil {
		return err
	}

	s.log.Info().Str("username", user.Username).Msg("user logged out")
	return nil
}

// Authenticate resolves a session token into its user. Every failure
// surfaces as Unauthenticated.
func (s *AuthService) Authenticate(ctx context.Context, token string) (models.User, error) {
	username, err := security.ParseToken(token, s.cfg.Security.JWTSecret)
	if err != nil {
		return models.User{}, apperr.Unauthenticated("Invalid authentication token")
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return models.User{}, apperr.Unauthenticated("User not found")
		}
		return models.User{}, err
	}
	return user, nil
}

func (s *AuthService) MarkUserActive(ctx context.Context, userID int64) (models.User, error) {
	return s.setActive(ctx, userID, true)
}

func (s *AuthService) MarkUserInactive(ctx context.Context, userID int64) (models.User, error) {
	return s.setActive(ctx, userID, false)
}

// SetUserStatus is the administrative status mutation behind
// PUT /users/{id}/status.
func (s *AuthService) SetUserStatus(ctx context.Context, userID int64, active bool) (models.User, error) {
	user, err := s.setActive(ctx, userID, active)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return models.User{}, apperr.NotFound("User with id %d not found", userID)
		}
		return models.User{}, err
	}
	return user, nil
}

func (s *AuthService) setActive(ctx context.Context, userID int64, active bool) (models.User, error) {
	return s.users.UpdateActive(ctx, userID, active)
}
