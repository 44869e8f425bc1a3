package service

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/craftside/marketplace/internal/auth"
	"github.com/craftside/marketplace/internal/config"
	"github.com/craftside/marketplace/internal/domain"
	"github.com/craftside/marketplace/internal/events"
	"github.com/craftside/marketplace/internal/repository"
	apperrors "github.com/craftside/marketplace/pkg/util"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const minPasswordLength = 8

// AuthService coordinates signup and login flows: credential hashing,
// persistence, and session token minting. Identity lookup or creation
// always happens before a token is signed.
type AuthService struct {
	users      repository.UserRepository
	resets     repository.PasswordResetRepository
	codec      *auth.Codec
	dispatcher events.Dispatcher
	bcryptCost int
	resetTTL   time.Duration
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	UserRepo          repository.UserRepository
	PasswordResetRepo repository.PasswordResetRepository
	Dispatcher        events.Dispatcher
}

// NewAuthService builds the service. The signing secret comes in via config,
// loaded once at startup; it is never re-read or logged.
func NewAuthService(cfg config.SessionConfig, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		resets:     deps.PasswordResetRepo,
		codec:      auth.NewCodec(cfg.Secret, cfg.TokenTTL()),
		dispatcher: deps.Dispatcher,
		bcryptCost: cfg.BcryptCost,
		resetTTL:   cfg.ResetTTL(),
	}
}

// Signup creates a new account and establishes a session. A second signup
// with the same email fails with DUPLICATE_IDENTITY and mints no token.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (*domain.User, string, time.Time, error) {
	if name == "" {
		return nil, "", time.Time{}, apperrors.NewValidationError("name is required", nil)
	}
	if !emailPattern.MatchString(email) {
		return nil, "", time.Time{}, apperrors.NewValidationError("invalid email address", nil)
	}
	if len(password) < minPasswordLength {
		return nil, "", time.Time{}, apperrors.NewValidationError("password must be at least 8 characters", nil)
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, "", time.Time{}, apperrors.NewDuplicateIdentity()
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, "", time.Time{}, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Status:       domain.UserStatusActive,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.codec.Sign(user.ID, user.Email)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	s.publish(ctx, events.EventUserRegistered, user.ID, events.UserRegisteredPayload{
		Email: user.Email,
		Name:  user.Name,
	})
	return user, token, exp, nil
}

// Login authenticates an account. Unknown email and wrong password return
// the same INVALID_CREDENTIALS failure so registered addresses cannot be
// enumerated.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
		}
		return nil, "", time.Time{}, err
	}
	if !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
	}

	token, exp, err := s.codec.Sign(user.ID, user.Email)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// GetUser fetches persisted attributes for a resolved identity.
func (s *AuthService) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}

// RequestPasswordReset persists a one-time reset token for the email. An
// unknown email is not an error; the caller response stays identical either
// way.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) (*repository.PasswordResetToken, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	token := &repository.PasswordResetToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(s.resetTTL),
	}
	if err := s.resets.Create(ctx, token); err != nil {
		return nil, err
	}
	return token, nil
}

// ConfirmPasswordReset validates the reset token and updates the password.
func (s *AuthService) ConfirmPasswordReset(ctx context.Context, tokenStr, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return apperrors.NewValidationError("password must be at least 8 characters", nil)
	}

	token, err := s.resets.GetByToken(ctx, tokenStr)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewValidationError("invalid reset token", nil)
		}
		return err
	}
	if token.UsedAt != nil || time.Now().After(token.ExpiresAt) {
		return apperrors.NewValidationError("reset token expired or used", nil)
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}

	user, err := s.users.GetByID(ctx, token.UserID)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}
	return s.resets.MarkUsed(ctx, token.ID)
}

// ChangePassword verifies the current password before updating to a new hash.
func (s *AuthService) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return apperrors.NewValidationError("password must be at least 8 characters", nil)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !auth.VerifyPassword(currentPassword, user.PasswordHash) {
		return apperrors.NewInvalidCredentials()
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.users.Update(ctx, user)
}

// Codec exposes the token codec for resolver and guard wiring.
func (s *AuthService) Codec() *auth.Codec {
	return s.codec
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, userID int64, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		UserID:    userID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
