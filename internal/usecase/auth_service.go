package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/zdenekh/club-fines/internal/domain/session"
	"github.com/zdenekh/club-fines/internal/domain/user"
	"github.com/zdenekh/club-fines/internal/platform/logging"
)

const (
	maxFailedAttempts = 5
	lockoutDuration   = 15 * time.Minute
	sessionTTL        = 24 * time.Hour
	sessionTokenBytes = 32
)

type LoginInput struct {
	Username string
	Password string
}

// LoginResult carries the issued token plus the identity it maps to, so the
// transport layer never needs a second lookup after login.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Principal user.Principal
}

// AuthService authenticates administrators and manages their sessions.
// Failed logins count against the account; the fifth consecutive failure
// blocks it for fifteen minutes.
type AuthService struct {
	userRepo    user.Repository
	sessionRepo session.Repository
	logger      *logging.Logger
	now         func() time.Time
	sessionTTL  time.Duration
}

func NewAuthService(userRepo user.Repository, sessionRepo session.Repository, logger *logging.Logger) *AuthService {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		logger:      logger,
		now:         time.Now,
		sessionTTL:  sessionTTL,
	}
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (LoginResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Login")
	defer span.End()

	input.Username = strings.TrimSpace(input.Username)
	if input.Username == "" || input.Password == "" {
		return LoginResult{}, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	u, exists, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		return LoginResult{}, fmt.Errorf("get user: %w", err)
	}
	if !exists || !u.Active {
		// Same error as a wrong password so usernames cannot be probed.
		return LoginResult{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	now := s.now().UTC()
	if u.BlockedUntil != nil && now.Before(*u.BlockedUntil) {
		return LoginResult{}, fmt.Errorf("%w: account is temporarily blocked until %s",
			ErrUnauthorized, u.BlockedUntil.Format(time.RFC3339))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.Password)); err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return LoginResult{}, fmt.Errorf("compare password: %w", err)
		}

		failed := u.FailedAttempts + 1
		var blockedUntil *time.Time
		if failed >= maxFailedAttempts {
			until := now.Add(lockoutDuration)
			blockedUntil = &until
			failed = 0
		}
		if err := s.userRepo.RecordLoginFailure(ctx, u.ID, failed, blockedUntil); err != nil {
			return LoginResult{}, fmt.Errorf("record login failure: %w", err)
		}

		if blockedUntil != nil {
			s.logger.WarnContext(ctx, "account blocked after repeated login failures",
				"user_id", u.ID,
				"blocked_until", blockedUntil.Format(time.RFC3339),
			)
			return LoginResult{}, fmt.Errorf("%w: account is temporarily blocked until %s",
				ErrUnauthorized, blockedUntil.Format(time.RFC3339))
		}

		return LoginResult{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	if err := s.userRepo.RecordLoginSuccess(ctx, u.ID, now); err != nil {
		return LoginResult{}, fmt.Errorf("record login success: %w", err)
	}

	token, err := newSessionToken()
	if err != nil {
		return LoginResult{}, fmt.Errorf("generate session token: %w", err)
	}

	sess := session.Session{
		Token:     token,
		UserID:    u.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.sessionRepo.Create(ctx, sess); err != nil {
		return LoginResult{}, fmt.Errorf("create session: %w", err)
	}

	s.logger.InfoContext(ctx, "user logged in", "user_id", u.ID, "role", string(u.Role))

	return LoginResult{
		Token:     token,
		ExpiresAt: sess.ExpiresAt,
		Principal: user.Principal{
			UserID:     u.ID,
			Role:       u.Role,
			CategoryID: u.CategoryID,
		},
	}, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Logout")
	defer span.End()

	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("%w: session token is required", ErrInvalidInput)
	}

	if err := s.sessionRepo.Delete(ctx, token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

// VerifyToken resolves a bearer token to a principal. Expired sessions are
// removed on sight.
func (s *AuthService) VerifyToken(ctx context.Context, token string) (user.Principal, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.VerifyToken")
	defer span.End()

	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, fmt.Errorf("%w: missing session token", ErrUnauthorized)
	}

	sess, exists, err := s.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		return user.Principal{}, fmt.Errorf("get session: %w", err)
	}
	if !exists {
		return user.Principal{}, fmt.Errorf("%w: unknown session", ErrUnauthorized)
	}
	if sess.Expired(s.now().UTC()) {
		if err := s.sessionRepo.Delete(ctx, token); err != nil {
			return user.Principal{}, fmt.Errorf("delete expired session: %w", err)
		}
		return user.Principal{}, fmt.Errorf("%w: session expired", ErrUnauthorized)
	}

	u, exists, err := s.userRepo.GetByID(ctx, sess.UserID)
	if err != nil {
		return user.Principal{}, fmt.Errorf("get user: %w", err)
	}
	if !exists || !u.Active {
		return user.Principal{}, fmt.Errorf("%w: account no longer active", ErrUnauthorized)
	}

	return user.Principal{
		UserID:     u.ID,
		Role:       u.Role,
		CategoryID: u.CategoryID,
	}, nil
}

// PurgeExpiredSessions removes stale sessions. The application runs this on a
// timer.
func (s *AuthService) PurgeExpiredSessions(ctx context.Context) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.PurgeExpiredSessions")
	defer span.End()

	removed, err := s.sessionRepo.DeleteExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	if removed > 0 {
		s.logger.InfoContext(ctx, "expired sessions purged", "count", removed)
	}

	return removed, nil
}

func newSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return hex.EncodeToString(buf), nil
}
