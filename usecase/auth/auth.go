// Package auth implements the session store: at most one authenticated
// identity, established by login or registration and cleared by logout.
package auth

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/synergysphere/backend/domain"
	"github.com/synergysphere/backend/repository"
	"github.com/synergysphere/backend/usecase"
)

// Config controls token issuance and the optional login latency.
type Config struct {
	JWTSecret string
	JWTIssuer string
	TokenTTL  time.Duration

	// LoginDelay simulates upstream latency on login and register. Zero
	// disables it; tests run with zero.
	LoginDelay time.Duration
}

type UseCase struct {
	users    repository.UserRepository
	recorder usecase.ActivityRecorder
	logger   *zap.Logger
	cfg      Config

	mu      sync.Mutex
	session domain.Session
}

func New(users repository.UserRepository, recorder usecase.ActivityRecorder, logger *zap.Logger, cfg Config) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = time.Hour
	}
	return &UseCase{
		users:    users,
		recorder: recorder,
		logger:   logger,
		cfg:      cfg,
	}
}

// Login authenticates by exact email match and secret comparison. On failure
// the session state is left unchanged. The returned token carries the
// identity for the HTTP surface.
func (uc *UseCase) Login(ctx context.Context, email, secret string) (domain.Session, string, error) {
	if err := uc.wait(ctx); err != nil {
		return uc.Session(), "", err
	}

	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return uc.Session(), "", domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(secret)) != nil {
		return uc.Session(), "", domain.ErrInvalidCredentials
	}

	uc.establish(user)
	session := uc.Session()
	token, err := uc.issueToken(user)
	if err != nil {
		return session, "", domain.WrapError(domain.ErrCodeInternal, "token issuance failed", err)
	}

	uc.record(ctx, usecase.ActionLogin, user)
	uc.logger.Info("session established", zap.String("user_id", user.ID))
	return session, token, nil
}

// Register creates a fresh identity and signs it in. All three inputs must be
// non-empty; the email must not already be registered.
func (uc *UseCase) Register(ctx context.Context, name, email, secret string) (domain.Session, string, error) {
	if err := uc.wait(ctx); err != nil {
		return uc.Session(), "", err
	}

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || secret == "" {
		return uc.Session(), "", domain.ErrInvalidPayload
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return uc.Session(), "", domain.WrapError(domain.ErrCodeInternal, "hashing failed", err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		Initials:     domain.Initials(name),
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return uc.Session(), "", err
	}

	uc.establish(user)
	session := uc.Session()
	token, err := uc.issueToken(user)
	if err != nil {
		return session, "", domain.WrapError(domain.ErrCodeInternal, "token issuance failed", err)
	}

	uc.record(ctx, usecase.ActionRegister, user)
	uc.logger.Info("identity registered", zap.String("user_id", user.ID))
	return session, token, nil
}

// Logout clears the current identity. Idempotent.
func (uc *UseCase) Logout(ctx context.Context) {
	uc.mu.Lock()
	user := uc.session.User
	uc.session = domain.Session{}
	uc.mu.Unlock()

	if user != nil {
		uc.record(ctx, usecase.ActionLogout, user)
	}
}

// Session returns a copy of the current session state.
func (uc *UseCase) Session() domain.Session {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	session := uc.session
	if session.User != nil {
		user := *session.User
		session.User = &user
	}
	return session
}

func (uc *UseCase) establish(user *domain.User) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	u := *user
	uc.session = domain.Session{
		User:          &u,
		Authenticated: true,
		IssuedAt:      time.Now(),
	}
}

func (uc *UseCase) issueToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"iss":     uc.cfg.JWTIssuer,
		"iat":     now.Unix(),
		"exp":     now.Add(uc.cfg.TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(uc.cfg.JWTSecret))
}

func (uc *UseCase) wait(ctx context.Context) error {
	if uc.cfg.LoginDelay <= 0 {
		return nil
	}
	timer := time.NewTimer(uc.cfg.LoginDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (uc *UseCase) record(ctx context.Context, action string, user *domain.User) {
	if uc.recorder == nil {
		return
	}
	if err := uc.recorder.RecordSession(ctx, action, user); err != nil {
		uc.logger.Warn("failed to record session activity", zap.String("action", action), zap.Error(err))
	}
}
