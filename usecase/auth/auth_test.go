package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/synergysphere/backend/domain"
	"github.com/synergysphere/backend/repository/memory"
)

func newTestUseCase(t *testing.T, cfg Config) *UseCase {
	t.Helper()
	store := memory.NewStore()
	if err := store.Seed(); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "test-secret"
	}
	return New(memory.NewUserRepository(store), nil, nil, cfg)
}

func TestLoginWithSeededIdentity(t *testing.T) {
	uc := newTestUseCase(t, Config{})

	session, token, err := uc.Login(context.Background(), "sarah@synergysphere.com", memory.SeedPassword)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !session.Authenticated || session.User == nil {
		t.Fatalf("expected authenticated session, got %+v", session)
	}
	if session.User.Name != "Sarah Johnson" {
		t.Fatalf("expected seeded identity, got %q", session.User.Name)
	}
	if token == "" {
		t.Fatal("expected a session token")
	}

	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if claims["user_id"] != session.User.ID {
		t.Fatalf("token user_id %v, session user %s", claims["user_id"], session.User.ID)
	}
}

func TestLoginFailureLeavesSessionUnchanged(t *testing.T) {
	uc := newTestUseCase(t, Config{})

	if _, _, err := uc.Login(context.Background(), "nobody@x.com", memory.SeedPassword); !domain.IsDomainError(err, domain.ErrCodeUnauthorized) {
		t.Fatalf("expected UNAUTHORIZED for unknown email, got %v", err)
	}
	if _, _, err := uc.Login(context.Background(), "sarah@synergysphere.com", "wrong"); !domain.IsDomainError(err, domain.ErrCodeUnauthorized) {
		t.Fatalf("expected UNAUTHORIZED for wrong secret, got %v", err)
	}

	if session := uc.Session(); session.Authenticated || session.User != nil {
		t.Fatalf("failed logins must not touch session state, got %+v", session)
	}
}

func TestRegisterDerivesInitials(t *testing.T) {
	uc := newTestUseCase(t, Config{})

	session, _, err := uc.Register(context.Background(), "Jane Q Public", "jane@x.com", "pw")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if session.User == nil || session.User.Initials != "JQP" {
		t.Fatalf("expected initials JQP, got %+v", session.User)
	}
	if !session.Authenticated {
		t.Fatal("register must establish the session")
	}
	if session.User.ID == "" {
		t.Fatal("expected generated identity id")
	}
}

func TestRegisterValidation(t *testing.T) {
	uc := newTestUseCase(t, Config{})

	for _, tc := range []struct{ name, email, secret string }{
		{"", "jane@x.com", "pw"},
		{"Jane", "", "pw"},
		{"Jane", "jane@x.com", ""},
	} {
		if _, _, err := uc.Register(context.Background(), tc.name, tc.email, tc.secret); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
			t.Fatalf("expected INVALID for %+v, got %v", tc, err)
		}
	}
	if session := uc.Session(); session.Authenticated {
		t.Fatal("failed registration must not establish a session")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	uc := newTestUseCase(t, Config{})

	if _, _, err := uc.Register(context.Background(), "Impostor", "sarah@synergysphere.com", "pw"); !domain.IsDomainError(err, domain.ErrCodeConflict) {
		t.Fatalf("expected CONFLICT, got %v", err)
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	uc := newTestUseCase(t, Config{})

	if _, _, err := uc.Login(context.Background(), "sarah@synergysphere.com", memory.SeedPassword); err != nil {
		t.Fatalf("login: %v", err)
	}

	uc.Logout(context.Background())
	uc.Logout(context.Background())

	if session := uc.Session(); session.Authenticated || session.User != nil {
		t.Fatalf("expected cleared session, got %+v", session)
	}
}

func TestLoginDelayRespectsContext(t *testing.T) {
	uc := newTestUseCase(t, Config{LoginDelay: time.Minute})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, _, err := uc.Login(ctx, "sarah@synergysphere.com", memory.SeedPassword)
	if err == nil {
		t.Fatal("expected context error")
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Fatalf("login did not honor cancellation, took %v", elapsed)
	}
}
