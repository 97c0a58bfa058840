package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"fitvibe/internal/apperr"
	"fitvibe/internal/repo"
)

const testSecret = "test-secret"

func TestRegisterLoginRoundTrip(t *testing.T) {
	ctx := context.Background()
	auth := NewAuth(repo.NewMem(), testSecret, time.Hour)

	u, token, err := auth.Register(ctx, "Robin", "Osei", "Robin@Example.com", "hunter22")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.Email != "Robin@Example.com" && u.Email != "robin@example.com" {
		t.Errorf("unexpected email %q", u.Email)
	}
	if u.PasswordHash == "hunter22" || u.PasswordHash == "" {
		t.Errorf("password stored unhashed or empty")
	}

	id, err := auth.ParseToken(token)
	if err != nil {
		t.Fatalf("parse registration token: %v", err)
	}
	if id != u.ID {
		t.Errorf("token sub = %q, want %q", id, u.ID)
	}

	// Email lookup is case-insensitive.
	u2, token2, err := auth.Login(ctx, "robin@example.com", "hunter22")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if u2.ID != u.ID || token2 == "" {
		t.Errorf("login returned wrong user or empty token")
	}
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	auth := NewAuth(repo.NewMem(), testSecret, time.Hour)

	var ve *apperr.ValidationError
	if _, _, err := auth.Register(ctx, "", "Osei", "a@b.com", "pw"); !errors.As(err, &ve) {
		t.Errorf("missing first name: err = %v, want ValidationError", err)
	}
	if _, _, err := auth.Register(ctx, "Robin", "Osei", "a@b.com", ""); !errors.As(err, &ve) {
		t.Errorf("missing password: err = %v, want ValidationError", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	auth := NewAuth(repo.NewMem(), testSecret, time.Hour)

	if _, _, err := auth.Register(ctx, "Robin", "Osei", "dup@example.com", "pw1"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, _, err := auth.Register(ctx, "Sam", "Cho", "DUP@example.com", "pw2")
	if !errors.Is(err, apperr.ErrDuplicateEmail) {
		t.Fatalf("err = %v, want ErrDuplicateEmail", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	auth := NewAuth(repo.NewMem(), testSecret, time.Hour)

	if _, _, err := auth.Register(ctx, "Robin", "Osei", "robin@example.com", "correct"); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, _, err := auth.Login(ctx, "robin@example.com", "wrong"); !errors.Is(err, apperr.ErrAuth) {
		t.Errorf("wrong password: err = %v, want ErrAuth", err)
	}
	if _, _, err := auth.Login(ctx, "nobody@example.com", "whatever"); !errors.Is(err, apperr.ErrAuth) {
		t.Errorf("unknown email: err = %v, want ErrAuth", err)
	}
}

func TestParseTokenRejectsGarbageAndExpiry(t *testing.T) {
	ctx := context.Background()

	if _, err := NewAuth(repo.NewMem(), testSecret, time.Hour).ParseToken("not.a.token"); !errors.Is(err, apperr.ErrTokenInvalid) {
		t.Errorf("garbage token: err = %v, want ErrTokenInvalid", err)
	}

	expired := NewAuth(repo.NewMem(), testSecret, -time.Minute)
	_, token, err := expired.Register(ctx, "Robin", "Osei", "robin@example.com", "pw")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := expired.ParseToken(token); !errors.Is(err, apperr.ErrTokenInvalid) {
		t.Errorf("expired token: err = %v, want ErrTokenInvalid", err)
	}

	// Token signed with a different secret.
	other := NewAuth(repo.NewMem(), "other-secret", time.Hour)
	_, token2, err := other.Register(ctx, "Robin", "Osei", "robin2@example.com", "pw")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := NewAuth(repo.NewMem(), testSecret, time.Hour).ParseToken(token2); !errors.Is(err, apperr.ErrTokenInvalid) {
		t.Errorf("wrong secret: err = %v, want ErrTokenInvalid", err)
	}
}
