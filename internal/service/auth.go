package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"fitvibe/internal/apperr"
	"fitvibe/internal/models"
	"fitvibe/internal/repo"
)

// Auth issues and verifies HS256 session tokens and owns account
// creation and login.
type Auth struct {
	store    repo.Store
	secret   []byte
	tokenTTL time.Duration
	now      func() time.Time
}

func NewAuth(store repo.Store, secret string, tokenTTL time.Duration) *Auth {
	return &Auth{
		store:    store,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		now:      time.Now,
	}
}

func (a *Auth) Register(ctx context.Context, firstName, lastName, email, password string) (*models.User, string, error) {
	if firstName == "" || lastName == "" || email == "" || password == "" {
		return nil, "", apperr.Validation("all fields are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	u := &models.User{
		ID:           uuid.NewString(),
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    a.now().UTC(),
	}
	if err := a.store.Users().Create(ctx, u); err != nil {
		return nil, "", err
	}

	token, err := a.issueToken(u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (a *Auth) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	if email == "" || password == "" {
		return nil, "", apperr.Validation("email and password are required")
	}

	u, err := a.store.Users().ByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, "", apperr.ErrAuth
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperr.ErrAuth
	}

	token, err := a.issueToken(u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// ParseToken validates a bearer token and returns the user id it was
// issued for.
func (a *Auth) ParseToken(token string) (string, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", apperr.ErrTokenInvalid
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", apperr.ErrTokenInvalid
	}
	return sub, nil
}

func (a *Auth) issueToken(u *models.User) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   u.ID,
		"email": u.Email,
		"exp":   a.now().Add(a.tokenTTL).Unix(),
	})
	return t.SignedString(a.secret)
}
