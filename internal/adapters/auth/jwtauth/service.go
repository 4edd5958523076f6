package jwtauth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-adoption/internal/platform/apperr"
	"pet-adoption/internal/ports/auth"

	jwt "github.com/golang-jwt/jwt/v5"
)

const invalidTokenMessage = "Token inválido!"

var ErrSecretEmpty = errors.New("jwtauth: secret is empty")

// tokenClaims es el payload firmado: {id, name, iat, exp}.
type tokenClaims struct {
	UserID string `json:"id"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// Service implementa auth.TokenIssuer y auth.AuthVerifier con HS256.
// El secreto se inyecta una vez al construir y no cambia.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewService(secret string, ttl time.Duration) (*Service, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrSecretEmpty
	}
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue firma un token para el usuario.
func (s *Service) Issue(userID, name string) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", errors.New("jwtauth: user id is required")
	}

	now := s.now()
	claims := tokenClaims{
		UserID: userID,
		Name:   name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("jwtauth: sign: %w", err)
	}
	return signed, nil
}

func (s *Service) Verify(_ context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, apperr.InvalidToken(invalidTokenMessage, errors.New("empty token"))
	}

	var claims tokenClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		return auth.Claims{}, apperr.InvalidToken(invalidTokenMessage, err)
	}

	uid := strings.TrimSpace(claims.UserID)
	if uid == "" {
		return auth.Claims{}, apperr.InvalidToken(invalidTokenMessage, errors.New("claims missing id"))
	}
	return auth.Claims{UserID: uid, Name: claims.Name}, nil
}
