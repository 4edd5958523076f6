package middleware

import (
	"context"
	"net/http"
	"strings"

	"pet-adoption/internal/platform/apperr"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/platform/respond"
	"pet-adoption/internal/ports/auth"
)

type ctxKey string

const (
	claimsKey  ctxKey = "claims"
	authErrKey ctxKey = "auth_error"
)

const (
	msgAccessDenied = "Acesso negado!"
	msgInvalidToken = "Token inválido!"
)

// Authorize resuelve el header Authorization a claims.
// - header ausente => Unauthorized
// - sin segunda parte ("Bearer" solo) => Unauthorized
// - token que no verifica => InvalidToken
// El esquema no se valida: se toma lo que sigue al primer espacio.
func Authorize(ctx context.Context, verifier auth.AuthVerifier, header string) (auth.Claims, error) {
	token := bearerToken(header)
	if token == "" {
		return auth.Claims{}, apperr.Unauthorized(msgAccessDenied)
	}
	if verifier == nil {
		return auth.Claims{}, apperr.InvalidToken(msgInvalidToken, nil)
	}

	claims, err := verifier.Verify(ctx, token)
	if err != nil {
		return auth.Claims{}, apperr.InvalidToken(msgInvalidToken, err)
	}
	claims.UserID = strings.TrimSpace(claims.UserID)
	if claims.UserID == "" {
		return auth.Claims{}, apperr.InvalidToken(msgInvalidToken, nil)
	}
	return claims, nil
}

// RequireAuth corta con 401/400 antes de llegar al handler.
func RequireAuth(verifier auth.AuthVerifier, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := Authorize(r.Context(), verifier, r.Header.Get("Authorization"))
			if err != nil {
				respond.Error(w, r, log, err)
				return
			}
			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AuthContext:
// - Sin header Authorization => el request sigue sin claims.
// - Con header => intenta Authorize(); si falla guarda el error para que el
//   handler decida (checkuser responde 400/401), si no setea claims.
func AuthContext(verifier auth.AuthVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if strings.TrimSpace(header) == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := Authorize(r.Context(), verifier, header)
			if err != nil {
				ctx := context.WithValue(r.Context(), authErrKey, err)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	v := ctx.Value(claimsKey)
	if v == nil {
		return auth.Claims{}, false
	}
	c, ok := v.(auth.Claims)
	return c, ok
}

// GetAuthError devuelve el error de un header Authorization presente pero
// inválido (solo lo setea AuthContext).
func GetAuthError(ctx context.Context) error {
	err, _ := ctx.Value(authErrKey).(error)
	return err
}

// bearerToken toma lo que sigue al primer espacio.
func bearerToken(authHeader string) string {
	if strings.TrimSpace(authHeader) == "" {
		return ""
	}
	parts := strings.SplitN(strings.TrimSpace(authHeader), " ", 2)
	if len(parts) != 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
