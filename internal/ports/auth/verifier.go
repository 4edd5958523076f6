package auth

import "context"

// AuthVerifier verifica un token y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// TokenIssuer emite el token que se devuelve en register/login.
type TokenIssuer interface {
	Issue(userID, name string) (string, error)
}
