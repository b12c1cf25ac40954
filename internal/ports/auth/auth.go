package auth

import "context"

// Claims es la identidad que queda en el contexto del request.
type Claims struct {
	UserID string
	Email  string
}

// AuthVerifier valida un bearer token contra el proveedor de identidad.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
