// Package introspect implementa auth.AuthVerifier contra un endpoint HTTP de
// verificación de tokens del proveedor de identidad.
package introspect

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pet-treatments/internal/platform/httpclient"
	"pet-treatments/internal/ports/auth"
)

var (
	ErrTokenEmpty   = errors.New("token is empty")
	ErrUnauthorized = errors.New("token rejected")
	ErrUpstream     = errors.New("identity provider error")
)

const defaultVerifyPath = "/v1/tokens/verify"

type Config struct {
	BaseURL string
	APIKey  string

	// Vacío => "X-Api-Key".
	APIKeyHeader string
	// Vacío => "/v1/tokens/verify".
	VerifyPath string

	Timeout time.Duration
}

type Verifier struct {
	client *httpclient.Client
	path   string
}

func NewVerifier(cfg Config) (*Verifier, error) {
	header := strings.TrimSpace(cfg.APIKeyHeader)
	if header == "" {
		header = "X-Api-Key"
	}
	path := strings.TrimSpace(cfg.VerifyPath)
	if path == "" {
		path = defaultVerifyPath
	}

	client, err := httpclient.New(cfg.BaseURL, cfg.Timeout, map[string]string{
		header: strings.TrimSpace(cfg.APIKey),
	})
	if err != nil {
		return nil, err
	}
	return &Verifier{client: client, path: path}, nil
}

type verifyResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	var out verifyResponse
	err := v.client.PostJSON(ctx, v.path,
		map[string]string{"Authorization": "Bearer " + token},
		map[string]string{"token": token},
		&out,
	)
	if err != nil {
		var se *httpclient.StatusError
		if errors.As(err, &se) && (se.StatusCode == http.StatusUnauthorized || se.StatusCode == http.StatusForbidden) {
			return auth.Claims{}, ErrUnauthorized
		}
		return auth.Claims{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	uid := strings.TrimSpace(out.UserID)
	if uid == "" {
		return auth.Claims{}, fmt.Errorf("%w: response missing user_id", ErrUpstream)
	}
	return auth.Claims{UserID: uid, Email: strings.TrimSpace(out.Email)}, nil
}
