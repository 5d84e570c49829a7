package session

import (
	"context"

	"shopdash/internal/dashboard/api"
	"shopdash/internal/domain"
)

// AuthAPI — only the endpoints the session lifecycle touches.
type AuthAPI interface {
	Login(ctx context.Context, creds api.Credentials) (*api.AuthResult, error)
	Signup(ctx context.Context, req api.SignupRequest) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
}
