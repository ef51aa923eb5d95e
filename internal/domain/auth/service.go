package auth

import "context"

type AuthService interface {
	// Login authenticates a username/password pair. Unknown usernames and
	// wrong passwords both return ErrInvalidCredentials.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Refresh exchanges a valid, unrevoked refresh token for a new token pair.
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)

	// Logout revokes the refresh token.
	Logout(ctx context.Context, refreshToken string) error
}
