package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/shiftline/workforce-backend-go/internal/domain/auth"
	"github.com/shiftline/workforce-backend-go/internal/domain/user"
	"github.com/shiftline/workforce-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	userRepo   user.UserRepository
	jwtService jwt.Service
}

func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	account, err := a.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			// Same error for unknown username and wrong password.
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(account)
}

// Refresh implements auth.AuthService. The old refresh token is revoked and
// a fresh pair issued, so a leaked token stops working after first use.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	userID, jti, err := a.jwtService.DecodeRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	if a.jwtService.IsTokenRevoked(jti) {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	// Re-read the account so changed admin flags or names take effect on the
	// next access token instead of being copied from stale claims.
	account, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	a.jwtService.RevokeToken(jti)

	return a.issueTokens(account)
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	_, jti, err := a.jwtService.DecodeRefreshToken(refreshToken)
	if err != nil {
		return auth.ErrInvalidToken
	}

	a.jwtService.RevokeToken(jti)
	return nil
}

func (a *AuthServiceImpl) issueTokens(account user.UserAccount) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse

	principal := jwt.Principal{
		UserID:     account.ID,
		EmployeeID: account.EmployeeID,
		IsAdmin:    account.IsAdmin,
		Name:       account.FirstName + " " + account.LastName,
	}

	var err error
	tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.jwtService.GenerateAccessToken(principal)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.jwtService.GenerateRefreshToken(account.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	tokenResponse.Principal = auth.PrincipalResponse{
		UserID:     account.ID,
		EmployeeID: account.EmployeeID,
		IsAdmin:    account.IsAdmin,
		FirstName:  account.FirstName,
		LastName:   account.LastName,
	}

	return tokenResponse, nil
}
