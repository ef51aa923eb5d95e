package account

import (
	"context"
	"fmt"

	"github.com/shiftline/workforce-backend-go/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

type accountServiceImpl struct {
	userRepo user.UserRepository
}

func NewAccountService(userRepo user.UserRepository) user.AccountService {
	return &accountServiceImpl{userRepo: userRepo}
}

// Create implements user.AccountService.
func (s *accountServiceImpl) Create(ctx context.Context, req user.CreateAccountRequest) (user.AccountResponse, error) {
	if err := req.Validate(); err != nil {
		return user.AccountResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.AccountResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.userRepo.Create(ctx, user.UserAccount{
		EmployeeID:   req.EmployeeID,
		Username:     req.Username,
		PasswordHash: string(hash),
		IsAdmin:      req.IsAdmin,
	})
	if err != nil {
		return user.AccountResponse{}, err
	}

	return toAccountResponse(created), nil
}

// Delete implements user.AccountService.
func (s *accountServiceImpl) Delete(ctx context.Context, userID int64) error {
	return s.userRepo.Delete(ctx, userID)
}

// List implements user.AccountService.
func (s *accountServiceImpl) List(ctx context.Context) ([]user.AccountResponse, error) {
	accounts, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]user.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		responses = append(responses, toAccountResponse(a))
	}

	return responses, nil
}

// UsernameExists implements user.AccountService.
func (s *accountServiceImpl) UsernameExists(ctx context.Context, username string) (bool, error) {
	return s.userRepo.UsernameExists(ctx, username)
}

func toAccountResponse(a user.UserAccount) user.AccountResponse {
	return user.AccountResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Username:   a.Username,
		IsAdmin:    a.IsAdmin,
		FirstName:  a.FirstName,
		LastName:   a.LastName,
	}
}
