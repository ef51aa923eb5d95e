package account

import (
	"context"
	"testing"

	"github.com/shiftline/workforce-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	accounts map[int64]user.UserAccount
	nextID   int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{accounts: make(map[int64]user.UserAccount)}
}

func (f *fakeUserRepo) Create(_ context.Context, account user.UserAccount) (user.UserAccount, error) {
	for _, existing := range f.accounts {
		if existing.Username == account.Username {
			return user.UserAccount{}, user.ErrUsernameTaken
		}
		if existing.EmployeeID == account.EmployeeID {
			return user.UserAccount{}, user.ErrEmployeeHasAccount
		}
	}
	f.nextID++
	account.ID = f.nextID
	f.accounts[account.ID] = account
	return account, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (user.UserAccount, error) {
	for _, a := range f.accounts {
		if a.Username == username {
			return a, nil
		}
	}
	return user.UserAccount{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (user.UserAccount, error) {
	a, ok := f.accounts[id]
	if !ok {
		return user.UserAccount{}, user.ErrUserNotFound
	}
	return a, nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]user.UserAccount, error) {
	out := make([]user.UserAccount, 0, len(f.accounts))
	for _, a := range f.accounts {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.accounts[id]; !ok {
		return user.ErrUserNotFound
	}
	delete(f.accounts, id)
	return nil
}

func (f *fakeUserRepo) UsernameExists(_ context.Context, username string) (bool, error) {
	for _, a := range f.accounts {
		if a.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func validRequest() user.CreateAccountRequest {
	return user.CreateAccountRequest{
		EmployeeID:      1,
		Username:        "ana.silva",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	}
}

func TestCreateHashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAccountService(repo)

	created, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	stored := repo.accounts[created.ID]
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")))
}

func TestCreateValidation(t *testing.T) {
	svc := NewAccountService(newFakeUserRepo())

	req := validRequest()
	req.ConfirmPassword = "different"
	_, err := svc.Create(context.Background(), req)
	assert.Error(t, err)

	req = validRequest()
	req.Username = "ab"
	_, err = svc.Create(context.Background(), req)
	assert.Error(t, err)

	req = validRequest()
	req.Password = "short"
	req.ConfirmPassword = "short"
	_, err = svc.Create(context.Background(), req)
	assert.Error(t, err)
}

func TestCreateRejectsDuplicates(t *testing.T) {
	svc := NewAccountService(newFakeUserRepo())

	_, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), validRequest())
	assert.ErrorIs(t, err, user.ErrUsernameTaken)

	req := validRequest()
	req.Username = "ana.other"
	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, user.ErrEmployeeHasAccount)
}

func TestDelete(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAccountService(repo)

	created, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), user.ErrUserNotFound)
}

func TestUsernameExists(t *testing.T) {
	svc := NewAccountService(newFakeUserRepo())

	exists, err := svc.UsernameExists(context.Background(), "ana.silva")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	exists, err = svc.UsernameExists(context.Background(), "ana.silva")
	require.NoError(t, err)
	assert.True(t, exists)
}
