package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shiftline/workforce-backend-go/internal/domain/user"
	"github.com/shiftline/workforce-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, account user.UserAccount) (user.UserAccount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO user_accounts (employee_id, username, password, is_admin)
		VALUES ($1, $2, $3, $4)
		RETURNING user_id
	`

	err := q.QueryRow(ctx, query,
		account.EmployeeID,
		account.Username,
		account.PasswordHash,
		account.IsAdmin,
	).Scan(&account.ID)

	if err != nil {
		if isUniqueViolation(err, "user_accounts_username_key") {
			return user.UserAccount{}, user.ErrUsernameTaken
		}
		if isUniqueViolation(err, "user_accounts_employee_id_key") {
			return user.UserAccount{}, user.ErrEmployeeHasAccount
		}
		return user.UserAccount{}, fmt.Errorf("failed to create user account: %w", err)
	}

	return account, nil
}

// GetByUsername implements user.UserRepository.
func (r *userRepositoryImpl) GetByUsername(ctx context.Context, username string) (user.UserAccount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ua.user_id, ua.employee_id, ua.username, ua.password, ua.is_admin,
			   e.first_name, e.last_name
		FROM user_accounts ua
		JOIN employees e ON ua.employee_id = e.employee_id
		WHERE ua.username = $1
	`

	var account user.UserAccount
	err := q.QueryRow(ctx, query, username).Scan(
		&account.ID,
		&account.EmployeeID,
		&account.Username,
		&account.PasswordHash,
		&account.IsAdmin,
		&account.FirstName,
		&account.LastName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.UserAccount{}, user.ErrUserNotFound
		}
		return user.UserAccount{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	return account, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id int64) (user.UserAccount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ua.user_id, ua.employee_id, ua.username, ua.password, ua.is_admin,
			   e.first_name, e.last_name
		FROM user_accounts ua
		JOIN employees e ON ua.employee_id = e.employee_id
		WHERE ua.user_id = $1
	`

	var account user.UserAccount
	err := q.QueryRow(ctx, query, id).Scan(
		&account.ID,
		&account.EmployeeID,
		&account.Username,
		&account.PasswordHash,
		&account.IsAdmin,
		&account.FirstName,
		&account.LastName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.UserAccount{}, user.ErrUserNotFound
		}
		return user.UserAccount{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return account, nil
}

// List implements user.UserRepository.
func (r *userRepositoryImpl) List(ctx context.Context) ([]user.UserAccount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ua.user_id, ua.employee_id, ua.username, ua.is_admin,
			   e.first_name, e.last_name
		FROM user_accounts ua
		JOIN employees e ON ua.employee_id = e.employee_id
		ORDER BY e.last_name, e.first_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list user accounts: %w", err)
	}
	defer rows.Close()

	var accounts []user.UserAccount
	for rows.Next() {
		var a user.UserAccount
		err := rows.Scan(
			&a.ID,
			&a.EmployeeID,
			&a.Username,
			&a.IsAdmin,
			&a.FirstName,
			&a.LastName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user account: %w", err)
		}
		accounts = append(accounts, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return accounts, nil
}

// Delete implements user.UserRepository.
func (r *userRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM user_accounts WHERE user_id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete user account: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// UsernameExists implements user.UserRepository.
func (r *userRepositoryImpl) UsernameExists(ctx context.Context, username string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS (SELECT 1 FROM user_accounts WHERE username = $1)`

	var exists bool
	if err := q.QueryRow(ctx, query, username).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}

	return exists, nil
}
