package repository

import (
	"context"

	"github.com/l2drycleaners/cleanpress/internal/domain/model"
)

// CreateUserParams carries the fields of a new account.
type CreateUserParams struct {
	Name         string
	Email        string
	PasswordHash string
	Phone        string
	Address      string
	Role         model.Role
}

// UserRepository describes persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, params CreateUserParams) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	ListByRole(ctx context.Context, role model.Role) ([]model.User, error)
}
