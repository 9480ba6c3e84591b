package auth

import (
	"time"

	"github.com/l2drycleaners/cleanpress/internal/domain/model"
)

// Claims is the typed session structure the rest of the application
// trusts as the authorization source of truth.
type Claims struct {
	UserID string
	Role   model.Role
}

// Strategy issues and verifies session tokens.
type Strategy interface {
	IssueToken(userID string, role model.Role) (string, error)
	ParseToken(token string) (*Claims, error)
	Name() string
}

// Options tune token strategies.
type Options struct {
	TTL time.Duration
}
