package repository

import "context"

// Factory describes access to the different domain repositories and
// the health of the backing store.
type Factory interface {
	Users() UserRepository
	Orders() OrderRepository
	HealthCheck(ctx context.Context) error
}
