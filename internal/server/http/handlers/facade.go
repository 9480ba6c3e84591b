package handlers

import (
	"context"

	"github.com/l2drycleaners/cleanpress/internal/domain/model"
	pkgAuth "github.com/l2drycleaners/cleanpress/internal/pkg/auth"
	"github.com/l2drycleaners/cleanpress/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, input usecase.RegisterInput) (*model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (*pkgAuth.Claims, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, userID string, items []usecase.ItemInput, pickupDate string) (*model.Order, error)
	Orders(ctx context.Context, actor pkgAuth.Claims, filterUserID string) ([]model.Order, error)
	UpdateOrder(ctx context.Context, orderID string, actor pkgAuth.Claims, input usecase.UpdateInput) (*model.Order, error)
}

// TrackingFacade provides the public order tracking projection.
type TrackingFacade interface {
	TrackOrder(ctx context.Context, orderID string) (*model.Order, []model.Milestone, error)
}

// AdminFacade provides dashboard aggregates.
type AdminFacade interface {
	OrderStats(ctx context.Context) (*model.OrderStats, error)
	Customers(ctx context.Context) ([]model.User, error)
}

// HealthFacade reports whether the backing store is reachable.
type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// CleanersFacade aggregates the full set of operations used across handlers.
type CleanersFacade interface {
	AuthFacade
	OrderFacade
	TrackingFacade
	AdminFacade
	HealthFacade
}
