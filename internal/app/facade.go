package app

import (
	"context"

	"github.com/l2drycleaners/cleanpress/internal/domain/model"
	"github.com/l2drycleaners/cleanpress/internal/domain/repository"
	pkgAuth "github.com/l2drycleaners/cleanpress/internal/pkg/auth"
	"github.com/l2drycleaners/cleanpress/internal/usecase"
)

// CleanersFacade is the single entry point handlers use. It glues the
// auth, order, and tracking use cases together behind one surface.
type CleanersFacade struct {
	auth     *usecase.AuthUseCase
	orders   *usecase.OrderUseCase
	tracking *usecase.TrackingUseCase
	store    repository.Factory
}

func NewCleanersFacade(auth *usecase.AuthUseCase, orders *usecase.OrderUseCase, tracking *usecase.TrackingUseCase, store repository.Factory) *CleanersFacade {
	return &CleanersFacade{auth: auth, orders: orders, tracking: tracking, store: store}
}

func (f *CleanersFacade) Register(ctx context.Context, input usecase.RegisterInput) (*model.User, string, error) {
	return f.auth.Register(ctx, input)
}

func (f *CleanersFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *CleanersFacade) ParseToken(token string) (*pkgAuth.Claims, error) {
	return f.auth.ParseToken(token)
}

func (f *CleanersFacade) User(ctx context.Context, id string) (*model.User, error) {
	return f.auth.GetByID(ctx, id)
}

func (f *CleanersFacade) Customers(ctx context.Context) ([]model.User, error) {
	return f.auth.ListCustomers(ctx)
}

func (f *CleanersFacade) EnsureAdmin(ctx context.Context, name, email, password string) error {
	return f.auth.EnsureAdmin(ctx, name, email, password)
}

func (f *CleanersFacade) CreateOrder(ctx context.Context, userID string, items []usecase.ItemInput, pickupDate string) (*model.Order, error) {
	return f.orders.Create(ctx, userID, items, pickupDate)
}

func (f *CleanersFacade) Orders(ctx context.Context, actor pkgAuth.Claims, filterUserID string) ([]model.Order, error) {
	return f.orders.List(ctx, actor, filterUserID)
}

func (f *CleanersFacade) UpdateOrder(ctx context.Context, orderID string, actor pkgAuth.Claims, input usecase.UpdateInput) (*model.Order, error) {
	return f.orders.Update(ctx, orderID, actor, input)
}

func (f *CleanersFacade) TrackOrder(ctx context.Context, orderID string) (*model.Order, []model.Milestone, error) {
	return f.tracking.Track(ctx, orderID)
}

func (f *CleanersFacade) OrderStats(ctx context.Context) (*model.OrderStats, error) {
	return f.orders.Stats(ctx)
}

func (f *CleanersFacade) HealthCheck(ctx context.Context) error {
	return f.store.HealthCheck(ctx)
}
