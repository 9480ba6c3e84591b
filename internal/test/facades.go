package test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/l2drycleaners/cleanpress/internal/domain/model"
	pkgAuth "github.com/l2drycleaners/cleanpress/internal/pkg/auth"
	"github.com/l2drycleaners/cleanpress/internal/usecase"
)

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CreateFn func(context.Context, string, []usecase.ItemInput, string) (*model.Order, error)
	OrdersFn func(context.Context, pkgAuth.Claims, string) ([]model.Order, error)
	UpdateFn func(context.Context, string, pkgAuth.Claims, usecase.UpdateInput) (*model.Order, error)
}

// CreateOrder delegates to provided function or returns a default order.
func (s OrderFacadeStub) CreateOrder(ctx context.Context, userID string, items []usecase.ItemInput, pickupDate string) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, userID, items, pickupDate)
	}
	return &model.Order{
		ID:          "order-1",
		UserID:      userID,
		Status:      model.OrderStatusPendingPickup,
		TotalAmount: decimal.NewFromInt(400),
		PickupDate:  time.Unix(0, 0),
	}, nil
}

// Orders returns predefined orders for the acting session.
func (s OrderFacadeStub) Orders(ctx context.Context, actor pkgAuth.Claims, filterUserID string) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, actor, filterUserID)
	}
	return []model.Order{{ID: "order-1", UserID: actor.UserID, Status: model.OrderStatusPendingPickup}}, nil
}

// UpdateOrder executes the configured update handler.
func (s OrderFacadeStub) UpdateOrder(ctx context.Context, orderID string, actor pkgAuth.Claims, input usecase.UpdateInput) (*model.Order, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, orderID, actor, input)
	}
	order := &model.Order{ID: orderID, Status: model.OrderStatusPendingPickup}
	if input.Status != nil {
		order.Status = *input.Status
	}
	order.DeliveryDate = input.DeliveryDate
	return order, nil
}

// TrackingFacadeStub simulates the public tracking projection.
type TrackingFacadeStub struct {
	TrackFn func(context.Context, string) (*model.Order, []model.Milestone, error)
}

// TrackOrder returns configured tracking data or a single-milestone default.
func (s TrackingFacadeStub) TrackOrder(ctx context.Context, orderID string) (*model.Order, []model.Milestone, error) {
	if s.TrackFn != nil {
		return s.TrackFn(ctx, orderID)
	}
	order := &model.Order{ID: orderID, Status: model.OrderStatusPendingPickup, CreatedAt: time.Unix(0, 0)}
	timeline := []model.Milestone{{Status: model.OrderStatusPendingPickup, Date: order.CreatedAt, Completed: true}}
	return order, timeline, nil
}

// AdminFacadeStub provides dashboard aggregates for tests.
type AdminFacadeStub struct {
	StatsFn     func(context.Context) (*model.OrderStats, error)
	CustomersFn func(context.Context) ([]model.User, error)
}

// OrderStats returns configured counts.
func (s AdminFacadeStub) OrderStats(ctx context.Context) (*model.OrderStats, error) {
	if s.StatsFn != nil {
		return s.StatsFn(ctx)
	}
	return &model.OrderStats{Total: 1, PendingPickup: 1}, nil
}

// Customers returns the configured roster.
func (s AdminFacadeStub) Customers(ctx context.Context) ([]model.User, error) {
	if s.CustomersFn != nil {
		return s.CustomersFn(ctx)
	}
	return []model.User{{ID: "user-1", Email: "ab1@example.com", Role: model.RoleCustomer}}, nil
}

// HealthFacadeStub simulates the store health probe.
type HealthFacadeStub struct {
	HealthFn func(context.Context) error
}

// HealthCheck reports healthy unless configured otherwise.
func (s HealthFacadeStub) HealthCheck(ctx context.Context) error {
	if s.HealthFn != nil {
		return s.HealthFn(ctx)
	}
	return nil
}
