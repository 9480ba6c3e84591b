package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/l2drycleaners/cleanpress/internal/domain/errors"
	"github.com/l2drycleaners/cleanpress/internal/domain/model"
	"github.com/l2drycleaners/cleanpress/internal/domain/repository"
	pkgAuth "github.com/l2drycleaners/cleanpress/internal/pkg/auth"
)

// ItemInput is one service line of an order being scheduled.
type ItemInput struct {
	ServiceType string
	Quantity    int
	Price       decimal.Decimal
}

// UpdateInput carries the fields an admin may change on an order.
type UpdateInput struct {
	Status       *model.OrderStatus
	DeliveryDate *time.Time
}

// OrderUseCase owns the order lifecycle: creation with total
// computation, privileged status transitions, and role-scoped reads.
type OrderUseCase struct {
	orders repository.OrderRepository
	users  repository.UserRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, users repository.UserRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, users: users}
}

// Create schedules a new pickup. The total is computed once here as the
// sum of quantity times unit price; it is never recomputed afterwards.
func (u *OrderUseCase) Create(ctx context.Context, userID string, items []ItemInput, pickupDate string) (*model.Order, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", domainErrors.ErrInvalidInput)
	}
	if err := validateItems(items); err != nil {
		return nil, err
	}
	pickup, err := ParseDate(pickupDate)
	if err != nil {
		return nil, err
	}

	if _, err := u.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	total := decimal.Zero
	lines := make([]repository.NewOrderItem, 0, len(items))
	for _, item := range items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		lines = append(lines, repository.NewOrderItem{
			ServiceType: item.ServiceType,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}

	return u.orders.Create(ctx, userID, pickup, total, lines)
}

// Update applies an admin transition. Any member of the status set may
// be assigned from any other; the lifecycle deliberately does not
// enforce a transition table.
func (u *OrderUseCase) Update(ctx context.Context, orderID string, actor pkgAuth.Claims, input UpdateInput) (*model.Order, error) {
	if actor.Role != model.RoleAdmin {
		return nil, domainErrors.ErrForbidden
	}
	if orderID == "" {
		return nil, fmt.Errorf("%w: order id is required", domainErrors.ErrInvalidInput)
	}
	if input.Status != nil && !input.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domainErrors.ErrInvalidInput, *input.Status)
	}

	return u.orders.Update(ctx, orderID, repository.OrderUpdate{
		Status:       input.Status,
		DeliveryDate: input.DeliveryDate,
	})
}

// Get returns the order with items and customer projection.
func (u *OrderUseCase) Get(ctx context.Context, orderID string) (*model.Order, error) {
	return u.orders.GetByID(ctx, orderID)
}

// List returns orders visible to the actor, newest first. Admins see
// everything and may narrow by user; customers only ever see their own
// orders, whatever filter they ask for.
func (u *OrderUseCase) List(ctx context.Context, actor pkgAuth.Claims, filterUserID string) ([]model.Order, error) {
	if actor.Role == model.RoleAdmin {
		if filterUserID != "" {
			return u.orders.ListByUser(ctx, filterUserID)
		}
		return u.orders.ListAll(ctx)
	}
	return u.orders.ListByUser(ctx, actor.UserID)
}

// Stats aggregates order counts for the admin dashboard.
func (u *OrderUseCase) Stats(ctx context.Context) (*model.OrderStats, error) {
	counts, err := u.orders.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	stats := model.OrderStats{
		PendingPickup:    counts[model.OrderStatusPendingPickup],
		PickedUp:         counts[model.OrderStatusPickedUp],
		Processing:       counts[model.OrderStatusProcessing],
		ReadyForDelivery: counts[model.OrderStatusReadyForDelivery],
		Delivered:        counts[model.OrderStatusDelivered],
	}
	for _, n := range counts {
		stats.Total += n
	}
	return &stats, nil
}
