package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/l2drycleaners/cleanpress/internal/domain/model"
)

// NewOrderItem carries one service line of an order being created.
type NewOrderItem struct {
	ServiceType string
	Quantity    int
	Price       decimal.Decimal
}

// OrderUpdate carries the fields an admin may change on an order. Nil
// fields are left untouched.
type OrderUpdate struct {
	Status       *model.OrderStatus
	DeliveryDate *time.Time
}

// OrderRepository describes persistence operations with orders. Reads
// return orders with their items and the owning customer's contact
// projection attached.
type OrderRepository interface {
	Create(ctx context.Context, userID string, pickupDate time.Time, total decimal.Decimal, items []NewOrderItem) (*model.Order, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	ListByUser(ctx context.Context, userID string) ([]model.Order, error)
	Update(ctx context.Context, id string, update OrderUpdate) (*model.Order, error)
	CountByStatus(ctx context.Context) (map[model.OrderStatus]int, error)
}
