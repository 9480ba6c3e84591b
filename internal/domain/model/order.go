package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes where an order is in the pickup/delivery cycle.
type OrderStatus string

const (
	OrderStatusPendingPickup    OrderStatus = "PENDING_PICKUP"
	OrderStatusPickedUp         OrderStatus = "PICKED_UP"
	OrderStatusProcessing       OrderStatus = "PROCESSING"
	OrderStatusReadyForDelivery OrderStatus = "READY_FOR_DELIVERY"
	OrderStatusDelivered        OrderStatus = "DELIVERED"
)

// OrderStatuses lists the lifecycle in its canonical sequence.
var OrderStatuses = []OrderStatus{
	OrderStatusPendingPickup,
	OrderStatusPickedUp,
	OrderStatusProcessing,
	OrderStatusReadyForDelivery,
	OrderStatusDelivered,
}

// Valid reports whether the status belongs to the closed set.
func (s OrderStatus) Valid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// rank returns the position of the status within the canonical
// sequence, -1 for unknown values.
func (s OrderStatus) rank() int {
	for i, known := range OrderStatuses {
		if s == known {
			return i
		}
	}
	return -1
}

// AtOrPast reports whether the status has reached the given stage of
// the lifecycle. Unknown statuses have reached nothing.
func (s OrderStatus) AtOrPast(stage OrderStatus) bool {
	r := s.rank()
	return r >= 0 && r >= stage.rank()
}

// Order is a customer's request for cleaning services covering one
// pickup/delivery cycle.
type Order struct {
	ID           string
	UserID       string
	Status       OrderStatus
	Items        []OrderItem
	TotalAmount  decimal.Decimal
	PickupDate   time.Time
	DeliveryDate *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Customer is filled on reads that join the owning user.
	Customer *Contact
}

// OrderItem is a single service line of an order. Price is per unit.
type OrderItem struct {
	ID          string
	OrderID     string
	ServiceType string
	Quantity    int
	Price       decimal.Decimal
}

// Subtotal returns quantity multiplied by unit price.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
