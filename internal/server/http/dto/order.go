package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest is one service line of a pickup being scheduled.
type OrderItemRequest struct {
	ServiceType string          `json:"service_type"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// CreateOrderRequest describes the pickup scheduling payload.
type CreateOrderRequest struct {
	Items      []OrderItemRequest `json:"items"`
	PickupDate string             `json:"pickup_date"`
}

// UpdateOrderRequest carries the fields an admin may change. Absent
// fields keep their stored values.
type UpdateOrderRequest struct {
	Status       *string `json:"status"`
	DeliveryDate *string `json:"delivery_date"`
}

// OrderItemResponse describes one stored order line.
type OrderItemResponse struct {
	ID          string          `json:"id"`
	ServiceType string          `json:"service_type"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// CustomerContact is the customer projection embedded in order
// responses for the admin dashboard.
type CustomerContact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// OrderResponse describes an order with its lines and customer contact.
type OrderResponse struct {
	ID           string              `json:"id"`
	UserID       string              `json:"user_id"`
	Status       string              `json:"status"`
	Items        []OrderItemResponse `json:"items"`
	TotalAmount  decimal.Decimal     `json:"total_amount"`
	PickupDate   time.Time           `json:"pickup_date"`
	DeliveryDate *time.Time          `json:"delivery_date,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
	Customer     *CustomerContact    `json:"customer,omitempty"`
}
