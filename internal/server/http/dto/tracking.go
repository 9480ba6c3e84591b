package dto

import (
	"time"

	"github.com/l2drycleaners/cleanpress/internal/domain/model"
)

// TrackingResponse is the public view of an order's progress. It is
// served without authentication, so it carries no customer identity.
type TrackingResponse struct {
	OrderID      string            `json:"order_id"`
	Status       string            `json:"status"`
	PickupDate   time.Time         `json:"pickup_date"`
	DeliveryDate *time.Time        `json:"delivery_date,omitempty"`
	Timeline     []model.Milestone `json:"timeline"`
}
