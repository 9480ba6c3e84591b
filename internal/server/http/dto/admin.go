package dto

import "github.com/shopspring/decimal"

// StatsResponse aggregates order counts for the admin dashboard.
type StatsResponse struct {
	TotalOrders      int `json:"total_orders"`
	PendingPickup    int `json:"pending_pickup"`
	PickedUp         int `json:"picked_up"`
	Processing       int `json:"processing"`
	ReadyForDelivery int `json:"ready_for_delivery"`
	Delivered        int `json:"delivered"`
}

// ServiceResponse describes one catalog entry.
type ServiceResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	BasePrice   decimal.Decimal `json:"base_price"`
	Unit        string          `json:"unit"`
}
