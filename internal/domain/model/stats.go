package model

// OrderStats aggregates order counts for the admin dashboard.
type OrderStats struct {
	Total            int `json:"total_orders"`
	PendingPickup    int `json:"pending_pickup"`
	PickedUp         int `json:"picked_up"`
	Processing       int `json:"processing"`
	ReadyForDelivery int `json:"ready_for_delivery"`
	Delivered        int `json:"delivered"`
}
