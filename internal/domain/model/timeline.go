package model

import "time"

// Milestone is a named point in an order's derived timeline. Timelines
// are reconstructed from the order's current fields on every read; no
// event log is persisted.
type Milestone struct {
	Status    OrderStatus `json:"status"`
	Date      time.Time   `json:"date"`
	Completed bool        `json:"completed"`
}
