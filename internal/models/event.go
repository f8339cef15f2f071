package models

import "time"

// OrderPlacedEvent is published after an order reaches its terminal status.
// Downstream consumers use it to pick up ATTEMPTED orders for reconciliation.
type OrderPlacedEvent struct {
	OrderID   int64       `json:"orderId"`
	ProductID int64       `json:"productId"`
	Quantity  int64       `json:"quantity"`
	Amount    float64     `json:"amount"`
	Status    OrderStatus `json:"orderStatus"`
	PlacedAt  time.Time   `json:"placedAt"`
}
