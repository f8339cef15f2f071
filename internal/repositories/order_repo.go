package repositories

import (
	"ordersvc/internal/models"
)

// OrderRepository defines the interface for order data access.
//
// FindByID returns (nil, nil) when no order exists for the id: absence is not
// an error at this layer, the caller decides what a missing order means.
type OrderRepository interface {
	Save(order *models.Order) (*models.Order, error)
	FindByID(id int64) (*models.Order, error)
}
