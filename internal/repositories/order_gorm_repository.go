package repositories

import (
	"errors"
	"fmt"
	"ordersvc/internal/models"

	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// Save inserts the order when it has no id yet and updates it otherwise. The
// persisted order is returned with its assigned id.
func (r *GORMOrderRepository) Save(order *models.Order) (*models.Order, error) {
	if err := r.db.Save(order).Error; err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}
	return order, nil
}

// FindByID retrieves a single order by its ID from the database. A missing
// order is reported as (nil, nil), not as an error.
func (r *GORMOrderRepository) FindByID(id int64) (*models.Order, error) {
	var order models.Order
	if err := r.db.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find order by ID %d: %w", id, err)
	}
	return &order, nil
}
