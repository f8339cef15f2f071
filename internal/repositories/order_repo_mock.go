package repositories

import (
	"sync"

	"ordersvc/internal/models"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
type MockOrderRepository struct {
	orders map[int64]models.Order
	nextID int64
	mu     sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{
		orders: make(map[int64]models.Order),
		nextID: 1,
	}
}

// Save inserts or updates an order, assigning the next free id on insert.
func (r *MockOrderRepository) Save(order *models.Order) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == 0 {
		order.ID = r.nextID
		r.nextID++
	}
	r.orders[order.ID] = *order
	return order, nil
}

// FindByID returns the order with the given id, or (nil, nil) if absent.
func (r *MockOrderRepository) FindByID(id int64) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	return &order, nil
}
