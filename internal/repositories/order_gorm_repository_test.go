package repositories_test

import (
	"testing"
	"time"

	"ordersvc/internal/models"
	"ordersvc/internal/repositories"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupDB opens a fresh in-memory SQLite database with the orders table.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	if err := db.AutoMigrate(&models.Order{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	return db
}

func TestGORMOrderRepository_SaveAssignsID(t *testing.T) {
	repo := repositories.NewGORMOrderRepository(setupDB(t))

	order := &models.Order{
		ProductID: 1,
		Quantity:  10,
		Amount:    200,
		Status:    models.OrderStatusCreated,
		OrderDate: time.Now().UTC(),
	}

	saved, err := repo.Save(order)

	assert.NoError(t, err)
	assert.Greater(t, saved.ID, int64(0))
}

func TestGORMOrderRepository_SaveUpdatesExistingOrder(t *testing.T) {
	repo := repositories.NewGORMOrderRepository(setupDB(t))

	saved, err := repo.Save(&models.Order{
		ProductID: 1,
		Quantity:  10,
		Amount:    200,
		Status:    models.OrderStatusCreated,
		OrderDate: time.Now().UTC(),
	})
	assert.NoError(t, err)

	saved.Status = models.OrderStatusPlaced
	updated, err := repo.Save(saved)
	assert.NoError(t, err)
	assert.Equal(t, saved.ID, updated.ID)

	found, err := repo.FindByID(saved.ID)
	assert.NoError(t, err)
	assert.NotNil(t, found)
	assert.Equal(t, models.OrderStatusPlaced, found.Status)
	assert.Equal(t, int64(10), found.Quantity)
	assert.Equal(t, float64(200), found.Amount)
}

func TestGORMOrderRepository_FindByIDReturnsNilForMissingOrder(t *testing.T) {
	repo := repositories.NewGORMOrderRepository(setupDB(t))

	// Absence is not an error at this layer.
	found, err := repo.FindByID(99)

	assert.NoError(t, err)
	assert.Nil(t, found)
}
