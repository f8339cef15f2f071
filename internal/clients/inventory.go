package clients

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"ordersvc/internal/models"
)

// InventoryClient calls the remote inventory service.
type InventoryClient struct {
	base    *Client
	baseURL string
}

// NewInventoryClient creates a new InventoryClient for the given base URL.
func NewInventoryClient(base *Client, baseURL string) *InventoryClient {
	return &InventoryClient{
		base:    base,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// ReduceQuantity decrements stock for a product. The call is not retried and
// not compensated here; the orchestrator decides what a failure means.
func (c *InventoryClient) ReduceQuantity(ctx context.Context, productID, quantity int64) error {
	endpoint := fmt.Sprintf("%s/product/reduce-quantity/%d?quantity=%d", c.baseURL, productID, quantity)
	if err := c.base.do(ctx, http.MethodPut, endpoint, nil, nil); err != nil {
		return fmt.Errorf("failed to reduce quantity for product %d: %w", productID, err)
	}
	return nil
}

// GetProduct fetches the inventory service's current view of a product.
func (c *InventoryClient) GetProduct(ctx context.Context, productID int64) (*models.ProductDetails, error) {
	endpoint := fmt.Sprintf("%s/product/%d", c.baseURL, productID)
	var product models.ProductDetails
	if err := c.base.do(ctx, http.MethodGet, endpoint, nil, &product); err != nil {
		return nil, fmt.Errorf("failed to get product %d: %w", productID, err)
	}
	return &product, nil
}
