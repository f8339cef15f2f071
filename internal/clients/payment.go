package clients

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"ordersvc/internal/models"
)

// PaymentClient calls the remote payment service.
type PaymentClient struct {
	base    *Client
	baseURL string
}

// NewPaymentClient creates a new PaymentClient for the given base URL.
func NewPaymentClient(base *Client, baseURL string) *PaymentClient {
	return &PaymentClient{
		base:    base,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// DoPayment submits a payment request and returns the payment id assigned by
// the payment service. Transport errors, timeouts and non-2xx statuses all
// surface as errors.
func (c *PaymentClient) DoPayment(ctx context.Context, request models.PaymentRequest) (int64, error) {
	endpoint := c.baseURL + "/payment"
	var paymentID int64
	if err := c.base.do(ctx, http.MethodPost, endpoint, request, &paymentID); err != nil {
		return 0, fmt.Errorf("failed to submit payment for order %d: %w", request.OrderID, err)
	}
	return paymentID, nil
}

// GetPaymentByOrderID fetches the payment recorded for an order.
func (c *PaymentClient) GetPaymentByOrderID(ctx context.Context, orderID int64) (*models.PaymentDetails, error) {
	endpoint := fmt.Sprintf("%s/payment/%d", c.baseURL, orderID)
	var payment models.PaymentDetails
	if err := c.base.do(ctx, http.MethodGet, endpoint, nil, &payment); err != nil {
		return nil, fmt.Errorf("failed to get payment for order %d: %w", orderID, err)
	}
	return &payment, nil
}
