package clients_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ordersvc/internal/clients"
	"ordersvc/internal/models"

	"github.com/stretchr/testify/assert"
)

func newBaseClient() *clients.Client {
	return clients.NewClient(&http.Client{Timeout: 2 * time.Second}, clients.StaticTokenSource("test-token"))
}

func TestInventoryClient_ReduceQuantity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/product/reduce-quantity/1", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("quantity"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := clients.NewInventoryClient(newBaseClient(), server.URL)

	err := client.ReduceQuantity(context.Background(), 1, 10)
	assert.NoError(t, err)
}

func TestInventoryClient_ReduceQuantityNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := clients.NewInventoryClient(newBaseClient(), server.URL)

	err := client.ReduceQuantity(context.Background(), 1, 10)
	assert.Error(t, err)
}

func TestInventoryClient_GetProduct(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/product/2", r.URL.Path)
		json.NewEncoder(w).Encode(models.ProductDetails{
			ProductID:   2,
			ProductName: "iPhone",
			Price:       1100,
			Quantity:    10,
		})
	}))
	defer server.Close()

	client := clients.NewInventoryClient(newBaseClient(), server.URL)

	product, err := client.GetProduct(context.Background(), 2)
	assert.NoError(t, err)
	assert.Equal(t, &models.ProductDetails{ProductID: 2, ProductName: "iPhone", Price: 1100, Quantity: 10}, product)
}

func TestPaymentClient_DoPayment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/payment", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var request models.PaymentRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		assert.Equal(t, int64(1), request.OrderID)
		assert.Equal(t, models.PaymentModeCash, request.PaymentMode)
		assert.NotEmpty(t, request.ReferenceNumber)

		// The payment service responds with the bare payment id.
		json.NewEncoder(w).Encode(int64(42))
	}))
	defer server.Close()

	client := clients.NewPaymentClient(newBaseClient(), server.URL)

	paymentID, err := client.DoPayment(context.Background(), models.PaymentRequest{
		OrderID:         1,
		Amount:          200,
		PaymentMode:     models.PaymentModeCash,
		ReferenceNumber: "ref-123",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(42), paymentID)
}

func TestPaymentClient_DoPaymentRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := clients.NewPaymentClient(newBaseClient(), server.URL)

	paymentID, err := client.DoPayment(context.Background(), models.PaymentRequest{OrderID: 1})
	assert.Error(t, err)
	assert.Equal(t, int64(0), paymentID)
}

func TestPaymentClient_GetPaymentByOrderID(t *testing.T) {
	paymentDate := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payment/7", r.URL.Path)
		json.NewEncoder(w).Encode(models.PaymentDetails{
			PaymentID:   1,
			OrderID:     7,
			PaymentMode: models.PaymentModeCash,
			PaymentDate: paymentDate,
			Amount:      200,
			Status:      "ACCEPTED",
		})
	}))
	defer server.Close()

	client := clients.NewPaymentClient(newBaseClient(), server.URL)

	payment, err := client.GetPaymentByOrderID(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), payment.PaymentID)
	assert.Equal(t, int64(7), payment.OrderID)
	assert.Equal(t, "ACCEPTED", payment.Status)
	assert.True(t, payment.PaymentDate.Equal(paymentDate))
}

func TestClient_TimeoutResolvesToError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	base := clients.NewClient(&http.Client{Timeout: 50 * time.Millisecond}, clients.StaticTokenSource("test-token"))
	client := clients.NewInventoryClient(base, server.URL)

	// A timed-out call must resolve to a failure, not hang.
	err := client.ReduceQuantity(context.Background(), 1, 1)
	assert.Error(t, err)
}
