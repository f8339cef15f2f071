package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"ordersvc/internal/models"
	"ordersvc/internal/repositories"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// InventoryService is the surface of the remote inventory service used by the
// orchestrator.
type InventoryService interface {
	ReduceQuantity(ctx context.Context, productID, quantity int64) error
	GetProduct(ctx context.Context, productID int64) (*models.ProductDetails, error)
}

// PaymentService is the surface of the remote payment service used by the
// orchestrator.
type PaymentService interface {
	DoPayment(ctx context.Context, request models.PaymentRequest) (int64, error)
	GetPaymentByOrderID(ctx context.Context, orderID int64) (*models.PaymentDetails, error)
}

// EventPublisher fans terminal order states out to downstream consumers.
type EventPublisher interface {
	PublishOrderPlaced(event models.OrderPlacedEvent) error
}

// OrderService orchestrates the order placement flow and the composite order
// details read path. It is the only writer of an order's status.
type OrderService struct {
	orderRepo repositories.OrderRepository
	inventory InventoryService
	payments  PaymentService
	events    EventPublisher
}

// NewOrderService creates a new OrderService. events may be nil when event
// fan-out is not wired (e.g. in tests).
func NewOrderService(
	orderRepo repositories.OrderRepository,
	inventory InventoryService,
	payments PaymentService,
	events EventPublisher,
) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		inventory: inventory,
		payments:  payments,
		events:    events,
	}
}

// PlaceOrder runs the placement flow:
//
//  1. persist a provisional order, reserving its id
//  2. reduce stock at the inventory service
//  3. submit the payment (skipped when inventory failed)
//  4. persist the terminal status merged from the two outcomes
//
// Once the provisional write has succeeded, PlaceOrder always returns the
// order id: remote failures are folded into the terminal status (ATTEMPTED)
// instead of being raised, so the caller keeps its synchronous "you get an id
// back" contract and a downstream reconciler can retry. Only store failures
// propagate.
func (s *OrderService) PlaceOrder(ctx context.Context, request models.OrderRequest) (int64, error) {
	start := time.Now()

	order := &models.Order{
		ProductID: request.ProductID,
		Quantity:  request.Quantity,
		Amount:    request.TotalAmount,
		Status:    models.OrderStatusCreated,
		OrderDate: time.Now().UTC(),
	}

	// Provisional write: reserves the order id before any remote call so the
	// id is stable across remote failures.
	order, err := s.orderRepo.Save(order)
	if err != nil {
		return 0, fmt.Errorf("failed to create order: %w", err)
	}

	invErr := s.inventory.ReduceQuantity(ctx, order.ProductID, order.Quantity)
	if invErr != nil {
		log.Warn().Err(invErr).Int64("order_id", order.ID).
			Msg("inventory reduction failed, skipping payment")
	}

	var payErr error
	if invErr == nil {
		paymentRequest := models.PaymentRequest{
			OrderID:         order.ID,
			Amount:          order.Amount,
			PaymentMode:     request.PaymentMode,
			ReferenceNumber: uuid.NewString(),
		}

		var paymentID int64
		paymentID, payErr = s.payments.DoPayment(ctx, paymentRequest)
		if payErr != nil {
			log.Warn().Err(payErr).Int64("order_id", order.ID).
				Msg("payment failed, order kept for reconciliation")
		} else {
			log.Info().Int64("order_id", order.ID).Int64("payment_id", paymentID).
				Msg("payment accepted")
		}
	}

	order.Status = terminalStatus(invErr, payErr)

	// Terminal write. An order must never be left without a terminal status,
	// so a store failure here is fatal.
	if _, err := s.orderRepo.Save(order); err != nil {
		return 0, fmt.Errorf("failed to record terminal status for order %d: %w", order.ID, err)
	}

	s.publishPlaced(order)

	ordersPlacedTotal.WithLabelValues(string(order.Status)).Inc()
	orderPlacementSeconds.Observe(time.Since(start).Seconds())

	log.Info().Int64("order_id", order.ID).Str("status", string(order.Status)).
		Msg("order placement finished")
	return order.ID, nil
}

// terminalStatus merges the step outcomes into the terminal order status.
// PLACED requires both remote steps to succeed; every other combination
// terminates the order as ATTEMPTED. Stock is deliberately not restored when
// payment fails.
func terminalStatus(invErr, payErr error) models.OrderStatus {
	if invErr == nil && payErr == nil {
		return models.OrderStatusPlaced
	}
	return models.OrderStatusAttempted
}

func (s *OrderService) publishPlaced(order *models.Order) {
	if s.events == nil {
		return
	}

	event := models.OrderPlacedEvent{
		OrderID:   order.ID,
		ProductID: order.ProductID,
		Quantity:  order.Quantity,
		Amount:    order.Amount,
		Status:    order.Status,
		PlacedAt:  time.Now().UTC(),
	}
	if err := s.events.PublishOrderPlaced(event); err != nil {
		// Event fan-out must not break the "always return an id" contract.
		log.Error().Err(err).Int64("order_id", order.ID).
			Msg("failed to publish order event")
	}
}

// GetOrderDetails assembles the composite order view from the local store and
// the two remote services. It never mutates stored state and never caches:
// product and payment details are re-fetched on every call.
func (s *OrderService) GetOrderDetails(ctx context.Context, orderID int64) (*models.OrderResponse, error) {
	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up order %d: %w", orderID, err)
	}
	if order == nil {
		return nil, &Error{
			Code:    CodeOrderNotFound,
			Status:  http.StatusNotFound,
			Message: fmt.Sprintf("order with id %d not found", orderID),
		}
	}

	product, err := s.inventory.GetProduct(ctx, order.ProductID)
	if err != nil {
		return nil, &Error{
			Code:    CodeProductServiceUnavailable,
			Status:  http.StatusInternalServerError,
			Message: fmt.Sprintf("could not fetch product %d", order.ProductID),
			Err:     err,
		}
	}

	payment, err := s.payments.GetPaymentByOrderID(ctx, order.ID)
	if err != nil {
		return nil, &Error{
			Code:    CodePaymentServiceUnavailable,
			Status:  http.StatusInternalServerError,
			Message: fmt.Sprintf("could not fetch payment for order %d", order.ID),
			Err:     err,
		}
	}

	return &models.OrderResponse{
		OrderID:        order.ID,
		Amount:         order.Amount,
		OrderDate:      order.OrderDate,
		Status:         order.Status,
		ProductDetails: product,
		PaymentDetails: payment,
	}, nil
}
