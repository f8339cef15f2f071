package handlers

import (
	"errors"

	"ordersvc/internal/models"
	"ordersvc/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Post("/", h.HandlePlaceOrder)
	orderRoutes.Get("/:id", h.HandleGetOrderDetails)
}

// HandlePlaceOrder places a new order and responds with its id. The response
// is 201 regardless of the remote payment outcome; the persisted order status
// carries that information.
func (h *OrderHandler) HandlePlaceOrder(c *fiber.Ctx) error {
	var request models.OrderRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid order request",
			"error":   err.Error(),
		})
	}

	orderID, err := h.service.PlaceOrder(c.UserContext(), request)
	if err != nil {
		log.Error().Err(err).Msg("failed to place order")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not place order",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"orderId": orderID,
	})
}

// HandleGetOrderDetails returns the composite order view for an order id.
func (h *OrderHandler) HandleGetOrderDetails(c *fiber.Ctx) error {
	orderID, err := c.ParamsInt("id")
	if err != nil || orderID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Order id must be a positive integer",
		})
	}

	response, err := h.service.GetOrderDetails(c.UserContext(), int64(orderID))
	if err != nil {
		var svcErr *services.Error
		if errors.As(err, &svcErr) {
			return c.Status(svcErr.Status).JSON(fiber.Map{
				"errorCode": svcErr.Code,
				"message":   svcErr.Message,
			})
		}
		log.Error().Err(err).Int("order_id", orderID).Msg("failed to get order details")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve order",
			"error":   err.Error(),
		})
	}

	return c.JSON(response)
}
