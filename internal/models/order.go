package models

import "time"

// OrderStatus tracks where an order is in its placement lifecycle.
type OrderStatus string

const (
	// OrderStatusCreated is the provisional status written before any remote
	// call is made. It reserves the order id.
	OrderStatusCreated OrderStatus = "CREATED"
	// OrderStatusPlaced means stock was reduced and the payment was accepted.
	OrderStatusPlaced OrderStatus = "PLACED"
	// OrderStatusAttempted means placement finished but inventory reduction or
	// payment failed. The order is kept so a reconciler can retry later.
	OrderStatusAttempted OrderStatus = "ATTEMPTED"
)

// PaymentMode enumerates the payment instruments accepted by the payment service.
type PaymentMode string

const (
	PaymentModeCash   PaymentMode = "CASH"
	PaymentModeUPI    PaymentMode = "UPI"
	PaymentModeCard   PaymentMode = "CARD"
	PaymentModeWallet PaymentMode = "WALLET"
)

// Order represents a purchase order as persisted locally. Every order goes
// through exactly two writes: the provisional insert and one terminal status
// update. ID, ProductID, Quantity, Amount and OrderDate never change after
// the first write.
type Order struct {
	ID        int64       `json:"orderId" gorm:"primaryKey;autoIncrement"`
	ProductID int64       `json:"productId" gorm:"not null"`
	Quantity  int64       `json:"quantity" gorm:"not null"`
	Amount    float64     `json:"amount" gorm:"not null"`
	Status    OrderStatus `json:"orderStatus" gorm:"type:varchar(20);not null"`
	OrderDate time.Time   `json:"orderDate" gorm:"not null"`
}

// OrderRequest is the caller-supplied payload for placing an order. It is
// consumed to build the Order and the PaymentRequest, never stored verbatim.
type OrderRequest struct {
	ProductID   int64       `json:"productId" validate:"required,gt=0"`
	Quantity    int64       `json:"quantity" validate:"required,gt=0"`
	TotalAmount float64     `json:"totalAmount" validate:"gte=0"`
	PaymentMode PaymentMode `json:"paymentMode" validate:"required,oneof=CASH UPI CARD WALLET"`
}

// PaymentRequest is sent to the payment service for a single payment attempt.
// A fresh reference number is generated per attempt; the request itself is
// never persisted locally.
type PaymentRequest struct {
	OrderID         int64       `json:"orderId"`
	Amount          float64     `json:"amount"`
	PaymentMode     PaymentMode `json:"paymentMode"`
	ReferenceNumber string      `json:"referenceNumber"`
}

// ProductDetails is the inventory service's view of a product.
type ProductDetails struct {
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	Quantity    int64   `json:"quantity"`
}

// PaymentDetails is the payment service's view of a payment.
type PaymentDetails struct {
	PaymentID   int64       `json:"paymentId"`
	OrderID     int64       `json:"orderId"`
	PaymentMode PaymentMode `json:"paymentMode"`
	PaymentDate time.Time   `json:"paymentDate"`
	Amount      float64     `json:"amount"`
	Status      string      `json:"status"`
}

// OrderResponse is the composite view returned by the order details read
// path: the stored order merged with the current remote product and payment
// state. It is assembled fresh on every read and never cached.
type OrderResponse struct {
	OrderID        int64           `json:"orderId"`
	Amount         float64         `json:"amount"`
	OrderDate      time.Time       `json:"orderDate"`
	Status         OrderStatus     `json:"orderStatus"`
	ProductDetails *ProductDetails `json:"productDetails"`
	PaymentDetails *PaymentDetails `json:"paymentDetails"`
}
