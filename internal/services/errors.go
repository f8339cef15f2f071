package services

import "fmt"

// Error codes surfaced by the order read path.
const (
	CodeOrderNotFound             = "ORDER_NOT_FOUND"
	CodeProductServiceUnavailable = "PRODUCT_SERVICE_UNAVAILABLE"
	CodePaymentServiceUnavailable = "PAYMENT_SERVICE_UNAVAILABLE"
)

// Error is a service-level failure carrying a fixed code and the
// HTTP-equivalent status the boundary layer should translate it to.
type Error struct {
	Code    string
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}
