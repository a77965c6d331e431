package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON      = "INVALID_JSON"
	ErrCodeValidation       = "VALIDATION_ERROR"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeUnauthorised     = "UNAUTHORIZED"
	ErrCodeInvalidSignature = "INVALID_SIGNATURE"
	ErrCodeInvalidStatus    = "INVALID_STATUS"
	ErrCodeAdapterError     = "ADAPTER_ERROR"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// DomainError carries a stable error code alongside a human-readable message.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound     = NewDomainError(ErrCodeNotFound, "One or more products not found")
	ErrCategoryNotFound    = NewDomainError(ErrCodeNotFound, "Category not found")
	ErrOrderNotFound       = NewDomainError(ErrCodeNotFound, "Order not found")
	ErrCartEntryNotFound   = NewDomainError(ErrCodeNotFound, "Cart entry not found")
	ErrUserNotFound        = NewDomainError(ErrCodeNotFound, "User not found")
	ErrEmptyCart           = NewDomainError(ErrCodeValidation, "Cart is empty")
	ErrInvalidQuantity     = NewDomainError(ErrCodeValidation, "Quantity must be greater than zero")
	ErrInvalidAmount       = NewDomainError(ErrCodeValidation, "Amount must be greater than zero")
	ErrInvalidSignature    = NewDomainError(ErrCodeInvalidSignature, "Payment signature verification failed")
	ErrInvalidStatus       = NewDomainError(ErrCodeInvalidStatus, "Order status is not one of the allowed values")
	ErrUnauthorised        = NewDomainError(ErrCodeUnauthorised, "Missing or invalid credentials")
	ErrEmailTaken          = NewDomainError(ErrCodeValidation, "Email is already registered")
	ErrPaymentUnavailable  = NewDomainError(ErrCodeAdapterError, "Payment gateway is not configured")
	ErrShippingUnavailable = NewDomainError(ErrCodeAdapterError, "Shipping carrier is not configured")
	ErrPaymentAdapter      = NewDomainError(ErrCodeAdapterError, "Payment gateway request failed")
	ErrShippingAdapter     = NewDomainError(ErrCodeAdapterError, "Shipping carrier request failed")
)
