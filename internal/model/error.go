package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON          = "INVALID_JSON"
	ErrCodeMissingField         = "MISSING_FIELD"
	ErrCodeProductNotFound      = "PRODUCT_NOT_FOUND"
	ErrCodeProductOutOfStock    = "PRODUCT_OUT_OF_STOCK"
	ErrCodeInvalidSize          = "INVALID_SIZE"
	ErrCodeEmptyCart            = "EMPTY_CART"
	ErrCodeIncompleteCheckout   = "INCOMPLETE_CHECKOUT"
	ErrCodeInvalidCheckoutState = "INVALID_CHECKOUT_STATE"
	ErrCodeUnknownPaymentMethod = "UNKNOWN_PAYMENT_METHOD"
	ErrCodeSubmissionInProgress = "SUBMISSION_IN_PROGRESS"
	ErrCodeSubmissionFailed     = "SUBMISSION_FAILED"
	ErrCodeInternalError        = "INTERNAL_ERROR"
)

// DomainError is a business-rule violation carrying a stable code.
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
	ErrProductNotFound      = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrProductOutOfStock    = NewDomainError(ErrCodeProductOutOfStock, "Product is out of stock")
	ErrInvalidSize          = NewDomainError(ErrCodeInvalidSize, "Size is not offered for this product")
	ErrEmptyCart            = NewDomainError(ErrCodeEmptyCart, "Cart is empty")
	ErrIncompleteCheckout   = NewDomainError(ErrCodeIncompleteCheckout, "All required checkout fields must be filled in")
	ErrInvalidCheckoutState = NewDomainError(ErrCodeInvalidCheckoutState, "Operation not allowed in the current checkout step")
	ErrUnknownPaymentMethod = NewDomainError(ErrCodeUnknownPaymentMethod, "Unknown payment method")
	ErrSubmissionInProgress = NewDomainError(ErrCodeSubmissionInProgress, "An order submission is already in progress")
)

// SubmissionError reports a failed order submission. Detail carries the
// backend-provided message when the response body included one; the
// user-facing message falls back to a generic one otherwise.
type SubmissionError struct {
	StatusCode int
	Detail     string
}

func (e *SubmissionError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return "There was a problem processing your order. Please try again."
}

// NewSubmissionError creates a submission error from an endpoint reply.
func NewSubmissionError(status int, detail string) *SubmissionError {
	return &SubmissionError{StatusCode: status, Detail: detail}
}
