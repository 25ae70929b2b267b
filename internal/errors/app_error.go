package errors

import (
	"errors"
	"net/http"
)

type AppError struct {
	Code       string
	Message    string
	Detail     string
	StatusCode int
	Err        error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func (e *AppError) WithDetail(detail string) *AppError {
	e.Detail = detail

	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err

	return e
}

const (
	ErrCodeValidation        = "VALIDATION_ERROR"
	ErrCodeBadRequest        = "BAD_REQUEST"
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeUnauthorized      = "UNAUTHORIZED"
	ErrCodeInternal          = "INTERNAL_ERROR"
	ErrCodeDatabaseError     = "DATABASE_ERROR"
	ErrCodeThirdPartyError   = "THIRD_PARTY_ERROR"
	ErrCodeEmptyCart         = "EMPTY_CART"
	ErrCodeCheckoutInFlight  = "CHECKOUT_IN_FLIGHT"
	ErrCodePaymentDeclined   = "PAYMENT_DECLINED"
	ErrCodePaymentNetwork    = "PAYMENT_NETWORK_ERROR"
	ErrCodePaymentValidation = "PAYMENT_VALIDATION_ERROR"
)

func ValidationError(message string) *AppError {
	return NewAppError(ErrCodeValidation, message, http.StatusBadRequest)
}

func BadRequestError(message string) *AppError {
	return NewAppError(ErrCodeBadRequest, message, http.StatusBadRequest)
}

func NotFoundError(message string) *AppError {
	return NewAppError(ErrCodeNotFound, message, http.StatusNotFound)
}

func UnauthorizedError(message string) *AppError {
	return NewAppError(ErrCodeUnauthorized, message, http.StatusUnauthorized)
}

func InternalError(message string) *AppError {
	return NewAppError(ErrCodeInternal, message, http.StatusInternalServerError)
}

func DatabaseError(message string) *AppError {
	return NewAppError(ErrCodeDatabaseError, message, http.StatusInternalServerError)
}

func ThirdPartyError(message string) *AppError {
	return NewAppError(ErrCodeThirdPartyError, message, http.StatusInternalServerError)
}

// EmptyCartError guards checkout entry: an empty cart with no completed
// order short-circuits before any form is rendered.
func EmptyCartError() *AppError {
	return NewAppError(ErrCodeEmptyCart, "Cart is empty", http.StatusConflict)
}

// CheckoutInFlightError is returned when a submit arrives while a payment
// attempt is already outstanding. The second attempt is rejected, never
// queued.
func CheckoutInFlightError() *AppError {
	return NewAppError(ErrCodeCheckoutInFlight, "A payment attempt is already in progress", http.StatusConflict)
}

func PaymentDeclinedError(message string) *AppError {
	return NewAppError(ErrCodePaymentDeclined, message, http.StatusPaymentRequired)
}

func PaymentNetworkError(message string) *AppError {
	return NewAppError(ErrCodePaymentNetwork, message, http.StatusBadGateway)
}

func PaymentValidationError(message string) *AppError {
	return NewAppError(ErrCodePaymentValidation, message, http.StatusBadRequest)
}

func IsAppError(err error) (*AppError, bool) {
	var appError *AppError

	if errors.As(err, &appError) {
		return appError, true
	}

	return nil, false
}
