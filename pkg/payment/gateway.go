package payment

import (
	"context"
	"fmt"
	"time"
)

// FailureKind classifies why a charge did not complete.
type FailureKind string

const (
	FailureDeclined  FailureKind = "declined"
	FailureNetwork   FailureKind = "network"
	FailureValidated FailureKind = "validation"
)

// Error is the typed failure a Gateway reports. The cart is left untouched
// by the caller on any of these so the user can edit and retry.
type Error struct {
	Kind    FailureKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}

	return fmt.Sprintf("payment failed: %s", e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Declined(message string, err error) *Error {
	return &Error{Kind: FailureDeclined, Message: message, Err: err}
}

func NetworkFailure(message string, err error) *Error {
	return &Error{Kind: FailureNetwork, Message: message, Err: err}
}

func Rejected(message string, err error) *Error {
	return &Error{Kind: FailureValidated, Message: message, Err: err}
}

// ChargeRequest carries the amount in minor currency units plus the
// billing/shipping details the processor wants.
type ChargeRequest struct {
	AmountMinor int64
	Currency    string
	Description string
	// PaymentMethodID is the tokenized payment method produced by the
	// storefront UI. The demo gateway ignores it.
	PaymentMethodID string
	Email           string
	Name            string
	Address         string
	City            string
	State           string
	ZipCode         string
	Country         string
}

// Confirmation is the processor's acknowledgement of a completed charge.
type Confirmation struct {
	Reference   string
	AmountMinor int64
	ChargedAt   time.Time
}

// Gateway confirms or declines a single charge. Implementations own their
// timeout and retry policy; the storefront dispatches at most one attempt at
// a time and never cancels one in flight.
type Gateway interface {
	Charge(ctx context.Context, req *ChargeRequest) (*Confirmation, error)
}
