package models

import "time"

// ShippingDetails is the transient form collected during checkout. Every
// field is required; email and zip carry shape constraints on top. The
// checkout package enforces these so the form gets a message per field
// rather than a single rejection.
type ShippingDetails struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
	Country   string `json:"country"`
}

// Order is display-only. It exists for the duration of the page view that
// completed it and is never persisted.
type Order struct {
	ID          string     `json:"id"`
	Items       []LineItem `json:"items"`
	TotalMinor  int64      `json:"total_minor"`
	Currency    string     `json:"currency"`
	CompletedAt time.Time  `json:"completed_at"`
}

type CheckoutRequest struct {
	Shipping ShippingDetails `json:"shipping"`
}

type CheckoutResponse struct {
	Order *Order `json:"order"`
}
