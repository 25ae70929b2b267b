package models

// LineItem is one product-and-quantity pairing inside a cart. Display fields
// are denormalized from the product at add time so the cart renders without
// another catalog round trip.
type LineItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"image_url"`
	Quantity  int     `json:"quantity"`
}

// CartView is the API representation of a cart: the line items plus the
// derived values, recomputed from the items on every read.
type CartView struct {
	Items        []LineItem `json:"items"`
	Subtotal     float64    `json:"subtotal"`
	ItemCount    int        `json:"item_count"`
	Notification string     `json:"notification,omitempty"`
}

type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// UpdateQuantityRequest carries the desired quantity verbatim; the cart
// store clamps non-positive values to 1.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}
