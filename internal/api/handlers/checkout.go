package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/xomerch/storefront/internal/api/middleware"
	"github.com/xomerch/storefront/internal/checkout"
	appErrors "github.com/xomerch/storefront/internal/errors"
	"github.com/xomerch/storefront/internal/models"
	service "github.com/xomerch/storefront/internal/services"
	"github.com/xomerch/storefront/internal/utils"
	"github.com/xomerch/storefront/internal/utils/response"
)

type CheckoutHandler struct {
	checkoutService *service.CheckoutService
	validator       *validator.Validate
}

func NewCheckoutHandler(service *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: service,
		validator:       validator.New(),
	}
}

// Enter applies the empty-cart guard before the form renders. A session
// that already completed an order this view still gets its confirmation.
func (h *CheckoutHandler) Enter() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID := middleware.SessionID(w, r)

		if err := h.checkoutService.Enter(r.Context(), sessionID); err != nil {
			response.Error(w, err)

			return
		}

		if order := h.checkoutService.CompletedOrder(sessionID); order != nil {
			response.Success(w, http.StatusOK, models.CheckoutResponse{Order: order})

			return
		}

		response.Success(w, http.StatusOK, models.CheckoutResponse{})
	}
}

// ValidateField gives per-field feedback while the user types.
func (h *CheckoutHandler) ValidateField() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		field := r.URL.Query().Get("field")
		if field == "" {
			response.Error(w, appErrors.BadRequestError("field parameter is required"))

			return
		}

		value := r.URL.Query().Get("value")

		if msg := h.checkoutService.ValidateField(field, value); msg != "" {
			response.FieldValidationError(w, map[string]string{field: msg})

			return
		}

		response.Success(w, http.StatusOK, nil)
	}
}

// Submit runs the single payment attempt for the session's cart.
func (h *CheckoutHandler) Submit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		sessionID := middleware.SessionID(w, r)

		var req models.CheckoutRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		paymentMethodID := r.Header.Get("X-Payment-Method")

		order, err := h.checkoutService.Submit(r.Context(), sessionID, &req, paymentMethodID)
		if err != nil {

			var fieldErrs checkout.FieldErrors
			if errors.As(err, &fieldErrs) {
				response.FieldValidationError(w, fieldErrs)

				return
			}

			logger.Warn("Checkout submission failed", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Order completed", slog.String("orderId", order.ID))
		response.Success(w, http.StatusOK, models.CheckoutResponse{Order: order})
	}
}
