package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/xomerch/storefront/internal/api/middleware"
	appErrors "github.com/xomerch/storefront/internal/errors"
	"github.com/xomerch/storefront/internal/models"
	service "github.com/xomerch/storefront/internal/services"
	"github.com/xomerch/storefront/internal/utils"
	"github.com/xomerch/storefront/internal/utils/response"
)

type CartHandler struct {
	cartService *service.CartService
	validator   *validator.Validate
}

func NewCartHandler(service *service.CartService) *CartHandler {
	return &CartHandler{
		cartService: service,
		validator:   validator.New(),
	}
}

func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID := middleware.SessionID(w, r)

		view := h.cartService.GetCart(r.Context(), sessionID)

		response.Success(w, http.StatusOK, view)
	}
}

func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		sessionID := middleware.SessionID(w, r)

		var req models.AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		view, err := h.cartService.AddItem(r.Context(), sessionID, &req)
		if err != nil {
			logger.Warn("Failed to add item to cart",
				slog.String("productId", req.ProductID),
				slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, view)
	}
}

func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID := middleware.SessionID(w, r)

		productID := r.PathValue("id")
		if productID == "" {
			response.Error(w, appErrors.BadRequestError("Product ID is required"))

			return
		}

		var req models.UpdateQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		view := h.cartService.UpdateQuantity(r.Context(), sessionID, productID, req.Quantity)

		response.Success(w, http.StatusOK, view)
	}
}

func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID := middleware.SessionID(w, r)

		productID := r.PathValue("id")
		if productID == "" {
			response.Error(w, appErrors.BadRequestError("Product ID is required"))

			return
		}

		view := h.cartService.RemoveItem(r.Context(), sessionID, productID)

		response.Success(w, http.StatusOK, view)
	}
}

func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID := middleware.SessionID(w, r)

		view := h.cartService.ClearCart(r.Context(), sessionID)

		response.Success(w, http.StatusOK, view)
	}
}
