package handlers

import (
	"log/slog"
	"net/http"

	"github.com/xomerch/storefront/internal/api/middleware"
	appErrors "github.com/xomerch/storefront/internal/errors"
	service "github.com/xomerch/storefront/internal/services"
	"github.com/xomerch/storefront/internal/utils/response"
)

type ProductHandler struct {
	productService service.ProductService
}

func NewProductHandler(service service.ProductService) *ProductHandler {
	return &ProductHandler{productService: service}
}

// ListProducts serves the catalog, optionally filtered by ?category=.
// Omitting the parameter or passing "all" returns everything.
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		category := r.URL.Query().Get("category")

		products, err := h.productService.ListProducts(r.Context(), category)
		if err != nil {
			logger.Error("Failed to list products", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, products)
	}
}

func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id := r.PathValue("id")
		if id == "" {
			response.Error(w, appErrors.BadRequestError("Product ID is required"))

			return
		}

		product, err := h.productService.GetProduct(r.Context(), id)
		if err != nil {
			logger.Warn("Product lookup failed", slog.String("id", id), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

// SeedCatalog replaces the catalog with the launch fixtures.
func (h *ProductHandler) SeedCatalog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		count, err := h.productService.SeedCatalog(r.Context())
		if err != nil {
			logger.Error("Catalog seeding failed", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Catalog seeded", slog.Int("count", count))
		response.Success(w, http.StatusOK, map[string]int{"count": count})
	}
}
