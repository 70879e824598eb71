package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"storefront/internal/api/dto"
	"storefront/internal/service"
)

type ProductHandler struct {
	productService service.IProductService
}

func NewProductHandler(productService service.IProductService) *ProductHandler {
	if productService == nil {
		panic("productService cannot be nil")
	}
	return &ProductHandler{productService: productService}
}

// ListProducts handles GET /api/v1/products.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.ListProducts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, dto.ErrorBody{
			Kind:    dto.KindInternalError,
			Message: "could not load products",
		})
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// GetProduct handles GET /api/v1/products/{productID}.
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, dto.ErrorBody{
			Kind:    dto.KindInvalidRequest,
			Message: "product id must be a positive integer",
			Field:   "productID",
		})
		return
	}

	product, err := h.productService.GetProduct(r.Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrProductNotExist) {
			writeError(w, http.StatusNotFound, dto.ErrorBody{
				Kind:      dto.KindProductNotFound,
				Message:   "product not found",
				ProductID: uint(id),
			})
			return
		}
		writeError(w, http.StatusInternalServerError, dto.ErrorBody{
			Kind:    dto.KindInternalError,
			Message: "could not load product",
		})
		return
	}

	writeJSON(w, http.StatusOK, product)
}
