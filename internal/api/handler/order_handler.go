package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"storefront/internal/api/dto"
	"storefront/internal/pkg/metrics"
	"storefront/internal/service"
)

type OrderHandler struct {
	orderService service.IOrderService
	metrics      *metrics.ServerMetrics
}

func NewOrderHandler(orderService service.IOrderService, m *metrics.ServerMetrics) *OrderHandler {
	if orderService == nil {
		panic("orderService cannot be nil")
	}
	return &OrderHandler{orderService: orderService, metrics: m}
}

// PlaceOrder handles POST /api/v1/orders.
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.PlaceOrderDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.metrics.OrderFailed(dto.KindInvalidRequest)
		writeError(w, http.StatusBadRequest, dto.ErrorBody{
			Kind:    dto.KindInvalidRequest,
			Message: "malformed request body",
		})
		return
	}

	order, err := h.orderService.PlaceOrder(r.Context(), req.ToServiceRequest())
	if err != nil {
		h.writePlaceOrderError(w, err)
		return
	}

	h.metrics.OrderPlaced()
	writeJSON(w, http.StatusCreated, dto.NewPlaceOrderResponse(order))
}

// writePlaceOrderError maps the engine's typed errors onto HTTP statuses:
// 400 for validation/stock/currency problems, 404 for a missing product,
// 500 for everything else (detail stays server-side).
func (h *OrderHandler) writePlaceOrderError(w http.ResponseWriter, err error) {
	var (
		notFound    *service.ProductNotFoundError
		noStock     *service.InsufficientStockError
		invalid     *service.InvalidRequestError
		badCurrency *service.UnsupportedCurrencyError
	)
	switch {
	case errors.As(err, &notFound):
		h.metrics.OrderFailed(dto.KindProductNotFound)
		writeError(w, http.StatusNotFound, dto.ErrorBody{
			Kind:      dto.KindProductNotFound,
			Message:   err.Error(),
			ProductID: notFound.ProductID,
		})
	case errors.As(err, &noStock):
		h.metrics.OrderFailed(dto.KindInsufficientStock)
		writeError(w, http.StatusBadRequest, dto.ErrorBody{
			Kind:      dto.KindInsufficientStock,
			Message:   err.Error(),
			ProductID: noStock.ProductID,
			Available: &noStock.Available,
			Requested: &noStock.Requested,
		})
	case errors.As(err, &invalid):
		h.metrics.OrderFailed(dto.KindInvalidRequest)
		writeError(w, http.StatusBadRequest, dto.ErrorBody{
			Kind:    dto.KindInvalidRequest,
			Message: err.Error(),
			Field:   invalid.Field,
		})
	case errors.As(err, &badCurrency):
		h.metrics.OrderFailed(dto.KindUnsupportedCurrency)
		writeError(w, http.StatusBadRequest, dto.ErrorBody{
			Kind:     dto.KindUnsupportedCurrency,
			Message:  err.Error(),
			Currency: badCurrency.Code,
		})
	default:
		h.metrics.OrderFailed(dto.KindInternalError)
		writeError(w, http.StatusInternalServerError, dto.ErrorBody{
			Kind:    dto.KindInternalError,
			Message: "order could not be placed",
		})
	}
}

// GetOrder handles GET /api/v1/orders/{orderNumber}.
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderNumber := chi.URLParam(r, "orderNumber")

	order, err := h.orderService.GetOrderByNumber(r.Context(), orderNumber)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotExist) {
			writeError(w, http.StatusNotFound, dto.ErrorBody{
				Kind:    dto.KindNotFound,
				Message: "order not found",
			})
			return
		}
		writeError(w, http.StatusInternalServerError, dto.ErrorBody{
			Kind:    dto.KindInternalError,
			Message: "could not load order",
		})
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// ListOrders handles GET /api/v1/orders?email=...
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeError(w, http.StatusBadRequest, dto.ErrorBody{
			Kind:    dto.KindInvalidRequest,
			Message: "email query parameter is required",
			Field:   "email",
		})
		return
	}

	orders, err := h.orderService.GetOrdersByCustomer(r.Context(), email)
	if err != nil {
		writeError(w, http.StatusInternalServerError, dto.ErrorBody{
			Kind:    dto.KindInternalError,
			Message: "could not load orders",
		})
		return
	}

	writeJSON(w, http.StatusOK, orders)
}
