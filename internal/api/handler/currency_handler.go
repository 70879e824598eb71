package handler

import (
	"net/http"

	"storefront/internal/api/dto"
	"storefront/internal/service"
)

type CurrencyHandler struct {
	currencyService service.ICurrencyService
}

func NewCurrencyHandler(currencyService service.ICurrencyService) *CurrencyHandler {
	if currencyService == nil {
		panic("currencyService cannot be nil")
	}
	return &CurrencyHandler{currencyService: currencyService}
}

// ListCurrencies handles GET /api/v1/currencies.
func (h *CurrencyHandler) ListCurrencies(w http.ResponseWriter, r *http.Request) {
	rates, err := h.currencyService.SupportedCurrencies(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, dto.ErrorBody{
			Kind:    dto.KindInternalError,
			Message: "could not load currencies",
		})
		return
	}
	writeJSON(w, http.StatusOK, rates)
}
