package dto

// Machine-readable error kinds surfaced to API clients.
const (
	KindProductNotFound     = "ProductNotFound"
	KindInsufficientStock   = "InsufficientStock"
	KindInvalidRequest      = "InvalidRequest"
	KindUnsupportedCurrency = "UnsupportedCurrency"
	KindInternalError       = "InternalError"
	KindNotFound            = "NotFound"
)

type ErrorBody struct {
	Kind      string `json:"kind"`
	Message   string `json:"message"`
	Field     string `json:"field,omitempty"`
	ProductID uint   `json:"product_id,omitempty"`
	Currency  string `json:"currency,omitempty"`
	Available *int   `json:"available,omitempty"`
	Requested *int   `json:"requested,omitempty"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}
