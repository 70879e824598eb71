package api

import "storefront/internal/api/handler"

type Server struct {
	OrderHandler    *handler.OrderHandler
	ProductHandler  *handler.ProductHandler
	CurrencyHandler *handler.CurrencyHandler
}

func NewServer(
	orderHandler *handler.OrderHandler,
	productHandler *handler.ProductHandler,
	currencyHandler *handler.CurrencyHandler,
) *Server {
	return &Server{
		OrderHandler:    orderHandler,
		ProductHandler:  productHandler,
		CurrencyHandler: currencyHandler,
	}
}
