package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"storefront/internal/domain/model"
	"storefront/internal/infra/repository"
	"storefront/internal/pkg/util"
)

// OrderNotifier receives the order-created event after a successful
// commit. Best-effort: the engine never fails an order over it.
type OrderNotifier interface {
	NotifyOrderCreated(ctx context.Context, order *model.Order) error
}

type IOrderService interface {
	PlaceOrder(ctx context.Context, req *PlaceOrderRequest) (*model.Order, error)
	GetOrderByNumber(ctx context.Context, orderNumber string) (*model.Order, error)
	GetOrdersByCustomer(ctx context.Context, email string) ([]model.Order, error)
}

type OrderService struct {
	products repository.ProductRepository
	orders   repository.OrderRepository
	currency ICurrencyService
	tx       repository.TxManager
	notifier OrderNotifier
	logger   zerolog.Logger
}

func NewOrderService(
	products repository.ProductRepository,
	orders repository.OrderRepository,
	currency ICurrencyService,
	tx repository.TxManager,
	notifier OrderNotifier,
	logger zerolog.Logger,
) *OrderService {
	return &OrderService{
		products: products,
		orders:   orders,
		currency: currency,
		tx:       tx,
		notifier: notifier,
		logger:   logger,
	}
}

var _ IOrderService = (*OrderService)(nil)

// PlaceOrder converts a validated cart into a persisted order while
// atomically reserving stock for every line item. Either every item is
// validated and reserved and the order committed, or nothing is written.
func (s *OrderService) PlaceOrder(ctx context.Context, req *PlaceOrderRequest) (*model.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// resolved before any unit of work is opened
	rate, err := s.currency.ExchangeRate(ctx, req.Currency)
	if err != nil {
		return nil, err
	}
	currency := req.Currency
	if currency == "" {
		currency = s.currency.BaseCurrency()
	}

	var order *model.Order
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		items, total, err := s.reserveItems(ctx, req.Items, rate)
		if err != nil {
			return err
		}

		order = &model.Order{
			OrderNumber:     util.NewOrderNumber(),
			Items:           items,
			TotalAmount:     total,
			Currency:        currency,
			ExchangeRate:    rate,
			ShippingAddress: req.ShippingAddress,
			Customer:        req.Customer,
			PaymentMethod:   req.PaymentMethod,
			Status:          model.OrderStatusPending,
			PaymentStatus:   paymentStatusFor(req.PaymentMethod),
			OrderDate:       time.Now().UTC(),
		}
		return s.commitOrder(ctx, order)
	})
	if err != nil {
		if isInternal(err) {
			s.logger.Error().Err(err).Str("email", req.Customer.Email).Msg("order placement failed")
		}
		return nil, err
	}

	s.logger.Info().
		Str("order_number", order.OrderNumber).
		Str("total_amount", order.TotalAmount.String()).
		Str("currency", order.Currency).
		Msg("order placed")

	s.notifyCreated(order)
	return order, nil
}

// reserveItems walks the cart in caller order. Each product is loaded with
// a row lock, checked for stock, snapshotted into a line item and
// decremented before the next item is touched. Any failure aborts the
// surrounding transaction, so earlier decrements never survive.
func (s *OrderService) reserveItems(ctx context.Context, reqItems []OrderItemRequest, rate decimal.Decimal) ([]model.OrderItem, decimal.Decimal, error) {
	items := make([]model.OrderItem, 0, len(reqItems))
	total := decimal.Zero

	for _, it := range reqItems {
		product, err := s.products.GetForUpdate(ctx, it.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, decimal.Zero, &ProductNotFoundError{ProductID: it.ProductID}
			}
			return nil, decimal.Zero, err
		}

		if product.Stock < it.Quantity {
			return nil, decimal.Zero, &InsufficientStockError{
				ProductID: it.ProductID,
				Available: product.Stock,
				Requested: it.Quantity,
			}
		}

		unitPrice := product.Price.Mul(rate)
		items = append(items, model.OrderItem{
			ProductID: product.ProductID,
			Name:      product.Name,
			Image:     product.Thumbnail(),
			Price:     unitPrice,
			Quantity:  it.Quantity,
		})
		total = total.Add(unitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))

		product.Stock -= it.Quantity
		if err := s.products.Save(ctx, product); err != nil {
			return nil, decimal.Zero, err
		}
	}

	return items, total, nil
}

// commitOrder persists the aggregate. Exactly one retry, and only for an
// order-number collision: the attempt runs in a savepoint so the failed
// insert does not abort the outer transaction, then the number is
// regenerated with a random suffix. Every other failure is terminal.
func (s *OrderService) commitOrder(ctx context.Context, order *model.Order) error {
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return s.orders.Create(ctx, order)
	})
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrDuplicateOrderNumber) {
		return err
	}

	s.logger.Warn().Str("order_number", order.OrderNumber).Msg("order number collision, retrying once")
	order.OrderNumber = util.DisambiguateOrderNumber(order.OrderNumber)
	return s.orders.Create(ctx, order)
}

func (s *OrderService) notifyCreated(order *model.Order) {
	if s.notifier == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.notifier.NotifyOrderCreated(ctx, order); err != nil {
			s.logger.Warn().Err(err).Str("order_number", order.OrderNumber).
				Msg("order created notification failed")
		}
	}()
}

func (s *OrderService) GetOrderByNumber(ctx context.Context, orderNumber string) (*model.Order, error) {
	order, err := s.orders.GetByNumber(ctx, orderNumber)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrderNotExist
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderService) GetOrdersByCustomer(ctx context.Context, email string) ([]model.Order, error) {
	return s.orders.GetByCustomerEmail(ctx, email)
}

// paymentStatusFor records the upstream authorization outcome: card and
// paypal orders arrive pre-authorized, cash on delivery is collected later.
func paymentStatusFor(method model.PaymentMethod) model.PaymentStatus {
	if method == model.PaymentMethodCOD {
		return model.PaymentStatusPending
	}
	return model.PaymentStatusCompleted
}

// isInternal reports whether err is an unclassified persistence failure
// that deserves a server-side log entry with full detail.
func isInternal(err error) bool {
	var (
		nf *ProductNotFoundError
		is *InsufficientStockError
		ir *InvalidRequestError
		uc *UnsupportedCurrencyError
	)
	return !errors.As(err, &nf) && !errors.As(err, &is) &&
		!errors.As(err, &ir) && !errors.As(err, &uc)
}
