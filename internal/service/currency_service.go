package service

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"storefront/internal/domain/model"
	"storefront/internal/infra/repository"
)

// RateCache is an optional read-through cache in front of the currency
// table. Implementations report a miss instead of an error.
type RateCache interface {
	Get(ctx context.Context, code string) (decimal.Decimal, bool)
	Set(ctx context.Context, code string, rate decimal.Decimal)
}

type ICurrencyService interface {
	// ExchangeRate returns the multiplier from the base currency into code.
	// An empty code means the base currency. Unknown codes yield an
	// UnsupportedCurrencyError.
	ExchangeRate(ctx context.Context, code string) (decimal.Decimal, error)
	BaseCurrency() string
	SupportedCurrencies(ctx context.Context) ([]model.CurrencyRate, error)
}

type CurrencyService struct {
	rates repository.CurrencyRepository
	cache RateCache
	base  string
}

func NewCurrencyService(rates repository.CurrencyRepository, cache RateCache, baseCurrency string) *CurrencyService {
	return &CurrencyService{rates: rates, cache: cache, base: strings.ToUpper(baseCurrency)}
}

var _ ICurrencyService = (*CurrencyService)(nil)

func (s *CurrencyService) BaseCurrency() string {
	return s.base
}

func (s *CurrencyService) ExchangeRate(ctx context.Context, code string) (decimal.Decimal, error) {
	code = strings.ToUpper(code)
	if code == "" || code == s.base {
		return decimal.NewFromInt(1), nil
	}

	if s.cache != nil {
		if rate, ok := s.cache.Get(ctx, code); ok {
			return rate, nil
		}
	}

	rate, err := s.rates.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return decimal.Decimal{}, &UnsupportedCurrencyError{Code: code}
		}
		return decimal.Decimal{}, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, code, rate.Rate)
	}
	return rate.Rate, nil
}

func (s *CurrencyService) SupportedCurrencies(ctx context.Context) ([]model.CurrencyRate, error) {
	return s.rates.List(ctx)
}
