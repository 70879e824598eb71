package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/model"
	"storefront/internal/infra/repository"
)

type fakeCurrencyRepo struct {
	rates map[string]decimal.Decimal
	calls int
}

func (f *fakeCurrencyRepo) GetByCode(_ context.Context, code string) (*model.CurrencyRate, error) {
	f.calls++
	rate, ok := f.rates[code]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &model.CurrencyRate{Code: code, Rate: rate}, nil
}

func (f *fakeCurrencyRepo) Upsert(_ context.Context, rate *model.CurrencyRate) error {
	f.rates[rate.Code] = rate.Rate
	return nil
}

func (f *fakeCurrencyRepo) List(context.Context) ([]model.CurrencyRate, error) {
	out := make([]model.CurrencyRate, 0, len(f.rates))
	for code, rate := range f.rates {
		out = append(out, model.CurrencyRate{Code: code, Rate: rate})
	}
	return out, nil
}

type fakeRateCache struct {
	entries map[string]decimal.Decimal
	hits    int
}

func (c *fakeRateCache) Get(_ context.Context, code string) (decimal.Decimal, bool) {
	rate, ok := c.entries[code]
	if ok {
		c.hits++
	}
	return rate, ok
}

func (c *fakeRateCache) Set(_ context.Context, code string, rate decimal.Decimal) {
	c.entries[code] = rate
}

func TestExchangeRate_BaseCurrencyIsIdentity(t *testing.T) {
	repo := &fakeCurrencyRepo{rates: map[string]decimal.Decimal{}}
	svc := NewCurrencyService(repo, nil, "usd")

	require.Equal(t, "USD", svc.BaseCurrency())

	for _, code := range []string{"", "USD", "usd"} {
		rate, err := svc.ExchangeRate(context.Background(), code)
		require.NoError(t, err)
		require.True(t, rate.Equal(decimal.NewFromInt(1)))
	}
	require.Zero(t, repo.calls, "the base currency never hits the store")
}

func TestExchangeRate_LooksUpAndCaches(t *testing.T) {
	repo := &fakeCurrencyRepo{rates: map[string]decimal.Decimal{
		"EGP": decimal.RequireFromString("30.9"),
	}}
	cache := &fakeRateCache{entries: map[string]decimal.Decimal{}}
	svc := NewCurrencyService(repo, cache, "USD")

	rate, err := svc.ExchangeRate(context.Background(), "egp")
	require.NoError(t, err)
	require.True(t, rate.Equal(decimal.RequireFromString("30.9")))
	require.Equal(t, 1, repo.calls)

	// second lookup is served from the cache
	rate, err = svc.ExchangeRate(context.Background(), "EGP")
	require.NoError(t, err)
	require.True(t, rate.Equal(decimal.RequireFromString("30.9")))
	require.Equal(t, 1, repo.calls)
	require.Equal(t, 1, cache.hits)
}

func TestExchangeRate_UnknownCode(t *testing.T) {
	repo := &fakeCurrencyRepo{rates: map[string]decimal.Decimal{}}
	svc := NewCurrencyService(repo, nil, "USD")

	_, err := svc.ExchangeRate(context.Background(), "XXX")

	var curErr *UnsupportedCurrencyError
	require.ErrorAs(t, err, &curErr)
	require.Equal(t, "XXX", curErr.Code)
}

func TestSupportedCurrencies(t *testing.T) {
	repo := &fakeCurrencyRepo{rates: map[string]decimal.Decimal{
		"EUR": decimal.RequireFromString("0.9"),
		"EGP": decimal.RequireFromString("30.9"),
	}}
	svc := NewCurrencyService(repo, nil, "USD")

	rates, err := svc.SupportedCurrencies(context.Background())
	require.NoError(t, err)
	require.Len(t, rates, 2)
}
