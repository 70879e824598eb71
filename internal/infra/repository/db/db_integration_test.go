package db

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"storefront/internal/domain/model"
	"storefront/internal/infra/repository"
)

// Runs against a live postgres. Point STOREFRONT_TEST_DB_HOST at one to
// enable, e.g.:
//
//	STOREFRONT_TEST_DB_HOST=localhost STOREFRONT_TEST_DB_NAME=storefront_test go test ./internal/infra/repository/db/
type RepoTestSuite struct {
	suite.Suite
	db           *gorm.DB
	dao          *DbDao
	productRepo  *ProductRepo
	orderRepo    *OrderRepo
	currencyRepo *CurrencyRepo
}

func testEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (s *RepoTestSuite) SetupSuite() {
	host := os.Getenv("STOREFRONT_TEST_DB_HOST")
	if host == "" {
		s.T().Skip("STOREFRONT_TEST_DB_HOST not set")
	}

	db, err := GetDbConn(
		testEnv("STOREFRONT_TEST_DB_NAME", "storefront_test"),
		host,
		testEnv("STOREFRONT_TEST_DB_PORT", "5432"),
		testEnv("STOREFRONT_TEST_DB_USER", "postgres"),
		testEnv("STOREFRONT_TEST_DB_PAS", "password"),
	)
	require.NoError(s.T(), err)

	dao := NewDbDao(db)
	require.NoError(s.T(), dao.InitMigrate())

	s.db = db
	s.dao = dao
	s.productRepo = NewProductRepo(dao)
	s.orderRepo = NewOrderRepo(dao)
	s.currencyRepo = NewCurrencyRepo(dao)
}

func (s *RepoTestSuite) SetupTest() {
	s.db.Exec("DELETE FROM order_items")
	s.db.Exec("DELETE FROM orders")
	s.db.Exec("DELETE FROM products")
	s.db.Exec("DELETE FROM currency_rates")
}

func (s *RepoTestSuite) TearDownSuite() {
	if s.db == nil {
		return
	}
	sqlDB, _ := s.db.DB()
	sqlDB.Close()
}

func (s *RepoTestSuite) createTestProduct(name string, price string, stock int) *model.Product {
	product := &model.Product{
		Name:   name,
		Price:  decimal.RequireFromString(price),
		Stock:  stock,
		Images: []string{"thumb.jpg"},
	}
	require.NoError(s.T(), s.productRepo.Create(context.Background(), product))
	return product
}

func (s *RepoTestSuite) buildOrder(number string, productID uint) *model.Order {
	return &model.Order{
		OrderNumber: number,
		Items: []model.OrderItem{
			{ProductID: productID, Name: "Test Product", Price: decimal.NewFromInt(10), Quantity: 2},
		},
		TotalAmount:  decimal.NewFromInt(20),
		Currency:     "USD",
		ExchangeRate: decimal.NewFromInt(1),
		Customer: model.CustomerInfo{
			Email:  "buyer@example.com",
			Mobile: "+20100000000",
		},
		ShippingAddress: model.Address{Street: "1 Main St", City: "Cairo", Country: "EG"},
		PaymentMethod:   model.PaymentMethodCOD,
		Status:          model.OrderStatusPending,
		PaymentStatus:   model.PaymentStatusPending,
		OrderDate:       time.Now().UTC(),
	}
}

func (s *RepoTestSuite) TestCreateOrderWithItems() {
	product := s.createTestProduct("Test Product", "10", 5)
	order := s.buildOrder("ORD-1", product.ProductID)

	err := s.orderRepo.Create(context.Background(), order)

	require.NoError(s.T(), err)
	require.NotZero(s.T(), order.OrderID)

	found, err := s.orderRepo.GetByNumber(context.Background(), "ORD-1")
	require.NoError(s.T(), err)
	require.Len(s.T(), found.Items, 1)
	require.True(s.T(), found.TotalAmount.Equal(decimal.NewFromInt(20)))
	require.Equal(s.T(), "buyer@example.com", found.Customer.Email)
}

func (s *RepoTestSuite) TestCreateOrder_DuplicateNumber() {
	product := s.createTestProduct("Test Product", "10", 5)

	require.NoError(s.T(), s.orderRepo.Create(context.Background(), s.buildOrder("ORD-1", product.ProductID)))

	err := s.orderRepo.Create(context.Background(), s.buildOrder("ORD-1", product.ProductID))
	require.ErrorIs(s.T(), err, repository.ErrDuplicateOrderNumber)
}

func (s *RepoTestSuite) TestGetByNumber_NotFound() {
	_, err := s.orderRepo.GetByNumber(context.Background(), "ORD-missing")
	require.ErrorIs(s.T(), err, repository.ErrNotFound)
}

func (s *RepoTestSuite) TestGetByCustomerEmail() {
	product := s.createTestProduct("Test Product", "10", 5)
	for i := 1; i <= 3; i++ {
		order := s.buildOrder(fmt.Sprintf("ORD-%d", i), product.ProductID)
		order.OrderDate = time.Now().UTC().Add(time.Duration(i) * time.Minute)
		require.NoError(s.T(), s.orderRepo.Create(context.Background(), order))
	}

	orders, err := s.orderRepo.GetByCustomerEmail(context.Background(), "buyer@example.com")
	require.NoError(s.T(), err)
	require.Len(s.T(), orders, 3)
	// newest first
	require.Equal(s.T(), "ORD-3", orders[0].OrderNumber)

	orders, err = s.orderRepo.GetByCustomerEmail(context.Background(), "nobody@example.com")
	require.NoError(s.T(), err)
	require.Empty(s.T(), orders)
}

func (s *RepoTestSuite) TestUpdateStatuses() {
	product := s.createTestProduct("Test Product", "10", 5)
	order := s.buildOrder("ORD-1", product.ProductID)
	require.NoError(s.T(), s.orderRepo.Create(context.Background(), order))

	require.NoError(s.T(), s.orderRepo.UpdateStatus(context.Background(), order.OrderID, model.OrderStatusConfirmed))
	require.NoError(s.T(), s.orderRepo.UpdatePaymentStatus(context.Background(), order.OrderID, model.PaymentStatusCompleted))

	found, err := s.orderRepo.GetByID(context.Background(), order.OrderID)
	require.NoError(s.T(), err)
	require.Equal(s.T(), model.OrderStatusConfirmed, found.Status)
	require.Equal(s.T(), model.PaymentStatusCompleted, found.PaymentStatus)
}

func (s *RepoTestSuite) TestProductLockAndSave() {
	product := s.createTestProduct("Test Product", "10", 5)

	err := s.dao.WithinTransaction(context.Background(), func(ctx context.Context) error {
		locked, err := s.productRepo.GetForUpdate(ctx, product.ProductID)
		if err != nil {
			return err
		}
		locked.Stock -= 2
		return s.productRepo.Save(ctx, locked)
	})
	require.NoError(s.T(), err)

	found, err := s.productRepo.GetByID(context.Background(), product.ProductID)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, found.Stock)
}

func (s *RepoTestSuite) TestRollbackDiscardsWrites() {
	product := s.createTestProduct("Test Product", "10", 5)
	boom := errors.New("boom")

	err := s.dao.WithinTransaction(context.Background(), func(ctx context.Context) error {
		locked, err := s.productRepo.GetForUpdate(ctx, product.ProductID)
		if err != nil {
			return err
		}
		locked.Stock = 0
		if err := s.productRepo.Save(ctx, locked); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(s.T(), err, boom)

	found, err := s.productRepo.GetByID(context.Background(), product.ProductID)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5, found.Stock)
}

// A failed insert inside a savepoint must not abort the outer transaction.
func (s *RepoTestSuite) TestSavepointSurvivesFailedInsert() {
	product := s.createTestProduct("Test Product", "10", 5)
	require.NoError(s.T(), s.orderRepo.Create(context.Background(), s.buildOrder("ORD-1", product.ProductID)))

	err := s.dao.WithinTransaction(context.Background(), func(ctx context.Context) error {
		inner := s.dao.WithinTransaction(ctx, func(ctx context.Context) error {
			return s.orderRepo.Create(ctx, s.buildOrder("ORD-1", product.ProductID))
		})
		if !errors.Is(inner, repository.ErrDuplicateOrderNumber) {
			return fmt.Errorf("want duplicate-number error, got %v", inner)
		}
		// the outer transaction is still usable
		return s.orderRepo.Create(ctx, s.buildOrder("ORD-2", product.ProductID))
	})
	require.NoError(s.T(), err)

	_, err = s.orderRepo.GetByNumber(context.Background(), "ORD-2")
	require.NoError(s.T(), err)
}

func (s *RepoTestSuite) TestCurrencyUpsert() {
	rate := &model.CurrencyRate{Code: "EGP", Rate: decimal.RequireFromString("30.9")}
	require.NoError(s.T(), s.currencyRepo.Upsert(context.Background(), rate))

	rate = &model.CurrencyRate{Code: "EGP", Rate: decimal.RequireFromString("31.2")}
	require.NoError(s.T(), s.currencyRepo.Upsert(context.Background(), rate))

	found, err := s.currencyRepo.GetByCode(context.Background(), "egp")
	require.NoError(s.T(), err)
	require.True(s.T(), found.Rate.Equal(decimal.RequireFromString("31.2")))

	rates, err := s.currencyRepo.List(context.Background())
	require.NoError(s.T(), err)
	require.Len(s.T(), rates, 1)
}

func (s *RepoTestSuite) TestCurrencyGetByCode_NotFound() {
	_, err := s.currencyRepo.GetByCode(context.Background(), "XXX")
	require.ErrorIs(s.T(), err, repository.ErrNotFound)
}

func TestRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RepoTestSuite))
}
