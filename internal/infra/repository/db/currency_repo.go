package db

import (
	"context"
	"strings"

	"gorm.io/gorm/clause"

	"storefront/internal/domain/model"
	"storefront/internal/infra/repository"
)

type CurrencyRepo struct {
	db *DbDao
}

func NewCurrencyRepo(db *DbDao) *CurrencyRepo {
	return &CurrencyRepo{db: db}
}

var _ repository.CurrencyRepository = (*CurrencyRepo)(nil)

func (s *CurrencyRepo) GetByCode(ctx context.Context, code string) (*model.CurrencyRate, error) {
	var rate model.CurrencyRate
	err := s.db.conn(ctx).First(&rate, "code = ?", strings.ToUpper(code)).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &rate, nil
}

func (s *CurrencyRepo) Upsert(ctx context.Context, rate *model.CurrencyRate) error {
	rate.Code = strings.ToUpper(rate.Code)
	return s.db.conn(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{"rate", "updated_at"}),
	}).Create(rate).Error
}

func (s *CurrencyRepo) List(ctx context.Context) ([]model.CurrencyRate, error) {
	var rates []model.CurrencyRate
	err := s.db.conn(ctx).Order("code").Find(&rates).Error
	return rates, err
}
