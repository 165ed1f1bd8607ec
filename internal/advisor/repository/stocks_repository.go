package repository

import (
	"context"

	"golang-equity-advisor/internal/entity"

	"gorm.io/gorm"
)

// StocksRepository manages the watchlist.
type StocksRepository interface {
	GetActiveStocks(ctx context.Context) ([]entity.Stock, error)
	FindByCode(ctx context.Context, code string) (*entity.Stock, error)
	Create(ctx context.Context, stock *entity.Stock) error
	DeleteByCode(ctx context.Context, code string) error
}

type stocksRepository struct {
	db *gorm.DB
}

// NewStocksRepository creates a new instance of StocksRepository.
func NewStocksRepository(db *gorm.DB) StocksRepository {
	return &stocksRepository{db: db}
}

func (s *stocksRepository) GetActiveStocks(ctx context.Context) ([]entity.Stock, error) {
	var stocks []entity.Stock
	if err := s.db.WithContext(ctx).Where("is_active = ?", true).Find(&stocks).Error; err != nil {
		return nil, err
	}
	return stocks, nil
}

func (s *stocksRepository) FindByCode(ctx context.Context, code string) (*entity.Stock, error) {
	var stock entity.Stock
	if err := s.db.WithContext(ctx).Where("code = ?", code).First(&stock).Error; err != nil {
		return nil, err
	}
	return &stock, nil
}

func (s *stocksRepository) Create(ctx context.Context, stock *entity.Stock) error {
	return s.db.WithContext(ctx).Create(stock).Error
}

func (s *stocksRepository) DeleteByCode(ctx context.Context, code string) error {
	return s.db.WithContext(ctx).Where("code = ?", code).Delete(&entity.Stock{}).Error
}
