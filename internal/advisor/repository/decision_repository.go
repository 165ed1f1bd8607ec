package repository

import (
	"context"

	"golang-equity-advisor/internal/entity"

	"gorm.io/gorm"
)

// DecisionRepository persists reconciled decisions. Decisions are
// append-only; there is no update path.
type DecisionRepository interface {
	Create(ctx context.Context, decision *entity.StockDecision) error
	FindRecent(ctx context.Context, limit int) ([]entity.StockDecision, error)
	FindByTicker(ctx context.Context, ticker string, limit int) ([]entity.StockDecision, error)
}

type decisionRepository struct {
	db *gorm.DB
}

// NewDecisionRepository creates a new instance of DecisionRepository.
func NewDecisionRepository(db *gorm.DB) DecisionRepository {
	return &decisionRepository{db: db}
}

func (r *decisionRepository) Create(ctx context.Context, decision *entity.StockDecision) error {
	return r.db.WithContext(ctx).Create(decision).Error
}

func (r *decisionRepository) FindRecent(ctx context.Context, limit int) ([]entity.StockDecision, error) {
	var decisions []entity.StockDecision
	err := r.db.WithContext(ctx).
		Order("analyzed_at DESC").
		Limit(limit).
		Find(&decisions).Error
	if err != nil {
		return nil, err
	}
	return decisions, nil
}

func (r *decisionRepository) FindByTicker(ctx context.Context, ticker string, limit int) ([]entity.StockDecision, error) {
	var decisions []entity.StockDecision
	err := r.db.WithContext(ctx).
		Where("ticker = ?", ticker).
		Order("analyzed_at DESC").
		Limit(limit).
		Find(&decisions).Error
	if err != nil {
		return nil, err
	}
	return decisions, nil
}
