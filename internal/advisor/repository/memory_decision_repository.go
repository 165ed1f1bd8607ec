package repository

import (
	"context"
	"sync"

	"golang-equity-advisor/internal/entity"
)

// memoryDecisionRepository keeps decisions in memory for one-shot runs that
// have no database behind them.
type memoryDecisionRepository struct {
	mu        sync.Mutex
	decisions []entity.StockDecision
}

// NewMemoryDecisionRepository creates an in-memory DecisionRepository.
func NewMemoryDecisionRepository() DecisionRepository {
	return &memoryDecisionRepository{}
}

func (r *memoryDecisionRepository) Create(ctx context.Context, decision *entity.StockDecision) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	decision.ID = int64(len(r.decisions) + 1)
	r.decisions = append(r.decisions, *decision)
	return nil
}

func (r *memoryDecisionRepository) FindRecent(ctx context.Context, limit int) ([]entity.StockDecision, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(r.decisions)
	if limit > n {
		limit = n
	}
	out := make([]entity.StockDecision, limit)
	for i := 0; i < limit; i++ {
		out[i] = r.decisions[n-1-i]
	}
	return out, nil
}

func (r *memoryDecisionRepository) FindByTicker(ctx context.Context, ticker string, limit int) ([]entity.StockDecision, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []entity.StockDecision
	for i := len(r.decisions) - 1; i >= 0 && len(out) < limit; i-- {
		if r.decisions[i].Ticker == ticker {
			out = append(out, r.decisions[i])
		}
	}
	return out, nil
}
