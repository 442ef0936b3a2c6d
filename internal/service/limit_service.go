package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/redwood-labs/expense-tracker/internal/storage"
	"github.com/redwood-labs/expense-tracker/internal/storage/expensetable"
)

// Limit is a monthly spending limit in the service layer.
type Limit struct {
	Month string
	Limit decimal.Decimal
}

// LimitService handles monthly spending limit logic.
type LimitService struct {
	storage *storage.Storage
}

// NewLimitService creates a new LimitService.
func NewLimitService(store *storage.Storage) *LimitService {
	return &LimitService{storage: store}
}

// SetLimit creates or wholesale-replaces the limit for a month.
func (s *LimitService) SetLimit(ctx context.Context, userID string, month string, limit decimal.Decimal) (*Limit, error) {
	item := &expensetable.LimitItem{
		UserID: userID,
		Month:  month,
		Limit:  expensetable.Decimal{Decimal: limit},
	}

	if err := s.storage.Items.PutLimit(ctx, item); err != nil {
		return nil, err
	}

	return &Limit{Month: month, Limit: limit}, nil
}

// GetCurrentLimit fetches the limit for the current calendar month (UTC
// server clock, never client input). The month is always returned; the limit
// is nil when none is set, which is a normal state.
func (s *LimitService) GetCurrentLimit(ctx context.Context, userID string) (*Limit, string, error) {
	month := CurrentMonth()

	item, err := s.storage.Items.GetLimit(ctx, userID, month)
	if err != nil {
		return nil, month, err
	}
	if item == nil {
		return nil, month, nil
	}

	return &Limit{Month: item.Month, Limit: item.Limit.Decimal}, month, nil
}

// CurrentMonth returns the current UTC month as YYYY-MM.
func CurrentMonth() string {
	return time.Now().UTC().Format("2006-01")
}
