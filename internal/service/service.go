package service

import (
	"github.com/redwood-labs/expense-tracker/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Expense *ExpenseService
	Limit   *LimitService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage) *Service {
	return &Service{
		Expense: NewExpenseService(store),
		Limit:   NewLimitService(store),
	}
}
