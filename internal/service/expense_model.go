package service

import (
	"github.com/shopspring/decimal"
)

// Expense represents an expense record in the service layer. Date is a
// YYYY-MM-DD string and Month its YYYY-MM prefix; CreatedAt is a UTC RFC3339
// string, set once at creation.
type Expense struct {
	ExpenseID string
	Category  string
	Amount    decimal.Decimal
	Date      string
	Month     string
	Note      string
	CreatedAt string
}

// ExpenseCreate is the input for creating a new expense.
type ExpenseCreate struct {
	Date     string
	Category string
	Amount   decimal.Decimal
	Note     string
}

// ExpensePatch is a partial update of an expense. Nil fields are left
// untouched. Month is never patched directly: it is re-derived whenever Date
// is patched.
type ExpensePatch struct {
	Category *string
	Amount   *decimal.Decimal
	Date     *string
	Note     *string
}

// IsEmpty reports whether the patch touches no fields.
func (p *ExpensePatch) IsEmpty() bool {
	return p.Category == nil && p.Amount == nil && p.Date == nil && p.Note == nil
}

// MonthOf derives the YYYY-MM month from a YYYY-MM-DD date.
func MonthOf(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}
