package expense

import (
	"encoding/json"

	"github.com/redwood-labs/expense-tracker/internal/handlers/apijson"
	"github.com/redwood-labs/expense-tracker/internal/service"
)

// Expense is the API response model for an expense record. Amounts are
// rendered as plain JSON numbers from their exact decimal form.
type Expense struct {
	ExpenseID string      `json:"expenseId"`
	Category  string      `json:"category"`
	Amount    json.Number `json:"amount"`
	Date      string      `json:"date"`
	Month     string      `json:"month"`
	Note      string      `json:"note"`
	CreatedAt string      `json:"createdAt"`
}

func fromService(e service.Expense) Expense {
	return Expense{
		ExpenseID: e.ExpenseID,
		Category:  e.Category,
		Amount:    apijson.Number(e.Amount),
		Date:      e.Date,
		Month:     e.Month,
		Note:      e.Note,
		CreatedAt: e.CreatedAt,
	}
}
