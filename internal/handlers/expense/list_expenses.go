package expense

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/redwood-labs/expense-tracker/internal/handlers/apijson"
	"github.com/redwood-labs/expense-tracker/internal/logging"
	"github.com/redwood-labs/expense-tracker/internal/service"
)

// expenseLister is the interface for listing expenses.
type expenseLister interface {
	ListExpenses(ctx context.Context, userID string) ([]service.Expense, error)
}

// ListExpensesHandler handles GET /expenses.
type ListExpensesHandler struct {
	ExpenseService expenseLister
}

// NewListExpensesHandler creates a new ListExpensesHandler.
func NewListExpensesHandler(svc expenseLister) *ListExpensesHandler {
	return &ListExpensesHandler{ExpenseService: svc}
}

func (h *ListExpensesHandler) Handle(ctx context.Context, userID string, event events.APIGatewayProxyRequest, logData *logging.LogData) (events.APIGatewayProxyResponse, error) {
	stopTimer := logData.AddTiming("listExpensesMs")
	expenses, err := h.ExpenseService.ListExpenses(ctx, userID)
	stopTimer()
	if err != nil {
		return apijson.ServerError(), err
	}

	logData.AddData("expenseCount", len(expenses))

	converted := make([]Expense, len(expenses))
	for i, e := range expenses {
		converted[i] = fromService(e)
	}

	return apijson.Response(http.StatusOK, converted), nil
}
