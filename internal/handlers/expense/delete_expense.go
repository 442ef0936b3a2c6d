package expense

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/redwood-labs/expense-tracker/internal/handlers/apijson"
	"github.com/redwood-labs/expense-tracker/internal/logging"
)

// expenseDeleter is the interface for deleting expenses.
type expenseDeleter interface {
	DeleteExpense(ctx context.Context, userID string, expenseID string) error
}

// DeleteExpenseHandler handles DELETE /expenses/{id}.
type DeleteExpenseHandler struct {
	ExpenseService expenseDeleter
}

// NewDeleteExpenseHandler creates a new DeleteExpenseHandler.
func NewDeleteExpenseHandler(svc expenseDeleter) *DeleteExpenseHandler {
	return &DeleteExpenseHandler{ExpenseService: svc}
}

func (h *DeleteExpenseHandler) Handle(ctx context.Context, userID string, event events.APIGatewayProxyRequest, logData *logging.LogData) (events.APIGatewayProxyResponse, error) {
	expenseID := event.PathParameters["id"]
	if expenseID == "" {
		return apijson.Message(http.StatusBadRequest, "expense id is required"), nil
	}

	logData.AddData("expenseId", expenseID)

	stopTimer := logData.AddTiming("deleteExpenseMs")
	err := h.ExpenseService.DeleteExpense(ctx, userID, expenseID)
	stopTimer()
	if err != nil {
		return apijson.ServerError(), err
	}

	return apijson.Message(http.StatusOK, "Expense deleted"), nil
}
