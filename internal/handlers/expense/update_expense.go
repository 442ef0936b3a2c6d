package expense

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"

	"github.com/redwood-labs/expense-tracker/internal/handlers/apijson"
	"github.com/redwood-labs/expense-tracker/internal/logging"
	"github.com/redwood-labs/expense-tracker/internal/service"
)

// UpdateExpenseBody is the request body for updating an expense. Every field
// is optional; absent fields are left untouched. Month cannot be set
// directly, it follows date.
type UpdateExpenseBody struct {
	Category *string          `json:"category"`
	Amount   *json.RawMessage `json:"amount"`
	Date     *string          `json:"date"`
	Note     *string          `json:"note"`
}

// expenseUpdater is the interface for updating expenses.
type expenseUpdater interface {
	UpdateExpense(ctx context.Context, userID string, expenseID string, patch service.ExpensePatch) error
}

// UpdateExpenseHandler handles PUT /expenses/{id}.
type UpdateExpenseHandler struct {
	ExpenseService expenseUpdater
}

// NewUpdateExpenseHandler creates a new UpdateExpenseHandler.
func NewUpdateExpenseHandler(svc expenseUpdater) *UpdateExpenseHandler {
	return &UpdateExpenseHandler{ExpenseService: svc}
}

// parseUpdateExpenseBody maps present body fields onto a patch. An empty
// patch is rejected here rather than producing an empty storage update.
func parseUpdateExpenseBody(body *UpdateExpenseBody) (service.ExpensePatch, error) {
	patch := service.ExpensePatch{
		Category: body.Category,
		Date:     body.Date,
		Note:     body.Note,
	}

	if body.Date != nil {
		if _, err := time.Parse("2006-01-02", *body.Date); err != nil {
			return service.ExpensePatch{}, errors.New("date must be YYYY-MM-DD")
		}
	}

	if body.Amount != nil {
		amount, err := apijson.ParseDecimal(*body.Amount)
		if err != nil {
			return service.ExpensePatch{}, errors.New("amount must be a decimal number")
		}
		patch.Amount = &amount
	}

	if patch.IsEmpty() {
		return service.ExpensePatch{}, errors.New("nothing to update")
	}

	return patch, nil
}

func (h *UpdateExpenseHandler) Handle(ctx context.Context, userID string, event events.APIGatewayProxyRequest, logData *logging.LogData) (events.APIGatewayProxyResponse, error) {
	expenseID := event.PathParameters["id"]
	if expenseID == "" {
		return apijson.Message(http.StatusBadRequest, "expense id is required"), nil
	}

	var body UpdateExpenseBody
	if err := apijson.ParseBody(event.Body, &body); err != nil {
		return apijson.Message(http.StatusBadRequest, "Request body must be a JSON object"), nil
	}

	patch, err := parseUpdateExpenseBody(&body)
	if err != nil {
		return apijson.Message(http.StatusBadRequest, err.Error()), nil
	}

	logData.AddData("expenseId", expenseID)

	stopTimer := logData.AddTiming("updateExpenseMs")
	err = h.ExpenseService.UpdateExpense(ctx, userID, expenseID, patch)
	stopTimer()
	if err != nil {
		if errors.Is(err, service.ErrNothingToUpdate) {
			return apijson.Message(http.StatusBadRequest, "nothing to update"), nil
		}
		return apijson.ServerError(), err
	}

	return apijson.Message(http.StatusOK, "Expense updated"), nil
}
