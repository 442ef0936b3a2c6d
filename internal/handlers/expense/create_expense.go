package expense

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"

	"github.com/redwood-labs/expense-tracker/internal/handlers/apijson"
	"github.com/redwood-labs/expense-tracker/internal/logging"
	"github.com/redwood-labs/expense-tracker/internal/service"
)

// CreateExpenseBody is the request body for creating an expense. Amount is
// captured raw so it can be parsed as an exact decimal.
type CreateExpenseBody struct {
	Date     string          `json:"date"`
	Category string          `json:"category"`
	Amount   json.RawMessage `json:"amount"`
	Note     string          `json:"note"`
}

// CreateExpenseResponse is the response body for creating an expense.
type CreateExpenseResponse struct {
	Message string  `json:"message"`
	Expense Expense `json:"expense"`
}

// expenseCreator is the interface for creating expenses.
type expenseCreator interface {
	CreateExpense(ctx context.Context, userID string, create service.ExpenseCreate) (*service.Expense, error)
}

// CreateExpenseHandler handles POST /expenses.
type CreateExpenseHandler struct {
	ExpenseService expenseCreator
}

// NewCreateExpenseHandler creates a new CreateExpenseHandler.
func NewCreateExpenseHandler(svc expenseCreator) *CreateExpenseHandler {
	return &CreateExpenseHandler{ExpenseService: svc}
}

// parseCreateExpenseBody validates the request fields. The returned error
// message is safe to send to the client.
func parseCreateExpenseBody(body *CreateExpenseBody) (service.ExpenseCreate, error) {
	if strings.TrimSpace(body.Date) == "" {
		return service.ExpenseCreate{}, errors.New("date is required")
	}
	if _, err := time.Parse("2006-01-02", body.Date); err != nil {
		return service.ExpenseCreate{}, errors.New("date must be YYYY-MM-DD")
	}
	if strings.TrimSpace(body.Category) == "" {
		return service.ExpenseCreate{}, errors.New("category is required")
	}
	if len(body.Amount) == 0 {
		return service.ExpenseCreate{}, errors.New("amount is required")
	}

	amount, err := apijson.ParseDecimal(body.Amount)
	if err != nil {
		return service.ExpenseCreate{}, errors.New("amount must be a decimal number")
	}

	return service.ExpenseCreate{
		Date:     body.Date,
		Category: body.Category,
		Amount:   amount,
		Note:     body.Note,
	}, nil
}

func (h *CreateExpenseHandler) Handle(ctx context.Context, userID string, event events.APIGatewayProxyRequest, logData *logging.LogData) (events.APIGatewayProxyResponse, error) {
	var body CreateExpenseBody
	if err := apijson.ParseBody(event.Body, &body); err != nil {
		return apijson.Message(http.StatusBadRequest, "Request body must be a JSON object"), nil
	}

	create, err := parseCreateExpenseBody(&body)
	if err != nil {
		return apijson.Message(http.StatusBadRequest, err.Error()), nil
	}

	stopTimer := logData.AddTiming("createExpenseMs")
	expense, err := h.ExpenseService.CreateExpense(ctx, userID, create)
	stopTimer()
	if err != nil {
		return apijson.ServerError(), err
	}

	logData.AddData("expenseId", expense.ExpenseID)

	return apijson.Response(http.StatusCreated, CreateExpenseResponse{
		Message: "Expense added",
		Expense: fromService(*expense),
	}), nil
}
