package expense

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/redwood-labs/expense-tracker/internal/logging"
	"github.com/redwood-labs/expense-tracker/internal/service"
)

// mockExpenseService is a mock for the expense service interfaces.
type mockExpenseService struct {
	mock.Mock
}

func (m *mockExpenseService) CreateExpense(ctx context.Context, userID string, create service.ExpenseCreate) (*service.Expense, error) {
	args := m.Called(ctx, userID, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Expense), args.Error(1)
}

func (m *mockExpenseService) ListExpenses(ctx context.Context, userID string) ([]service.Expense, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Expense), args.Error(1)
}

func (m *mockExpenseService) UpdateExpense(ctx context.Context, userID string, expenseID string, patch service.ExpensePatch) error {
	args := m.Called(ctx, userID, expenseID, patch)
	return args.Error(0)
}

func (m *mockExpenseService) DeleteExpense(ctx context.Context, userID string, expenseID string) error {
	args := m.Called(ctx, userID, expenseID)
	return args.Error(0)
}

func newTestLogData(t *testing.T) *logging.LogData {
	t.Helper()
	return logging.NewLogData(logrus.New())
}

// -- parseCreateExpenseBody unit tests --

func TestParseCreateExpenseBody_AmountAsNumber(t *testing.T) {
	create, err := parseCreateExpenseBody(&CreateExpenseBody{
		Date:     "2024-03-15",
		Category: "groceries",
		Amount:   json.RawMessage(`12.10`),
	})

	require.NoError(t, err)
	assert.True(t, create.Amount.Equal(decimal.RequireFromString("12.10")))
}

func TestParseCreateExpenseBody_AmountAsString(t *testing.T) {
	create, err := parseCreateExpenseBody(&CreateExpenseBody{
		Date:     "2024-03-15",
		Category: "groceries",
		Amount:   json.RawMessage(`"12.10"`),
	})

	require.NoError(t, err)
	assert.True(t, create.Amount.Equal(decimal.RequireFromString("12.10")))
}

func TestParseCreateExpenseBody_MissingFields(t *testing.T) {
	cases := []struct {
		name string
		body CreateExpenseBody
	}{
		{"missing date", CreateExpenseBody{Category: "a", Amount: json.RawMessage(`1`)}},
		{"malformed date", CreateExpenseBody{Date: "15-03-2024", Category: "a", Amount: json.RawMessage(`1`)}},
		{"missing category", CreateExpenseBody{Date: "2024-03-15", Amount: json.RawMessage(`1`)}},
		{"missing amount", CreateExpenseBody{Date: "2024-03-15", Category: "a"}},
		{"bad amount", CreateExpenseBody{Date: "2024-03-15", Category: "a", Amount: json.RawMessage(`"abc"`)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseCreateExpenseBody(&tc.body)
			assert.Error(t, err)
		})
	}
}

// -- Handle tests --

func TestCreateExpenseHandler_Success(t *testing.T) {
	svc := &mockExpenseService{}
	handler := NewCreateExpenseHandler(svc)

	svc.On("CreateExpense", mock.Anything, "user-a", mock.MatchedBy(func(c service.ExpenseCreate) bool {
		return c.Date == "2024-03-15" && c.Category == "groceries" &&
			c.Amount.Equal(decimal.RequireFromString("12.10")) && c.Note == "weekly shop"
	})).Return(&service.Expense{
		ExpenseID: "e1",
		Category:  "groceries",
		Amount:    decimal.RequireFromString("12.10"),
		Date:      "2024-03-15",
		Month:     "2024-03",
		Note:      "weekly shop",
		CreatedAt: "2024-03-15T10:30:00Z",
	}, nil)

	resp, err := handler.Handle(context.Background(), "user-a", events.APIGatewayProxyRequest{
		Body: `{"date": "2024-03-15", "category": "groceries", "amount": 12.10, "note": "weekly shop"}`,
	}, newTestLogData(t))

	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)
	assert.JSONEq(t, `{
		"message": "Expense added",
		"expense": {
			"expenseId": "e1",
			"category": "groceries",
			"amount": 12.1,
			"date": "2024-03-15",
			"month": "2024-03",
			"note": "weekly shop",
			"createdAt": "2024-03-15T10:30:00Z"
		}
	}`, resp.Body)
	svc.AssertExpectations(t)
}

func TestCreateExpenseHandler_InvalidJSON(t *testing.T) {
	handler := NewCreateExpenseHandler(&mockExpenseService{})

	resp, err := handler.Handle(context.Background(), "user-a", events.APIGatewayProxyRequest{
		Body: `not json`,
	}, newTestLogData(t))

	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestCreateExpenseHandler_MissingField(t *testing.T) {
	handler := NewCreateExpenseHandler(&mockExpenseService{})

	resp, err := handler.Handle(context.Background(), "user-a", events.APIGatewayProxyRequest{
		Body: `{"category": "groceries", "amount": 5}`,
	}, newTestLogData(t))

	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
	assert.JSONEq(t, `{"message": "date is required"}`, resp.Body)
}

func TestCreateExpenseHandler_ServiceError(t *testing.T) {
	svc := &mockExpenseService{}
	handler := NewCreateExpenseHandler(svc)

	svc.On("CreateExpense", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("table unavailable"))

	resp, err := handler.Handle(context.Background(), "user-a", events.APIGatewayProxyRequest{
		Body: `{"date": "2024-03-15", "category": "groceries", "amount": 5}`,
	}, newTestLogData(t))

	assert.Error(t, err, "storage errors propagate to the wrapper for logging")
	assert.Equal(t, 500, resp.StatusCode)
	assert.JSONEq(t, `{"message": "Internal server error"}`, resp.Body, "internal detail never leaks")
}
