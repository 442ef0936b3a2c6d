package expense

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteExpenseHandler_Success(t *testing.T) {
	svc := &mockExpenseService{}
	handler := NewDeleteExpenseHandler(svc)

	svc.On("DeleteExpense", context.Background(), "user-a", "e1").Return(nil)

	resp, err := handler.Handle(context.Background(), "user-a", events.APIGatewayProxyRequest{
		PathParameters: map[string]string{"id": "e1"},
	}, newTestLogData(t))

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.JSONEq(t, `{"message": "Expense deleted"}`, resp.Body)
	svc.AssertExpectations(t)
}

func TestDeleteExpenseHandler_RepeatDeleteStillSucceeds(t *testing.T) {
	svc := &mockExpenseService{}
	handler := NewDeleteExpenseHandler(svc)

	svc.On("DeleteExpense", context.Background(), "user-a", "e1").Return(nil).Twice()

	for i := 0; i < 2; i++ {
		resp, err := handler.Handle(context.Background(), "user-a", events.APIGatewayProxyRequest{
			PathParameters: map[string]string{"id": "e1"},
		}, newTestLogData(t))

		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	}
}

func TestDeleteExpenseHandler_MissingID(t *testing.T) {
	handler := NewDeleteExpenseHandler(&mockExpenseService{})

	resp, err := handler.Handle(context.Background(), "user-a", events.APIGatewayProxyRequest{}, newTestLogData(t))

	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestDeleteExpenseHandler_ServiceError(t *testing.T) {
	svc := &mockExpenseService{}
	handler := NewDeleteExpenseHandler(svc)

	svc.On("DeleteExpense", context.Background(), "user-a", "e1").
		Return(errors.New("delete failed"))

	resp, err := handler.Handle(context.Background(), "user-a", events.APIGatewayProxyRequest{
		PathParameters: map[string]string{"id": "e1"},
	}, newTestLogData(t))

	assert.Error(t, err)
	assert.Equal(t, 500, resp.StatusCode)
}
