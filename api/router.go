package api

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus"

	"github.com/redwood-labs/expense-tracker/internal/handlers/apijson"
	"github.com/redwood-labs/expense-tracker/internal/handlers/expense"
	"github.com/redwood-labs/expense-tracker/internal/handlers/limit"
	"github.com/redwood-labs/expense-tracker/internal/logging"
	"github.com/redwood-labs/expense-tracker/internal/service"
)

// endpointFunc is an endpoint handler bound to an authenticated user.
type endpointFunc func(ctx context.Context, userID string, event events.APIGatewayProxyRequest, logData *logging.LogData) (events.APIGatewayProxyResponse, error)

// Router dispatches API Gateway events on (resource, method) to exactly one
// endpoint handler. Identity comes only from the upstream-verified authorizer
// claims; requests without a subject claim are rejected before any handler
// runs.
type Router struct {
	logger *logrus.Logger

	createExpense *expense.CreateExpenseHandler
	listExpenses  *expense.ListExpensesHandler
	updateExpense *expense.UpdateExpenseHandler
	deleteExpense *expense.DeleteExpenseHandler
	setLimit      *limit.SetLimitHandler
	getLimit      *limit.GetLimitHandler
}

// NewRouter creates a Router wired to the given services.
func NewRouter(logger *logrus.Logger, svc *service.Service) *Router {
	return &Router{
		logger:        logger,
		createExpense: expense.NewCreateExpenseHandler(svc.Expense),
		listExpenses:  expense.NewListExpensesHandler(svc.Expense),
		updateExpense: expense.NewUpdateExpenseHandler(svc.Expense),
		deleteExpense: expense.NewDeleteExpenseHandler(svc.Expense),
		setLimit:      limit.NewSetLimitHandler(svc.Limit),
		getLimit:      limit.NewGetLimitHandler(svc.Limit),
	}
}

// userIDFromClaims extracts the verified subject claim. Client-controlled
// parts of the request are never consulted.
func userIDFromClaims(event events.APIGatewayProxyRequest) string {
	claims, ok := event.RequestContext.Authorizer["claims"].(map[string]interface{})
	if !ok {
		return ""
	}

	sub, _ := claims["sub"].(string)
	return sub
}

func (r *Router) route(resource, method string) (endpointFunc, string) {
	switch {
	case resource == "/expenses" && method == http.MethodPost:
		return r.createExpense.Handle, "CreateExpense"
	case resource == "/expenses" && method == http.MethodGet:
		return r.listExpenses.Handle, "ListExpenses"
	case resource == "/expenses/{id}" && method == http.MethodPut:
		return r.updateExpense.Handle, "UpdateExpense"
	case resource == "/expenses/{id}" && method == http.MethodDelete:
		return r.deleteExpense.Handle, "DeleteExpense"
	case resource == "/limits" && method == http.MethodPut:
		return r.setLimit.Handle, "SetLimit"
	case resource == "/limits" && method == http.MethodGet:
		return r.getLimit.Handle, "GetLimit"
	}

	return nil, ""
}

// Handle is the Lambda entry point for API Gateway events.
func (r *Router) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	userID := userIDFromClaims(event)
	if userID == "" {
		r.logger.Warn("Router.missing identity claim")
		return apijson.Message(http.StatusUnauthorized, "Unauthorized"), nil
	}

	handler, loggingName := r.route(event.Resource, event.HTTPMethod)
	if handler == nil {
		return apijson.Message(http.StatusNotFound, "Route not found"), nil
	}

	wrapped := logging.HandlerWrapper(loggingName, r.logger,
		func(ctx context.Context, event events.APIGatewayProxyRequest, logData *logging.LogData) (events.APIGatewayProxyResponse, error) {
			logData.AddData("userId", userID)
			return handler(ctx, userID, event, logData)
		})

	return wrapped(ctx, event), nil
}
