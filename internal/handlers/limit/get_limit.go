package limit

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/redwood-labs/expense-tracker/internal/handlers/apijson"
	"github.com/redwood-labs/expense-tracker/internal/logging"
	"github.com/redwood-labs/expense-tracker/internal/service"
)

// GetLimitResponse is the response body for fetching the current month's
// limit. Limit is null when no limit is set, which is a normal state, not an
// error.
type GetLimitResponse struct {
	Month string       `json:"month"`
	Limit *json.Number `json:"limit"`
}

// limitGetter is the interface for fetching the current month's limit.
type limitGetter interface {
	GetCurrentLimit(ctx context.Context, userID string) (*service.Limit, string, error)
}

// GetLimitHandler handles GET /limits.
type GetLimitHandler struct {
	LimitService limitGetter
}

// NewGetLimitHandler creates a new GetLimitHandler.
func NewGetLimitHandler(svc limitGetter) *GetLimitHandler {
	return &GetLimitHandler{LimitService: svc}
}

func (h *GetLimitHandler) Handle(ctx context.Context, userID string, event events.APIGatewayProxyRequest, logData *logging.LogData) (events.APIGatewayProxyResponse, error) {
	stopTimer := logData.AddTiming("getLimitMs")
	limit, month, err := h.LimitService.GetCurrentLimit(ctx, userID)
	stopTimer()
	if err != nil {
		return apijson.ServerError(), err
	}

	logData.AddData("month", month)

	resp := GetLimitResponse{Month: month}
	if limit != nil {
		number := apijson.Number(limit.Limit)
		resp.Limit = &number
	}

	return apijson.Response(http.StatusOK, resp), nil
}
