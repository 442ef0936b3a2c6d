package limit

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/shopspring/decimal"

	"github.com/redwood-labs/expense-tracker/internal/handlers/apijson"
	"github.com/redwood-labs/expense-tracker/internal/logging"
	"github.com/redwood-labs/expense-tracker/internal/service"
)

// SetLimitBody is the request body for setting a monthly limit.
type SetLimitBody struct {
	Month string          `json:"month"`
	Limit json.RawMessage `json:"limit"`
}

// SetLimitResponse is the response body for setting a monthly limit.
type SetLimitResponse struct {
	Message string `json:"message"`
	Limit   Limit  `json:"limit"`
}

// limitSetter is the interface for setting limits.
type limitSetter interface {
	SetLimit(ctx context.Context, userID string, month string, limit decimal.Decimal) (*service.Limit, error)
}

// SetLimitHandler handles PUT /limits.
type SetLimitHandler struct {
	LimitService limitSetter
}

// NewSetLimitHandler creates a new SetLimitHandler.
func NewSetLimitHandler(svc limitSetter) *SetLimitHandler {
	return &SetLimitHandler{LimitService: svc}
}

func parseSetLimitBody(body *SetLimitBody) (string, decimal.Decimal, error) {
	if strings.TrimSpace(body.Month) == "" {
		return "", decimal.Decimal{}, errors.New("month is required")
	}
	if _, err := time.Parse("2006-01", body.Month); err != nil {
		return "", decimal.Decimal{}, errors.New("month must be YYYY-MM")
	}
	if len(body.Limit) == 0 {
		return "", decimal.Decimal{}, errors.New("limit is required")
	}

	amount, err := apijson.ParseDecimal(body.Limit)
	if err != nil {
		return "", decimal.Decimal{}, errors.New("limit must be a decimal number")
	}

	return body.Month, amount, nil
}

func (h *SetLimitHandler) Handle(ctx context.Context, userID string, event events.APIGatewayProxyRequest, logData *logging.LogData) (events.APIGatewayProxyResponse, error) {
	var body SetLimitBody
	if err := apijson.ParseBody(event.Body, &body); err != nil {
		return apijson.Message(http.StatusBadRequest, "Request body must be a JSON object"), nil
	}

	month, amount, err := parseSetLimitBody(&body)
	if err != nil {
		return apijson.Message(http.StatusBadRequest, err.Error()), nil
	}

	logData.AddData("month", month)

	stopTimer := logData.AddTiming("setLimitMs")
	limit, err := h.LimitService.SetLimit(ctx, userID, month, amount)
	stopTimer()
	if err != nil {
		return apijson.ServerError(), err
	}

	return apijson.Response(http.StatusOK, SetLimitResponse{
		Message: "Limit set",
		Limit:   fromService(*limit),
	}), nil
}
