package limit

import (
	"encoding/json"

	"github.com/redwood-labs/expense-tracker/internal/handlers/apijson"
	"github.com/redwood-labs/expense-tracker/internal/service"
)

// Limit is the API response model for a monthly spending limit.
type Limit struct {
	Month string      `json:"month"`
	Limit json.Number `json:"limit"`
}

func fromService(l service.Limit) Limit {
	return Limit{
		Month: l.Month,
		Limit: apijson.Number(l.Limit),
	}
}
