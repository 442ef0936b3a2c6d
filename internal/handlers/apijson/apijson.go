// Package apijson builds the normalized JSON responses returned by every
// endpoint and parses request bodies at the boundary.
package apijson

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/shopspring/decimal"
)

func headers() map[string]string {
	return map[string]string{
		"Content-Type":                "application/json",
		"Access-Control-Allow-Origin": "*",
	}
}

// Response serializes body as the JSON payload of an API Gateway response.
func Response(status int, body interface{}) events.APIGatewayProxyResponse {
	serialized, err := json.Marshal(body)
	if err != nil {
		return ServerError()
	}

	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    headers(),
		Body:       string(serialized),
	}
}

// Message is a response whose body is a single message field. Error responses
// always take this shape.
func Message(status int, message string) events.APIGatewayProxyResponse {
	return Response(status, map[string]string{"message": message})
}

// ServerError is the generic 500 response. Storage and other internal error
// detail is logged, never sent to the client.
func ServerError() events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusInternalServerError,
		Headers:    headers(),
		Body:       `{"message": "Internal server error"}`,
	}
}

// ParseBody decodes a request body into out.
func ParseBody(body string, out interface{}) error {
	if strings.TrimSpace(body) == "" {
		return errors.New("empty body")
	}
	return json.Unmarshal([]byte(body), out)
}

// ParseDecimal parses a JSON number or numeric string into a decimal via its
// raw text, so amounts never pass through binary floating point.
func ParseDecimal(raw json.RawMessage) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return decimal.Decimal{}, errors.New("missing value")
	}

	if strings.HasPrefix(trimmed, `"`) {
		var unquoted string
		if err := json.Unmarshal([]byte(trimmed), &unquoted); err != nil {
			return decimal.Decimal{}, err
		}
		trimmed = unquoted
	}

	return decimal.NewFromString(trimmed)
}

// Number renders a decimal as a plain JSON number.
func Number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}
