package logging

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus"
)

// EventHandler is the signature shared by the routed endpoint handlers.
type EventHandler func(ctx context.Context, event events.APIGatewayProxyRequest, logData *LogData) (events.APIGatewayProxyResponse, error)

// HandlerWrapper times the wrapped handler and flushes the collected log
// fields once it completes. Handler errors are logged here, never returned to
// the invoker: the handler's response already carries the client-safe body.
func HandlerWrapper(
	loggingName string,
	log *logrus.Logger,
	handler EventHandler,
) func(context.Context, events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	return func(ctx context.Context, event events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
		logData := NewLogData(log)
		log.Infof("Handler.%v.Start", loggingName)

		endTimer := logData.AddTiming("duration")
		resp, err := handler(ctx, event, logData)
		endTimer()

		if resp.StatusCode == 0 {
			resp = events.APIGatewayProxyResponse{
				StatusCode: 500,
				Headers: map[string]string{
					"Content-Type":                "application/json",
					"Access-Control-Allow-Origin": "*",
				},
				Body: `{"message": "Internal server error"}`,
			}
		}

		logData.AddData("statusCode", resp.StatusCode)

		if err != nil {
			logData.Log().WithError(err).Errorf("Handler.%v.Error", loggingName)
			return resp
		}

		logData.Log().Infof("Handler.%v.Complete", loggingName)
		return resp
	}
}
