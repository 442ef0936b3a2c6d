package main

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/redwood-labs/expense-tracker/api"
	"github.com/redwood-labs/expense-tracker/internal/config"
	"github.com/redwood-labs/expense-tracker/internal/logging"
	"github.com/redwood-labs/expense-tracker/internal/service"
	"github.com/redwood-labs/expense-tracker/internal/storage"
)

// Local development server. Translates plain HTTP requests into API Gateway
// proxy events and feeds them through the same router the Lambda uses, so the
// whole stack can be exercised against dynamodb-local without deploying.
//
// Identity comes from the X-User-ID header instead of Cognito claims.
func main() {
	_ = godotenv.Load()

	env, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLogging(env.LogLevel)

	dbStorage, err := storage.NewStorage(context.Background(), env)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}

	svc := service.NewService(dbStorage)
	router := api.NewRouter(logger, svc)

	http.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		event, err := translateRequest(req)
		if err != nil {
			logger.WithError(err).Error("LocalServer.translate")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		resp, err := router.Handle(req.Context(), event)
		if err != nil {
			logger.WithError(err).Error("LocalServer.handle")
		}

		for name, value := range resp.Headers {
			w.Header().Set(name, value)
		}
		w.WriteHeader(resp.StatusCode)
		_, _ = io.WriteString(w, resp.Body)
	})

	server := http.Server{
		Addr:              ":" + env.LocalServerPort,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	logger.WithField("port", env.LocalServerPort).Info("LocalServer.listening")
	err = server.ListenAndServe()
	if err != nil {
		logger.WithError(err).Error("LocalServer.listen error")
	}
}

// translateRequest maps an HTTP request onto the API Gateway event shape the
// router expects. Paths like /expenses/<id> become the templated resource
// /expenses/{id} with the id carried in PathParameters.
func translateRequest(req *http.Request) (events.APIGatewayProxyRequest, error) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		return events.APIGatewayProxyRequest{}, err
	}

	resource := req.URL.Path
	pathParameters := map[string]string{}

	if rest, ok := strings.CutPrefix(req.URL.Path, "/expenses/"); ok && rest != "" {
		resource = "/expenses/{id}"
		pathParameters["id"] = rest
	}

	event := events.APIGatewayProxyRequest{
		Resource:       resource,
		Path:           req.URL.Path,
		HTTPMethod:     req.Method,
		Body:           string(body),
		PathParameters: pathParameters,
	}

	if userID := req.Header.Get("X-User-ID"); userID != "" {
		event.RequestContext.Authorizer = map[string]interface{}{
			"claims": map[string]interface{}{"sub": userID},
		}
	}

	return event, nil
}
