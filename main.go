package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"github.com/redwood-labs/expense-tracker/api"
	"github.com/redwood-labs/expense-tracker/internal/config"
	"github.com/redwood-labs/expense-tracker/internal/logging"
	"github.com/redwood-labs/expense-tracker/internal/service"
	"github.com/redwood-labs/expense-tracker/internal/storage"
)

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logger.Info("expense-tracker starting")

	dbStorage, err := storage.NewStorage(context.Background(), envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}

	svc := service.NewService(dbStorage)
	router := api.NewRouter(logger, svc)

	lambda.Start(router.Handle)
}
