package main

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/redwood-labs/expense-tracker/internal/config"
	"github.com/redwood-labs/expense-tracker/internal/logging"
	"github.com/redwood-labs/expense-tracker/internal/storage"
	"github.com/redwood-labs/expense-tracker/internal/storage/expensetable"
)

// Creates the expenses table against dynamodb-local (or whatever endpoint
// LOCAL_DYNAMO_ENDPOINT points at). Safe to run repeatedly.
func main() {
	_ = godotenv.Load()

	env, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLogging(env.LogLevel)

	ctx := context.Background()

	dbStorage, err := storage.NewStorage(ctx, env)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}

	_, err = dbStorage.Client.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: &env.ExpensesTable,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: attrName(expensetable.AttrUserID), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: attrName(expensetable.AttrItemKey), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: attrName(expensetable.AttrUserID), KeyType: types.KeyTypeHash},
			{AttributeName: attrName(expensetable.AttrItemKey), KeyType: types.KeyTypeRange},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
	if err != nil {
		var inUse *types.ResourceInUseException
		if errors.As(err, &inUse) {
			logger.WithField("table", env.ExpensesTable).Info("table already exists")
			return
		}

		logger.WithError(err).Fatal("dynamodb.CreateTable")
		return
	}

	logger.WithField("table", env.ExpensesTable).Info("table created")
}

func attrName(name string) *string {
	return &name
}
