package config

import (
	"os"
)

type Config struct {
	ExpensesTable       string
	LogLevel            string
	LocalDynamoEndpoint string
	LocalServerPort     string
}

func ProcessEnvironmentVariables() (*Config, error) {
	// Defaults match the deployed Lambda setup; the local endpoint is only
	// set when running against dynamodb-local.
	env := Config{
		ExpensesTable:       "ExpensesTable",
		LogLevel:            "info",
		LocalDynamoEndpoint: "",
		LocalServerPort:     "9446",
	}

	envExpensesTable := os.Getenv("EXPENSES_TABLE")
	envLogLevel := os.Getenv("LOG_LEVEL")
	envLocalDynamoEndpoint := os.Getenv("LOCAL_DYNAMO_ENDPOINT")
	envLocalServerPort := os.Getenv("LOCAL_SERVER_PORT")

	if len(envExpensesTable) != 0 {
		env.ExpensesTable = envExpensesTable
	}

	if len(envLogLevel) != 0 {
		env.LogLevel = envLogLevel
	}

	if len(envLocalDynamoEndpoint) != 0 {
		env.LocalDynamoEndpoint = envLocalDynamoEndpoint
	}

	if len(envLocalServerPort) != 0 {
		env.LocalServerPort = envLocalServerPort
	}

	return &env, nil
}
