package storage

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/redwood-labs/expense-tracker/internal/config"
	"github.com/redwood-labs/expense-tracker/internal/storage/expensetable"
)

type Storage struct {
	Client *dynamodb.Client
	Items  expensetable.IExpenseTable
}

// NewStorage builds the process-wide storage handle. The invocation runtime
// keeps the process warm between requests, so the client is created once and
// reused; there is no explicit teardown.
func NewStorage(ctx context.Context, env *config.Config) (*Storage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if env.LocalDynamoEndpoint != "" {
			o.BaseEndpoint = aws.String(env.LocalDynamoEndpoint)
		}
	})

	return &Storage{
		Client: client,
		Items:  expensetable.NewExpenseTable(client, env.ExpensesTable),
	}, nil
}
