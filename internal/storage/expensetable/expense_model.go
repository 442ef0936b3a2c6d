package expensetable

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// Decimal stores a decimal.Decimal as a DynamoDB number attribute so amounts
// keep their exact decimal representation and never pass through float64.
type Decimal struct {
	decimal.Decimal
}

func (d Decimal) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	return &types.AttributeValueMemberN{Value: d.String()}, nil
}

func (d *Decimal) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	number, ok := av.(*types.AttributeValueMemberN)
	if !ok {
		return fmt.Errorf("expected number attribute, got %T", av)
	}

	parsed, err := decimal.NewFromString(number.Value)
	if err != nil {
		return fmt.Errorf("parsing number attribute: %w", err)
	}

	d.Decimal = parsed
	return nil
}

// ExpenseItem is a stored expense record.
type ExpenseItem struct {
	UserID    string  `dynamodbav:"userId"`
	ItemKey   string  `dynamodbav:"itemKey"`
	ExpenseID string  `dynamodbav:"expenseId"`
	Category  string  `dynamodbav:"category"`
	Amount    Decimal `dynamodbav:"amount"`
	Date      string  `dynamodbav:"date"`
	Month     string  `dynamodbav:"month"`
	Note      string  `dynamodbav:"note"`
	CreatedAt string  `dynamodbav:"createdAt"`
}

// LimitItem is a stored monthly spending limit. One per (user, month);
// writing it replaces any existing record wholesale.
type LimitItem struct {
	UserID  string  `dynamodbav:"userId"`
	ItemKey string  `dynamodbav:"itemKey"`
	Month   string  `dynamodbav:"month"`
	Limit   Decimal `dynamodbav:"limit"`
}

// ExpenseUpdate is a partial update of an expense record. Nil fields are left
// untouched. Month must be set whenever Date is set so the two never disagree.
type ExpenseUpdate struct {
	Category *string
	Amount   *decimal.Decimal
	Date     *string
	Month    *string
	Note     *string
}

// IsEmpty reports whether the update touches no fields.
func (u *ExpenseUpdate) IsEmpty() bool {
	return u.Category == nil && u.Amount == nil && u.Date == nil && u.Note == nil
}

// DynamoAPI is the subset of the DynamoDB client used by the table. Tests
// substitute a stub implementation.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// IExpenseTable defines the interface for expense and limit storage
// operations. Each method issues exactly one DynamoDB call.
//
//go:generate mockery --name IExpenseTable --output mock_IExpenseTable.go
type IExpenseTable interface {
	PutExpense(ctx context.Context, item *ExpenseItem) error
	ListExpenses(ctx context.Context, userID string) ([]*ExpenseItem, error)
	UpdateExpense(ctx context.Context, userID string, expenseID string, update *ExpenseUpdate) error
	DeleteExpense(ctx context.Context, userID string, expenseID string) error
	PutLimit(ctx context.Context, item *LimitItem) error
	GetLimit(ctx context.Context, userID string, month string) (*LimitItem, error)
}
