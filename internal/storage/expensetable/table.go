package expensetable

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ErrNothingToUpdate is returned when an update would produce an empty SET
// expression.
var ErrNothingToUpdate = errors.New("expensetable: update has no fields")

var _ IExpenseTable = (*ExpenseTable)(nil)

// ExpenseTable accesses the single expense-tracker table.
type ExpenseTable struct {
	client    DynamoAPI
	tableName string
}

func NewExpenseTable(client DynamoAPI, tableName string) *ExpenseTable {
	return &ExpenseTable{
		client:    client,
		tableName: tableName,
	}
}

func (t *ExpenseTable) key(userID, itemKey string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		AttrUserID:  &types.AttributeValueMemberS{Value: userID},
		AttrItemKey: &types.AttributeValueMemberS{Value: itemKey},
	}
}

// PutExpense stores a new expense record. The sort key is derived from the
// expense ID; the put is unconditional because IDs are freshly generated.
func (t *ExpenseTable) PutExpense(ctx context.Context, item *ExpenseItem) error {
	item.ItemKey = ExpenseKey(item.ExpenseID)

	attrs, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("marshalling expense item: %w", err)
	}

	_, err = t.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(t.tableName),
		Item:      attrs,
	})
	if err != nil {
		return fmt.Errorf("putting expense item: %w", err)
	}

	return nil
}

// ListExpenses queries the user's whole partition and keeps only expense
// records. Limit records share the partition and are filtered out here, not
// in the query itself.
func (t *ExpenseTable) ListExpenses(ctx context.Context, userID string) ([]*ExpenseItem, error) {
	resp, err := t.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(t.tableName),
		KeyConditionExpression: aws.String(AttrUserID + " = :userId"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":userId": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("querying expenses: %w", err)
	}

	expenses := make([]*ExpenseItem, 0, len(resp.Items))
	for _, raw := range resp.Items {
		itemKey, ok := raw[AttrItemKey].(*types.AttributeValueMemberS)
		if !ok || !strings.HasPrefix(itemKey.Value, PrefixExpense) {
			continue
		}

		item := &ExpenseItem{}
		if err := attributevalue.UnmarshalMap(raw, item); err != nil {
			return nil, fmt.Errorf("unmarshalling expense item: %w", err)
		}
		expenses = append(expenses, item)
	}

	return expenses, nil
}

// UpdateExpense applies a partial update in a single UpdateItem call. There
// is no existence precondition: updating a missing record creates a partial
// item at the storage layer, which callers accept as last-write-wins
// semantics.
func (t *ExpenseTable) UpdateExpense(ctx context.Context, userID string, expenseID string, update *ExpenseUpdate) error {
	expr, names, values, err := buildUpdateExpression(update)
	if err != nil {
		return err
	}

	_, err = t.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(t.tableName),
		Key:                       t.key(userID, ExpenseKey(expenseID)),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	if err != nil {
		return fmt.Errorf("updating expense item: %w", err)
	}

	return nil
}

// buildUpdateExpression maps the set fields of an update to a SET expression.
// All attribute names go through aliases because date, month, note and limit
// are reserved words.
func buildUpdateExpression(update *ExpenseUpdate) (string, map[string]string, map[string]types.AttributeValue, error) {
	if update == nil || update.IsEmpty() {
		return "", nil, nil, ErrNothingToUpdate
	}
	if (update.Date == nil) != (update.Month == nil) {
		return "", nil, nil, errors.New("expensetable: date and month must be updated together")
	}

	var assignments []string
	names := make(map[string]string)
	values := make(map[string]types.AttributeValue)

	set := func(attr string, value types.AttributeValue) {
		alias := "#" + attr
		placeholder := ":" + attr
		assignments = append(assignments, alias+" = "+placeholder)
		names[alias] = attr
		values[placeholder] = value
	}

	if update.Category != nil {
		set(AttrCategory, &types.AttributeValueMemberS{Value: *update.Category})
	}
	if update.Amount != nil {
		set(AttrAmount, &types.AttributeValueMemberN{Value: update.Amount.String()})
	}
	if update.Date != nil {
		set(AttrDate, &types.AttributeValueMemberS{Value: *update.Date})
		set(AttrMonth, &types.AttributeValueMemberS{Value: *update.Month})
	}
	if update.Note != nil {
		set(AttrNote, &types.AttributeValueMemberS{Value: *update.Note})
	}

	return "SET " + strings.Join(assignments, ", "), names, values, nil
}

// DeleteExpense removes an expense record. Deleting a record that does not
// exist is not an error.
func (t *ExpenseTable) DeleteExpense(ctx context.Context, userID string, expenseID string) error {
	_, err := t.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(t.tableName),
		Key:       t.key(userID, ExpenseKey(expenseID)),
	})
	if err != nil {
		return fmt.Errorf("deleting expense item: %w", err)
	}

	return nil
}

// PutLimit stores or wholesale-replaces the limit record for a month.
func (t *ExpenseTable) PutLimit(ctx context.Context, item *LimitItem) error {
	item.ItemKey = LimitKey(item.Month)

	attrs, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("marshalling limit item: %w", err)
	}

	_, err = t.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(t.tableName),
		Item:      attrs,
	})
	if err != nil {
		return fmt.Errorf("putting limit item: %w", err)
	}

	return nil
}

// GetLimit fetches the limit record for a month. A missing record returns
// (nil, nil); absence of a limit is a normal state.
func (t *ExpenseTable) GetLimit(ctx context.Context, userID string, month string) (*LimitItem, error) {
	resp, err := t.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(t.tableName),
		Key:       t.key(userID, LimitKey(month)),
	})
	if err != nil {
		return nil, fmt.Errorf("getting limit item: %w", err)
	}

	if len(resp.Item) == 0 {
		return nil, nil
	}

	item := &LimitItem{}
	if err := attributevalue.UnmarshalMap(resp.Item, item); err != nil {
		return nil, fmt.Errorf("unmarshalling limit item: %w", err)
	}

	return item, nil
}
