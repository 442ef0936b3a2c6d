package expensetable

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubDynamoClient records inputs and plays back canned outputs.
type stubDynamoClient struct {
	putInput    *dynamodb.PutItemInput
	putErr      error
	getInput    *dynamodb.GetItemInput
	getOutput   *dynamodb.GetItemOutput
	getErr      error
	updateInput *dynamodb.UpdateItemInput
	updateErr   error
	deleteInput *dynamodb.DeleteItemInput
	deleteErr   error
	queryInput  *dynamodb.QueryInput
	queryOutput *dynamodb.QueryOutput
	queryErr    error
}

func (s *stubDynamoClient) PutItem(_ context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	s.putInput = params
	return &dynamodb.PutItemOutput{}, s.putErr
}

func (s *stubDynamoClient) GetItem(_ context.Context, params *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	s.getInput = params
	if s.getOutput == nil {
		return &dynamodb.GetItemOutput{}, s.getErr
	}
	return s.getOutput, s.getErr
}

func (s *stubDynamoClient) UpdateItem(_ context.Context, params *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	s.updateInput = params
	return &dynamodb.UpdateItemOutput{}, s.updateErr
}

func (s *stubDynamoClient) DeleteItem(_ context.Context, params *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	s.deleteInput = params
	return &dynamodb.DeleteItemOutput{}, s.deleteErr
}

func (s *stubDynamoClient) Query(_ context.Context, params *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	s.queryInput = params
	if s.queryOutput == nil {
		return &dynamodb.QueryOutput{}, s.queryErr
	}
	return s.queryOutput, s.queryErr
}

func newTestTable() (*ExpenseTable, *stubDynamoClient) {
	client := &stubDynamoClient{}
	return NewExpenseTable(client, "ExpensesTable"), client
}

func stringAttr(av types.AttributeValue) string {
	if s, ok := av.(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

// -- PutExpense tests --

func TestPutExpense_StoresAmountAsExactNumber(t *testing.T) {
	table, client := newTestTable()

	err := table.PutExpense(context.Background(), &ExpenseItem{
		UserID:    "user-a",
		ExpenseID: "abc-123",
		Category:  "groceries",
		Amount:    Decimal{decimal.RequireFromString("12.10")},
		Date:      "2024-03-15",
		Month:     "2024-03",
		CreatedAt: "2024-03-15T10:30:00Z",
	})

	require.NoError(t, err)
	require.NotNil(t, client.putInput)
	assert.Equal(t, "ExpensesTable", *client.putInput.TableName)

	item := client.putInput.Item
	assert.Equal(t, "user-a", stringAttr(item[AttrUserID]))
	assert.Equal(t, "EXPENSE#abc-123", stringAttr(item[AttrItemKey]))

	amount, ok := item[AttrAmount].(*types.AttributeValueMemberN)
	require.True(t, ok, "amount must be a number attribute")
	stored := decimal.RequireFromString(amount.Value)
	assert.True(t, stored.Equal(decimal.RequireFromString("12.10")), "amount drifted: %s", amount.Value)

	// note is optional but is always written, empty by default
	_, ok = item[AttrNote].(*types.AttributeValueMemberS)
	assert.True(t, ok)
}

func TestPutExpense_StorageError(t *testing.T) {
	table, client := newTestTable()
	client.putErr = errors.New("throttled")

	err := table.PutExpense(context.Background(), &ExpenseItem{ExpenseID: "abc"})

	assert.ErrorContains(t, err, "throttled")
}

// -- ListExpenses tests --

func limitItemAttrs(userID, month, limit string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		AttrUserID:  &types.AttributeValueMemberS{Value: userID},
		AttrItemKey: &types.AttributeValueMemberS{Value: LimitKey(month)},
		AttrMonth:   &types.AttributeValueMemberS{Value: month},
		AttrLimit:   &types.AttributeValueMemberN{Value: limit},
	}
}

func expenseItemAttrs(userID, expenseID, date, amount string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		AttrUserID:    &types.AttributeValueMemberS{Value: userID},
		AttrItemKey:   &types.AttributeValueMemberS{Value: ExpenseKey(expenseID)},
		AttrExpenseID: &types.AttributeValueMemberS{Value: expenseID},
		AttrCategory:  &types.AttributeValueMemberS{Value: "misc"},
		AttrAmount:    &types.AttributeValueMemberN{Value: amount},
		AttrDate:      &types.AttributeValueMemberS{Value: date},
		AttrMonth:     &types.AttributeValueMemberS{Value: date[:7]},
		AttrNote:      &types.AttributeValueMemberS{Value: ""},
		AttrCreatedAt: &types.AttributeValueMemberS{Value: date + "T00:00:00Z"},
	}
}

func TestListExpenses_QueriesPartitionOnly(t *testing.T) {
	table, client := newTestTable()

	_, err := table.ListExpenses(context.Background(), "user-a")

	require.NoError(t, err)
	require.NotNil(t, client.queryInput)
	assert.Equal(t, "userId = :userId", *client.queryInput.KeyConditionExpression)
	assert.Equal(t, "user-a", stringAttr(client.queryInput.ExpressionAttributeValues[":userId"]))
	assert.Nil(t, client.queryInput.FilterExpression, "prefix filtering happens client-side")
}

func TestListExpenses_FiltersOutLimitRecords(t *testing.T) {
	table, client := newTestTable()
	client.queryOutput = &dynamodb.QueryOutput{
		Items: []map[string]types.AttributeValue{
			expenseItemAttrs("user-a", "e1", "2024-03-15", "12.10"),
			limitItemAttrs("user-a", "2024-03", "500"),
			expenseItemAttrs("user-a", "e2", "2024-04-01", "7.25"),
		},
	}

	expenses, err := table.ListExpenses(context.Background(), "user-a")

	require.NoError(t, err)
	require.Len(t, expenses, 2)
	assert.Equal(t, "e1", expenses[0].ExpenseID)
	assert.Equal(t, "e2", expenses[1].ExpenseID)
	assert.True(t, expenses[0].Amount.Equal(decimal.RequireFromString("12.10")))
}

func TestListExpenses_EmptyPartition(t *testing.T) {
	table, _ := newTestTable()

	expenses, err := table.ListExpenses(context.Background(), "user-a")

	require.NoError(t, err)
	assert.Empty(t, expenses)
	assert.NotNil(t, expenses)
}

// -- UpdateExpense tests --

func TestUpdateExpense_DateCarriesMonthInSameCall(t *testing.T) {
	table, client := newTestTable()

	date := "2024-07-01"
	month := "2024-07"
	err := table.UpdateExpense(context.Background(), "user-a", "e1", &ExpenseUpdate{
		Date:  &date,
		Month: &month,
	})

	require.NoError(t, err)
	require.NotNil(t, client.updateInput)
	assert.Equal(t, "EXPENSE#e1", stringAttr(client.updateInput.Key[AttrItemKey]))
	assert.Equal(t, "SET #date = :date, #month = :month", *client.updateInput.UpdateExpression)
	assert.Equal(t, "2024-07-01", stringAttr(client.updateInput.ExpressionAttributeValues[":date"]))
	assert.Equal(t, "2024-07", stringAttr(client.updateInput.ExpressionAttributeValues[":month"]))
}

func TestUpdateExpense_SingleField(t *testing.T) {
	table, client := newTestTable()

	note := "lunch with team"
	err := table.UpdateExpense(context.Background(), "user-a", "e1", &ExpenseUpdate{Note: &note})

	require.NoError(t, err)
	assert.Equal(t, "SET #note = :note", *client.updateInput.UpdateExpression)
	assert.Equal(t, map[string]string{"#note": AttrNote}, client.updateInput.ExpressionAttributeNames)
}

func TestUpdateExpense_AmountIsNumberAttribute(t *testing.T) {
	table, client := newTestTable()

	amount := decimal.RequireFromString("99.99")
	err := table.UpdateExpense(context.Background(), "user-a", "e1", &ExpenseUpdate{Amount: &amount})

	require.NoError(t, err)
	number, ok := client.updateInput.ExpressionAttributeValues[":amount"].(*types.AttributeValueMemberN)
	require.True(t, ok)
	assert.Equal(t, "99.99", number.Value)
}

func TestUpdateExpense_EmptyUpdate(t *testing.T) {
	table, client := newTestTable()

	err := table.UpdateExpense(context.Background(), "user-a", "e1", &ExpenseUpdate{})

	assert.ErrorIs(t, err, ErrNothingToUpdate)
	assert.Nil(t, client.updateInput, "no storage call on empty update")
}

func TestBuildUpdateExpression_DateWithoutMonthRejected(t *testing.T) {
	date := "2024-07-01"
	_, _, _, err := buildUpdateExpression(&ExpenseUpdate{Date: &date})

	assert.Error(t, err)
}

func TestBuildUpdateExpression_AllFields(t *testing.T) {
	category := "transport"
	amount := decimal.RequireFromString("3.20")
	date := "2024-05-02"
	month := "2024-05"
	note := "bus"

	expr, names, values, err := buildUpdateExpression(&ExpenseUpdate{
		Category: &category,
		Amount:   &amount,
		Date:     &date,
		Month:    &month,
		Note:     &note,
	})

	require.NoError(t, err)
	assert.Equal(t, "SET #category = :category, #amount = :amount, #date = :date, #month = :month, #note = :note", expr)
	assert.Len(t, names, 5)
	assert.Len(t, values, 5)
}

// -- DeleteExpense tests --

func TestDeleteExpense_UnconditionalDelete(t *testing.T) {
	table, client := newTestTable()

	err := table.DeleteExpense(context.Background(), "user-a", "e1")

	require.NoError(t, err)
	require.NotNil(t, client.deleteInput)
	assert.Equal(t, "user-a", stringAttr(client.deleteInput.Key[AttrUserID]))
	assert.Equal(t, "EXPENSE#e1", stringAttr(client.deleteInput.Key[AttrItemKey]))
	assert.Nil(t, client.deleteInput.ConditionExpression)
}

// -- Limit tests --

func TestPutLimit_DerivesSortKeyFromMonth(t *testing.T) {
	table, client := newTestTable()

	err := table.PutLimit(context.Background(), &LimitItem{
		UserID: "user-a",
		Month:  "2024-03",
		Limit:  Decimal{decimal.RequireFromString("500.00")},
	})

	require.NoError(t, err)
	assert.Equal(t, "LIMIT#2024-03", stringAttr(client.putInput.Item[AttrItemKey]))

	number, ok := client.putInput.Item[AttrLimit].(*types.AttributeValueMemberN)
	require.True(t, ok)
	assert.True(t, decimal.RequireFromString(number.Value).Equal(decimal.RequireFromString("500.00")))
}

func TestGetLimit_Found(t *testing.T) {
	table, client := newTestTable()
	client.getOutput = &dynamodb.GetItemOutput{Item: limitItemAttrs("user-a", "2024-03", "250.50")}

	limit, err := table.GetLimit(context.Background(), "user-a", "2024-03")

	require.NoError(t, err)
	require.NotNil(t, limit)
	assert.Equal(t, "2024-03", limit.Month)
	assert.True(t, limit.Limit.Equal(decimal.RequireFromString("250.50")))
	assert.Equal(t, "LIMIT#2024-03", stringAttr(client.getInput.Key[AttrItemKey]))
}

func TestGetLimit_AbsentIsNotAnError(t *testing.T) {
	table, _ := newTestTable()

	limit, err := table.GetLimit(context.Background(), "user-a", "2024-03")

	assert.NoError(t, err)
	assert.Nil(t, limit)
}

// Store-then-fetch: an amount written by PutExpense and read back through
// ListExpenses must compare exactly equal, with no float drift.
func TestAmountRoundTrip_ExactDecimal(t *testing.T) {
	table, client := newTestTable()

	original := decimal.RequireFromString("12.10")
	err := table.PutExpense(context.Background(), &ExpenseItem{
		UserID:    "user-a",
		ExpenseID: "e1",
		Category:  "misc",
		Amount:    Decimal{original},
		Date:      "2024-03-15",
		Month:     "2024-03",
	})
	require.NoError(t, err)

	client.queryOutput = &dynamodb.QueryOutput{
		Items: []map[string]types.AttributeValue{client.putInput.Item},
	}

	expenses, err := table.ListExpenses(context.Background(), "user-a")
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.True(t, expenses[0].Amount.Equal(original), "got %s", expenses[0].Amount.String())
}
