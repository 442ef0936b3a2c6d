package expensetable

// Sort key prefixes. Expense and limit records share the user's partition and
// are told apart by the itemKey prefix.
const (
	PrefixExpense = "EXPENSE#"
	PrefixLimit   = "LIMIT#"
)

// Attribute names for table items. date, month, note and limit are DynamoDB
// reserved words, so update expressions always go through name aliases.
const (
	AttrUserID    = "userId"
	AttrItemKey   = "itemKey"
	AttrExpenseID = "expenseId"
	AttrCategory  = "category"
	AttrAmount    = "amount"
	AttrDate      = "date"
	AttrMonth     = "month"
	AttrNote      = "note"
	AttrCreatedAt = "createdAt"
	AttrLimit     = "limit"
)

// ExpenseKey returns the sort key for an expense record.
func ExpenseKey(expenseID string) string {
	return PrefixExpense + expenseID
}

// LimitKey returns the sort key for a monthly limit record.
func LimitKey(month string) string {
	return PrefixLimit + month
}
