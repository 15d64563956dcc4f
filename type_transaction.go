package financebrain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/zouantchaw/financebrain/date"
)

// TransactionType is a typed string for transaction directions.
//
// The amount of a transaction is always an unsigned magnitude; the
// direction of the money flow is carried by the type, never by a sign.
type TransactionType string

const (
	Expense    TransactionType = "expense"
	Income     TransactionType = "income"
	Investment TransactionType = "investment"
)

// ParseTransactionType parses a string into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case Expense, Income, Investment:
		return TransactionType(s), nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// Transaction is a single money movement record.
type Transaction struct {
	Date        date.Date
	Amount      decimal.Decimal // unsigned magnitude
	Merchant    string          // merchant for expenses, source for income
	Category    string
	Account     string // account name, stored as a page reference
	Type        TransactionType
	Description string // optional
}

// Equal reports whether two transactions carry the same values.
func (t Transaction) Equal(u Transaction) bool {
	return t.Date == u.Date &&
		t.Amount.Equal(u.Amount) &&
		t.Merchant == u.Merchant &&
		t.Category == u.Category &&
		t.Account == u.Account &&
		t.Type == u.Type &&
		t.Description == u.Description
}
