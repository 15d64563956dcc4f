package financebrain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/zouantchaw/financebrain/date"
)

// AccountType is a typed string for bank account categories.
type AccountType string

const (
	Checking   AccountType = "checking"
	Savings    AccountType = "savings"
	CreditCard AccountType = "credit-card"
)

// ParseAccountType parses a string into an AccountType.
func ParseAccountType(s string) (AccountType, error) {
	switch AccountType(s) {
	case Checking, Savings, CreditCard:
		return AccountType(s), nil
	default:
		return "", fmt.Errorf("unknown account type: %q", s)
	}
}

// Account is a bank account record.
//
// For checking and savings accounts the balance is an asset; for a
// credit card it is the owed amount, a liability. CreditLimit is only
// meaningful for credit cards.
type Account struct {
	Name        string
	Type        AccountType
	Balance     decimal.Decimal
	Institution string
	CreditLimit decimal.Decimal // zero when the account carries no limit
	LastUpdated date.Date
}

// Equal reports whether two accounts carry the same values.
func (a Account) Equal(b Account) bool {
	return a.Name == b.Name &&
		a.Type == b.Type &&
		a.Balance.Equal(b.Balance) &&
		a.Institution == b.Institution &&
		a.CreditLimit.Equal(b.CreditLimit) &&
		a.LastUpdated == b.LastUpdated
}
