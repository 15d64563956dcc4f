package financebrain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/zouantchaw/financebrain/date"
)

// InvestmentAccountType is a typed string for investment account categories.
type InvestmentAccountType string

const (
	Brokerage      InvestmentAccountType = "brokerage"
	Retirement     InvestmentAccountType = "retirement"
	FourOhOneK     InvestmentAccountType = "401k"
	RothIRA        InvestmentAccountType = "roth-ira"
	TraditionalIRA InvestmentAccountType = "traditional-ira"
)

// ParseInvestmentAccountType parses a string into an InvestmentAccountType.
func ParseInvestmentAccountType(s string) (InvestmentAccountType, error) {
	switch InvestmentAccountType(s) {
	case Brokerage, Retirement, FourOhOneK, RothIRA, TraditionalIRA:
		return InvestmentAccountType(s), nil
	default:
		return "", fmt.Errorf("unknown investment account type: %q", s)
	}
}

// InvestmentAccount is an investment account record.
//
// TotalValue should approximate CashBalance + InvestedValue; this is
// advisory only and never enforced.
type InvestmentAccount struct {
	Name          string
	Type          InvestmentAccountType
	TotalValue    decimal.Decimal
	CashBalance   decimal.Decimal
	InvestedValue decimal.Decimal
	Institution   string
	LastUpdated   date.Date
}

// Equal reports whether two investment accounts carry the same values.
func (a InvestmentAccount) Equal(b InvestmentAccount) bool {
	return a.Name == b.Name &&
		a.Type == b.Type &&
		a.TotalValue.Equal(b.TotalValue) &&
		a.CashBalance.Equal(b.CashBalance) &&
		a.InvestedValue.Equal(b.InvestedValue) &&
		a.Institution == b.Institution &&
		a.LastUpdated == b.LastUpdated
}
