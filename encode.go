package financebrain

import (
	"fmt"

	"github.com/zouantchaw/financebrain/date"
)

// PropType is the discriminator key carried by every record.
const PropType = "type"

// Type tags discriminating record kinds in the graph. Transaction
// records are tagged directly with their TransactionType.
const (
	TagAccount           = "account"
	TagInvestmentAccount = "investment-account"
	TagHolding           = "holding"
)

// Encoding always emits the hyphenated key forms; these are the
// canonical on-disk names. Money values are stored as fixed two-decimal
// strings, percentages as fixed one-decimal strings, dates as
// YYYY-MM-DD. These are storage formats, distinct from any user-facing
// display formatting.

// EncodeAccount maps an account to its record properties.
func EncodeAccount(a Account) map[string]string {
	props := map[string]string{
		PropType:       TagAccount,
		"account-name": a.Name,
		"account-type": string(a.Type),
		"balance":      FormatAmount(a.Balance),
		"institution":  a.Institution,
		"last-updated": encodeDate(a.LastUpdated),
	}
	if !a.CreditLimit.IsZero() {
		props["credit-limit"] = FormatAmount(a.CreditLimit)
	}
	return props
}

// EncodeInvestmentAccount maps an investment account to its record properties.
func EncodeInvestmentAccount(a InvestmentAccount) map[string]string {
	return map[string]string{
		PropType:         TagInvestmentAccount,
		"account-name":   a.Name,
		"account-type":   string(a.Type),
		"total-value":    FormatAmount(a.TotalValue),
		"cash-balance":   FormatAmount(a.CashBalance),
		"invested-value": FormatAmount(a.InvestedValue),
		"institution":    a.Institution,
		"last-updated":   encodeDate(a.LastUpdated),
	}
}

// EncodeHolding maps a holding to its record properties. The account
// reference is stored in bracketed form.
func EncodeHolding(h Holding) map[string]string {
	return map[string]string{
		PropType:            TagHolding,
		"account":           WrapReference(h.Account),
		"symbol":            h.Symbol,
		"name":              h.Name,
		"shares":            h.Shares.String(),
		"current-price":     FormatAmount(h.CurrentPrice),
		"current-value":     FormatAmount(h.CurrentValue),
		"cost-basis":        FormatAmount(h.CostBasis),
		"gain-loss":         FormatAmount(h.GainLoss),
		"gain-loss-percent": fmt.Sprintf("%.2f", float64(h.GainLossPercent)),
		"percentage":        FormatPercent(h.PercentageOfPortfolio),
	}
}

// EncodeTransaction maps a transaction to its record properties. The
// counterparty key depends on the direction: `merchant` for expenses,
// `source` for income.
func EncodeTransaction(t Transaction) map[string]string {
	props := map[string]string{
		PropType:   string(t.Type),
		"date":     encodeDate(t.Date),
		"amount":   FormatAmount(t.Amount),
		"category": t.Category,
		"account":  WrapReference(t.Account),
	}
	switch t.Type {
	case Expense:
		props["merchant"] = t.Merchant
	case Income:
		props["source"] = t.Merchant
	}
	if t.Description != "" {
		props["description"] = t.Description
	}
	return props
}

func encodeDate(d date.Date) string {
	if d.IsZero() {
		d = date.Today()
	}
	return d.String()
}
