package financebrain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/zouantchaw/financebrain/date"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestAccountRoundTrip(t *testing.T) {
	account := Account{
		Name:        "Chase Sapphire",
		Type:        CreditCard,
		Balance:     d("1250.50"),
		Institution: "Chase",
		CreditLimit: d("5000.00"),
		LastUpdated: date.New(2025, time.August, 1),
	}

	got := DecodeAccount(EncodeAccount(account))
	if got == nil {
		t.Fatal("DecodeAccount(EncodeAccount(account)) returned nil")
	}
	if !got.Equal(account) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", *got, account)
	}
}

func TestAccountRoundTrip_NoCreditLimit(t *testing.T) {
	account := Account{
		Name:        "Chase Checking",
		Type:        Checking,
		Balance:     d("3500.00"),
		Institution: "Chase",
		LastUpdated: date.New(2025, time.August, 1),
	}

	props := EncodeAccount(account)
	if _, ok := props["credit-limit"]; ok {
		t.Error("credit-limit emitted for an account without one")
	}
	got := DecodeAccount(props)
	if got == nil || !got.Equal(account) {
		t.Errorf("round trip mismatch: got %+v", got)
	}
}

func TestInvestmentAccountRoundTrip(t *testing.T) {
	account := InvestmentAccount{
		Name:          "Vanguard Brokerage",
		Type:          Brokerage,
		TotalValue:    d("17605.00"),
		CashBalance:   d("500.00"),
		InvestedValue: d("17105.00"),
		Institution:   "Vanguard",
		LastUpdated:   date.New(2025, time.July, 15),
	}

	got := DecodeInvestmentAccount(EncodeInvestmentAccount(account))
	if got == nil || !got.Equal(account) {
		t.Errorf("round trip mismatch: got %+v", got)
	}
}

func TestHoldingRoundTrip(t *testing.T) {
	holding := Holding{
		Account:               "Vanguard Brokerage",
		Symbol:                "VTI",
		Name:                  "Vanguard Total Stock Market ETF",
		Shares:                d("37.5"),
		CurrentPrice:          d("294.00"),
		CurrentValue:          d("11025.00"),
		CostBasis:             d("9000.00"),
		GainLoss:              d("2025.00"),
		GainLossPercent:       22.5,
		PercentageOfPortfolio: 62.6,
	}

	props := EncodeHolding(holding)
	if got, want := props["account"], "[[Vanguard Brokerage]]"; got != want {
		t.Errorf("account encoded as %q, want %q", got, want)
	}
	got := DecodeHolding(props)
	if got == nil || !got.Equal(holding) {
		t.Errorf("round trip mismatch: got %+v", got)
	}
}

func TestTransactionRoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		tx   Transaction
		key  string // where the counterparty lands
	}{
		{
			name: "expense uses merchant",
			tx: Transaction{
				Date:        date.New(2025, time.August, 10),
				Amount:      d("125.50"),
				Merchant:    "Whole Foods",
				Category:    "groceries",
				Account:     "Chase Checking",
				Type:        Expense,
				Description: "weekly shop",
			},
			key: "merchant",
		},
		{
			name: "income uses source",
			tx: Transaction{
				Date:     date.New(2025, time.August, 1),
				Amount:   d("5000.00"),
				Merchant: "Acme Corp",
				Category: "salary",
				Account:  "Chase Checking",
				Type:     Income,
			},
			key: "source",
		},
		{
			name: "investment carries no counterparty key",
			tx: Transaction{
				Date:     date.New(2025, time.August, 2),
				Amount:   d("1000.00"),
				Category: "contribution",
				Account:  "Vanguard Brokerage",
				Type:     Investment,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			props := EncodeTransaction(tc.tx)
			if tc.key != "" {
				if got := props[tc.key]; got != tc.tx.Merchant {
					t.Errorf("counterparty stored under %q = %q, want %q", tc.key, got, tc.tx.Merchant)
				}
			}
			got := DecodeTransaction(props)
			if got == nil || !got.Equal(tc.tx) {
				t.Errorf("round trip mismatch: got %+v", got)
			}
		})
	}
}

func TestDecode_TypeMismatchReturnsNil(t *testing.T) {
	props := map[string]string{"type": "holding", "balance": "100"}
	if got := DecodeAccount(props); got != nil {
		t.Errorf("DecodeAccount on a holding record = %+v, want nil", got)
	}
	if got := DecodeInvestmentAccount(props); got != nil {
		t.Errorf("DecodeInvestmentAccount on a holding record = %+v, want nil", got)
	}
	if got := DecodeTransaction(props); got != nil {
		t.Errorf("DecodeTransaction on a holding record = %+v, want nil", got)
	}
	if got := DecodeHolding(map[string]string{"type": "account"}); got != nil {
		t.Errorf("DecodeHolding on an account record = %+v, want nil", got)
	}
}

func TestDecodeAccount_KeyAliases(t *testing.T) {
	hyphenated := map[string]string{
		"type":         "account",
		"account-name": "Chase Checking",
		"account-type": "checking",
		"balance":      "3500.00",
		"last-updated": "2025-08-01",
	}
	compact := map[string]string{
		"type":        "account",
		"accountName": "Chase Checking",
		"accountType": "checking",
		"balance":     "3500.00",
		"lastUpdated": "2025-08-01",
	}

	a := DecodeAccount(hyphenated)
	b := DecodeAccount(compact)
	if a == nil || b == nil {
		t.Fatal("alias decode returned nil")
	}
	if !a.Equal(*b) {
		t.Errorf("alias decode mismatch:\n hyphenated %+v\n compact %+v", *a, *b)
	}

	// When both forms are present the hyphenated one wins.
	both := map[string]string{
		"type":         "account",
		"account-name": "Hyphenated",
		"accountName":  "Compact",
	}
	if got := DecodeAccount(both).Name; got != "Hyphenated" {
		t.Errorf("both forms present: decoded name %q, want \"Hyphenated\"", got)
	}
}

func TestDecode_LenientDefaults(t *testing.T) {
	// Malformed numerics decode to 0, malformed dates to today; decoding
	// never fails on a record of the right type.
	props := map[string]string{
		"type":         "account",
		"account-name": "Sketchy",
		"account-type": "checking",
		"balance":      "not a number",
		"credit-limit": "",
		"last-updated": "once upon a time",
	}
	got := DecodeAccount(props)
	if got == nil {
		t.Fatal("DecodeAccount returned nil for a well-tagged record")
	}
	if !got.Balance.IsZero() {
		t.Errorf("malformed balance decoded to %s, want 0", got.Balance)
	}
	if !got.CreditLimit.IsZero() {
		t.Errorf("empty credit limit decoded to %s, want 0", got.CreditLimit)
	}
	if got.LastUpdated != date.Today() {
		t.Errorf("malformed date decoded to %v, want today", got.LastUpdated)
	}
}

func TestDecodeTransaction_SourceFallback(t *testing.T) {
	props := map[string]string{
		"type":   "income",
		"date":   "2025-08-01",
		"amount": "5000.00",
		"source": "Acme Corp",
	}
	got := DecodeTransaction(props)
	if got == nil {
		t.Fatal("DecodeTransaction returned nil")
	}
	if got.Merchant != "Acme Corp" {
		t.Errorf("Merchant = %q, want \"Acme Corp\"", got.Merchant)
	}
}
