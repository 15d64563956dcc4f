package financebrain

import (
	"log"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/zouantchaw/financebrain/date"
	"github.com/zouantchaw/financebrain/graph"
)

// trailingWindowDays is the size of the "monthly" window used by the
// burn rate, cash flow, and spending breakdowns.
const trailingWindowDays = 30

// Aggregator computes financial rollups by scanning the current record
// state. Every aggregate is a stateless pure reduction: a missing or
// unparseable numeric field contributes 0, categorization is by exact
// type-tag match with no case folding, and nothing is cached between
// calls.
type Aggregator struct {
	scanner *Scanner
}

// NewAggregator returns an aggregator scanning the given store.
func NewAggregator(store graph.Store) *Aggregator {
	return &Aggregator{scanner: NewScanner(store)}
}

// sumAccounts sums the balance of account records whose account-type is
// one of the given literals.
func (a *Aggregator) sumAccounts(types ...string) decimal.Decimal {
	total := decimal.Zero
	for _, rec := range a.scanner.ScanByType(TagAccount) {
		accountType := rec.Property("account-type")
		for _, t := range types {
			if accountType == t {
				total = total.Add(ParseAmount(rec.Property("balance")))
				break
			}
		}
	}
	return total
}

// LiquidCash sums the balances of checking and savings accounts.
func (a *Aggregator) LiquidCash() decimal.Decimal {
	return a.sumAccounts(string(Checking), string(Savings))
}

// CreditCardDebt sums the owed balances of credit-card accounts.
func (a *Aggregator) CreditCardDebt() decimal.Decimal {
	return a.sumAccounts(string(CreditCard))
}

// LoanDebt sums the balances of loan accounts.
func (a *Aggregator) LoanDebt() decimal.Decimal {
	return a.sumAccounts("loan")
}

// LoanAccounts returns the raw records of all loan accounts.
func (a *Aggregator) LoanAccounts() []*graph.Block {
	var loans []*graph.Block
	for _, rec := range a.scanner.ScanByType(TagAccount) {
		if rec.Property("account-type") == "loan" {
			loans = append(loans, rec)
		}
	}
	return loans
}

// TotalInvestments sums the total value of all investment accounts.
func (a *Aggregator) TotalInvestments() decimal.Decimal {
	total := decimal.Zero
	for _, rec := range a.scanner.ScanByType(TagInvestmentAccount) {
		total = total.Add(ParseAmount(rec.Property("total-value")))
	}
	return total
}

// AvailableCredit sums creditLimit − balance over credit-card accounts
// that carry a positive credit limit; limit-less accounts contribute 0,
// never a negative penalty.
func (a *Aggregator) AvailableCredit() decimal.Decimal {
	total := decimal.Zero
	for _, rec := range a.scanner.ScanByType(TagAccount) {
		if rec.Property("account-type") != string(CreditCard) {
			continue
		}
		limit := ParseAmount(rec.Property("credit-limit"))
		if !limit.IsPositive() {
			continue
		}
		total = total.Add(limit.Sub(ParseAmount(rec.Property("balance"))))
	}
	return total
}

// NetWorth is liquid cash plus investments minus all debt.
func (a *Aggregator) NetWorth() decimal.Decimal {
	return a.LiquidCash().
		Add(a.TotalInvestments()).
		Sub(a.CreditCardDebt()).
		Sub(a.LoanDebt())
}

// sumFrom sums the amount of records with the given type tag dated on or
// after the cutoff. The comparison is lexicographic, which is
// chronologically correct because dates are always stored as YYYY-MM-DD.
func (a *Aggregator) sumFrom(typeTag, cutoff string) decimal.Decimal {
	total := decimal.Zero
	for _, rec := range a.scanner.ScanByType(typeTag) {
		recDate := rec.Property("date")
		if recDate == "" || recDate < cutoff {
			continue
		}
		total = total.Add(ParseAmount(rec.Property("amount")))
	}
	return total
}

// ExpensesFrom sums expense amounts dated on or after the cutoff date.
func (a *Aggregator) ExpensesFrom(cutoff date.Date) decimal.Decimal {
	return a.sumFrom(string(Expense), cutoff.String())
}

// IncomeFrom sums income amounts dated on or after the cutoff date.
func (a *Aggregator) IncomeFrom(cutoff date.Date) decimal.Decimal {
	return a.sumFrom(string(Income), cutoff.String())
}

// trailingCutoff returns the start of the trailing monthly window.
func trailingCutoff() date.Date {
	return date.Today().Add(-trailingWindowDays)
}

// MonthlyExpenses sums expenses within the trailing 30-day window.
// Investment-type transactions count as neither expense nor income.
func (a *Aggregator) MonthlyExpenses() decimal.Decimal {
	return a.ExpensesFrom(trailingCutoff())
}

// MonthlyIncome sums income within the trailing 30-day window.
func (a *Aggregator) MonthlyIncome() decimal.Decimal {
	return a.IncomeFrom(trailingCutoff())
}

// Summary composes all base aggregates into a financial summary. The
// base aggregates are independent read-only scans, so they are issued
// concurrently purely to reduce wall-clock latency; there is no
// snapshot isolation across them. If any aggregate fails, the whole
// summary degrades to all zeroes with LastUpdated set to now: a partial
// failure never yields a partially-correct summary.
func (a *Aggregator) Summary() FinanceSummary {
	var (
		liquidCash     decimal.Decimal
		investments    decimal.Decimal
		creditCardDebt decimal.Decimal
		loanDebt       decimal.Decimal
		available      decimal.Decimal
		expenses       decimal.Decimal
		income         decimal.Decimal
	)

	var wg sync.WaitGroup
	var mu sync.Mutex
	failed := false

	run := func(name string, f func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					log.Printf("aggregate %s failed: %v", name, r)
					mu.Lock()
					failed = true
					mu.Unlock()
				}
			}()
			f()
		}()
	}

	run("liquid-cash", func() { liquidCash = a.LiquidCash() })
	run("total-investments", func() { investments = a.TotalInvestments() })
	run("credit-card-debt", func() { creditCardDebt = a.CreditCardDebt() })
	run("loan-debt", func() { loanDebt = a.LoanDebt() })
	run("available-credit", func() { available = a.AvailableCredit() })
	run("monthly-expenses", func() { expenses = a.MonthlyExpenses() })
	run("monthly-income", func() { income = a.MonthlyIncome() })
	wg.Wait()

	if failed {
		return FinanceSummary{LastUpdated: date.Today()}
	}

	return FinanceSummary{
		LiquidCash:       liquidCash,
		TotalInvestments: investments,
		NetWorth:         liquidCash.Add(investments).Sub(creditCardDebt).Sub(loanDebt),
		MonthlyBurnRate:  expenses,
		CashFlow:         income.Sub(expenses),
		AvailableCredit:  available,
		TotalDebt:        creditCardDebt.Add(loanDebt),
		LastUpdated:      date.Today(),
	}
}
