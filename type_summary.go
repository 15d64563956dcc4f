package financebrain

import (
	"github.com/shopspring/decimal"
	"github.com/zouantchaw/financebrain/date"
)

// FinanceSummary is the overall financial position, recomputed fresh
// from the current record state on every request.
//
// Invariants, for any record set:
//
//	NetWorth = LiquidCash + TotalInvestments − TotalDebt
//	CashFlow = monthly income − MonthlyBurnRate
//	TotalDebt = credit card debt + loan debt
type FinanceSummary struct {
	LiquidCash       decimal.Decimal
	TotalInvestments decimal.Decimal
	NetWorth         decimal.Decimal
	MonthlyBurnRate  decimal.Decimal
	CashFlow         decimal.Decimal
	AvailableCredit  decimal.Decimal
	TotalDebt        decimal.Decimal
	LastUpdated      date.Date
}

// AssetAllocation is one bucket of the holdings breakdown. Percentages
// across all buckets sum to 100, or are all zero when the portfolio
// total is zero.
type AssetAllocation struct {
	Category   string
	Value      decimal.Decimal
	Percentage Percent
}

// CategorySpend is one bucket of the trailing-30-day spending breakdown.
type CategorySpend struct {
	Category string
	Amount   decimal.Decimal
}

// InvestmentPerformance sums cost basis and market value over all
// holdings. Realized gains are not tracked by holding records, so the
// whole gain/loss is reported as unrealized.
type InvestmentPerformance struct {
	TotalInvested        decimal.Decimal
	CurrentValue         decimal.Decimal
	TotalGainLoss        decimal.Decimal
	TotalGainLossPercent Percent
	RealizedGains        decimal.Decimal
	UnrealizedGains      decimal.Decimal
}
