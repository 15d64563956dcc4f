package financebrain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// allocationBuckets maps well-known ETF tickers to allocation
// categories. Anything unlisted falls into "Other".
var allocationBuckets = []struct {
	category string
	symbols  []string
}{
	{"US Stocks", []string{"VTI", "VOO", "SPY"}},
	{"International Stocks", []string{"VXUS", "VEA", "VWO"}},
	{"Bonds", []string{"BND", "AGG"}},
	{"Real Estate", []string{"VNQ"}},
}

func bucketFor(symbol string) string {
	for _, b := range allocationBuckets {
		for _, s := range b.symbols {
			if symbol == s {
				return b.category
			}
		}
	}
	return "Other"
}

// AssetAllocation buckets all holdings by ticker symbol and returns the
// value and portfolio share of each non-empty bucket, in a fixed
// category order. When the portfolio total is zero every percentage is
// zero.
func (a *Aggregator) AssetAllocation() []AssetAllocation {
	values := make(map[string]decimal.Decimal)
	total := decimal.Zero

	for _, rec := range a.scanner.ScanByType(TagHolding) {
		value := ParseAmount(rec.Property("current-value"))
		category := bucketFor(rec.Property("symbol"))
		values[category] = values[category].Add(value)
		total = total.Add(value)
	}

	order := make([]string, 0, len(allocationBuckets)+1)
	for _, b := range allocationBuckets {
		order = append(order, b.category)
	}
	order = append(order, "Other")

	var allocations []AssetAllocation
	for _, category := range order {
		value, ok := values[category]
		if !ok {
			continue
		}
		var pct Percent
		if total.IsPositive() {
			share, _ := value.Div(total).Float64()
			pct = Percent(share * 100)
		}
		allocations = append(allocations, AssetAllocation{
			Category:   category,
			Value:      value,
			Percentage: pct,
		})
	}
	return allocations
}

// SpendingByCategory groups expenses within the trailing 30-day window
// by category, defaulting an absent category to "Uncategorized", and
// returns the buckets sorted by amount, largest first.
func (a *Aggregator) SpendingByCategory() []CategorySpend {
	cutoff := trailingCutoff().String()
	totals := make(map[string]decimal.Decimal)

	for _, rec := range a.scanner.ScanByType(string(Expense)) {
		recDate := rec.Property("date")
		if recDate == "" || recDate < cutoff {
			continue
		}
		category := rec.Property("category")
		if category == "" {
			category = "Uncategorized"
		}
		totals[category] = totals[category].Add(ParseAmount(rec.Property("amount")))
	}

	spending := make([]CategorySpend, 0, len(totals))
	for category, amount := range totals {
		spending = append(spending, CategorySpend{Category: category, Amount: amount})
	}
	sort.Slice(spending, func(i, j int) bool {
		if !spending[i].Amount.Equal(spending[j].Amount) {
			return spending[i].Amount.GreaterThan(spending[j].Amount)
		}
		return spending[i].Category < spending[j].Category
	})
	return spending
}

// Performance sums cost basis and market value over all holdings.
func (a *Aggregator) Performance() InvestmentPerformance {
	invested := decimal.Zero
	current := decimal.Zero

	for _, rec := range a.scanner.ScanByType(TagHolding) {
		invested = invested.Add(ParseAmount(rec.Property("cost-basis")))
		current = current.Add(ParseAmount(rec.Property("current-value")))
	}

	gainLoss := current.Sub(invested)
	return InvestmentPerformance{
		TotalInvested:        invested,
		CurrentValue:         current,
		TotalGainLoss:        gainLoss,
		TotalGainLossPercent: PercentageChange(current, invested),
		RealizedGains:        decimal.Zero,
		UnrealizedGains:      gainLoss,
	}
}
