package financebrain

import (
	"math"
	"testing"

	"github.com/zouantchaw/financebrain/date"
	"github.com/zouantchaw/financebrain/graph"
)

func holdingRecord(symbol, value string) map[string]string {
	return map[string]string{
		"type":          "holding",
		"symbol":        symbol,
		"current-value": value,
	}
}

func TestAssetAllocation(t *testing.T) {
	store := graph.NewMemStore()
	store.Add("Finance/Investments", holdingRecord("VTI", "11025"))
	store.Add("Finance/Investments", holdingRecord("VXUS", "4420"))
	store.Add("Finance/Investments", holdingRecord("BND", "2160"))

	allocations := NewAggregator(store).AssetAllocation()
	if len(allocations) != 3 {
		t.Fatalf("AssetAllocation() returned %d buckets, want 3: %+v", len(allocations), allocations)
	}

	// total = 17605
	want := []struct {
		category string
		value    string
		pct      float64
	}{
		{"US Stocks", "11025", 62.6242},
		{"International Stocks", "4420", 25.1065},
		{"Bonds", "2160", 12.2692},
	}

	sum := 0.0
	for i, w := range want {
		got := allocations[i]
		if got.Category != w.category {
			t.Errorf("bucket %d category = %q, want %q", i, got.Category, w.category)
		}
		if !got.Value.Equal(d(w.value)) {
			t.Errorf("bucket %q value = %s, want %s", w.category, got.Value, w.value)
		}
		if math.Abs(float64(got.Percentage)-w.pct) > 0.01 {
			t.Errorf("bucket %q percentage = %v, want ≈%v", w.category, got.Percentage, w.pct)
		}
		sum += float64(got.Percentage)
	}
	if math.Abs(sum-100) > 0.001 {
		t.Errorf("percentages sum to %v, want 100", sum)
	}
}

func TestAssetAllocation_UnknownSymbolIsOther(t *testing.T) {
	store := graph.NewMemStore()
	store.Add("Finance/Investments", holdingRecord("AAPL", "5000"))
	store.Add("Finance/Investments", holdingRecord("VNQ", "5000"))

	allocations := NewAggregator(store).AssetAllocation()
	if len(allocations) != 2 {
		t.Fatalf("returned %d buckets, want 2", len(allocations))
	}
	// Fixed category order puts known buckets before Other.
	if allocations[0].Category != "Real Estate" || allocations[1].Category != "Other" {
		t.Errorf("bucket order = %q, %q", allocations[0].Category, allocations[1].Category)
	}
}

func TestAssetAllocation_ZeroTotal(t *testing.T) {
	store := graph.NewMemStore()
	store.Add("Finance/Investments", holdingRecord("VTI", "0"))
	store.Add("Finance/Investments", holdingRecord("BND", ""))

	for _, a := range NewAggregator(store).AssetAllocation() {
		if !a.Percentage.Equal(0) {
			t.Errorf("bucket %q percentage = %v, want 0 when total is 0", a.Category, a.Percentage)
		}
	}
}

func TestSpendingByCategory(t *testing.T) {
	recent := date.Today().Add(-2).String()
	old := date.Today().Add(-45).String()

	store := graph.NewMemStore()
	page := "Finance/Transactions"
	store.Add(page, map[string]string{"type": "expense", "date": recent, "amount": "80.00", "category": "groceries"})
	store.Add(page, map[string]string{"type": "expense", "date": recent, "amount": "45.50", "category": "groceries"})
	store.Add(page, map[string]string{"type": "expense", "date": recent, "amount": "60.00"}) // no category
	store.Add(page, map[string]string{"type": "expense", "date": old, "amount": "999.00", "category": "travel"})
	store.Add(page, map[string]string{"type": "income", "date": recent, "amount": "5000.00", "category": "salary"})

	spending := NewAggregator(store).SpendingByCategory()
	if len(spending) != 2 {
		t.Fatalf("SpendingByCategory() returned %d buckets, want 2: %+v", len(spending), spending)
	}
	// Sorted by amount, largest first.
	if spending[0].Category != "groceries" || !spending[0].Amount.Equal(d("125.50")) {
		t.Errorf("first bucket = %+v, want groceries 125.50", spending[0])
	}
	if spending[1].Category != "Uncategorized" || !spending[1].Amount.Equal(d("60.00")) {
		t.Errorf("second bucket = %+v, want Uncategorized 60.00", spending[1])
	}
}

func TestPerformance(t *testing.T) {
	store := graph.NewMemStore()
	store.Add("Finance/Investments", map[string]string{
		"type": "holding", "symbol": "VTI", "current-value": "11025.00", "cost-basis": "9000.00",
	})
	store.Add("Finance/Investments", map[string]string{
		"type": "holding", "symbol": "BND", "current-value": "2160.00", "cost-basis": "2400.00",
	})

	p := NewAggregator(store).Performance()
	if !p.TotalInvested.Equal(d("11400.00")) {
		t.Errorf("TotalInvested = %s, want 11400.00", p.TotalInvested)
	}
	if !p.CurrentValue.Equal(d("13185.00")) {
		t.Errorf("CurrentValue = %s, want 13185.00", p.CurrentValue)
	}
	if !p.TotalGainLoss.Equal(d("1785.00")) {
		t.Errorf("TotalGainLoss = %s, want 1785.00", p.TotalGainLoss)
	}
	if !p.UnrealizedGains.Equal(p.TotalGainLoss) {
		t.Errorf("UnrealizedGains = %s, want the whole gain", p.UnrealizedGains)
	}
	if !p.RealizedGains.IsZero() {
		t.Errorf("RealizedGains = %s, want 0", p.RealizedGains)
	}
}
