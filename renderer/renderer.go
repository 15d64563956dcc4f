// Package renderer renders finance reports as markdown documents.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"

	"github.com/zouantchaw/financebrain"
)

func m(v decimal.Decimal, currency string) string {
	return financebrain.M(v, currency).String()
}

// Summary renders the financial position as a markdown document.
func Summary(s financebrain.FinanceSummary, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Finance Summary on %s", s.LastUpdated))
	doc.PlainText(fmt.Sprintf("Net Worth: %s", m(s.NetWorth, currency)))

	doc.H2("Position")
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Liquid Cash", m(s.LiquidCash, currency)},
			{"Total Investments", m(s.TotalInvestments, currency)},
			{"Total Debt", m(s.TotalDebt, currency)},
			{"Available Credit", m(s.AvailableCredit, currency)},
		},
	})

	doc.H2("Trailing 30 Days")
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Burn Rate", m(s.MonthlyBurnRate, currency)},
			{"Cash Flow", m(s.CashFlow, currency)},
		},
	})

	return doc.String()
}

// Allocation renders the asset-allocation breakdown as a markdown table.
func Allocation(allocations []financebrain.AssetAllocation, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Asset Allocation")
	if len(allocations) == 0 {
		doc.PlainText("No holdings recorded.")
		return doc.String()
	}

	rows := make([][]string, 0, len(allocations))
	for _, a := range allocations {
		rows = append(rows, []string{a.Category, m(a.Value, currency), a.Percentage.String()})
	}
	doc.Table(md.TableSet{
		Header: []string{"Category", "Value", "Share"},
		Rows:   rows,
	})
	return doc.String()
}

// Spending renders the trailing 30-day spending buckets as a markdown table.
func Spending(spending []financebrain.CategorySpend, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Spending, last 30 days")
	if len(spending) == 0 {
		doc.PlainText("No expenses recorded in the last 30 days.")
		return doc.String()
	}

	total := decimal.Zero
	rows := make([][]string, 0, len(spending))
	for _, s := range spending {
		rows = append(rows, []string{s.Category, m(s.Amount, currency)})
		total = total.Add(s.Amount)
	}
	rows = append(rows, []string{"Total", m(total, currency)})
	doc.Table(md.TableSet{
		Header: []string{"Category", "Amount"},
		Rows:   rows,
	})
	return doc.String()
}

// Performance renders the holdings performance rollup.
func Performance(p financebrain.InvestmentPerformance, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Investment Performance")
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Invested", m(p.TotalInvested, currency)},
			{"Current Value", m(p.CurrentValue, currency)},
			{"Gain/Loss", m(p.TotalGainLoss, currency)},
			{"Gain/Loss %", p.TotalGainLossPercent.SignedString()},
			{"Unrealized Gains", m(p.UnrealizedGains, currency)},
		},
	})
	return doc.String()
}

// Accounts renders the decoded account list as a markdown table.
func Accounts(accounts []financebrain.Account, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Accounts")
	if len(accounts) == 0 {
		doc.PlainText("No accounts recorded.")
		return doc.String()
	}

	rows := make([][]string, 0, len(accounts))
	for _, a := range accounts {
		limit := "-"
		if !a.CreditLimit.IsZero() {
			limit = m(a.CreditLimit, currency)
		}
		rows = append(rows, []string{
			a.Name,
			string(a.Type),
			a.Institution,
			m(a.Balance, currency),
			limit,
			a.LastUpdated.String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Name", "Type", "Institution", "Balance", "Credit Limit", "Updated"},
		Rows:   rows,
	})
	return doc.String()
}
