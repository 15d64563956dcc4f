package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/zouantchaw/financebrain"
	"github.com/zouantchaw/financebrain/renderer"
)

// report opens the graph, checks the structure, and renders markdown
// produced from an aggregator.
func report(render func(*financebrain.Aggregator) string) subcommands.ExitStatus {
	store, err := OpenGraph()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening graph: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := requireInitialized(store); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(render(financebrain.NewAggregator(store)))
	return subcommands.ExitSuccess
}

type allocationCmd struct{}

func (*allocationCmd) Name() string     { return "allocation" }
func (*allocationCmd) Synopsis() string { return "display the asset allocation of all holdings" }
func (*allocationCmd) Usage() string {
	return `fin allocation

  Buckets holdings by ticker symbol (US stocks, international stocks,
  bonds, real estate, other) and shows each bucket's share of the
  portfolio.
`
}

func (c *allocationCmd) SetFlags(f *flag.FlagSet) {}

func (c *allocationCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return report(func(a *financebrain.Aggregator) string {
		return renderer.Allocation(a.AssetAllocation(), *currency)
	})
}

type spendingCmd struct{}

func (*spendingCmd) Name() string     { return "spending" }
func (*spendingCmd) Synopsis() string { return "display spending by category for the last 30 days" }
func (*spendingCmd) Usage() string {
	return `fin spending

  Groups expenses of the trailing 30-day window by category.
`
}

func (c *spendingCmd) SetFlags(f *flag.FlagSet) {}

func (c *spendingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return report(func(a *financebrain.Aggregator) string {
		return renderer.Spending(a.SpendingByCategory(), *currency)
	})
}

type performanceCmd struct{}

func (*performanceCmd) Name() string     { return "performance" }
func (*performanceCmd) Synopsis() string { return "display the holdings performance rollup" }
func (*performanceCmd) Usage() string {
	return `fin performance

  Sums cost basis and market value over all holdings.
`
}

func (c *performanceCmd) SetFlags(f *flag.FlagSet) {}

func (c *performanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return report(func(a *financebrain.Aggregator) string {
		return renderer.Performance(a.Performance(), *currency)
	})
}

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list all recorded bank accounts" }
func (*accountsCmd) Usage() string {
	return `fin accounts

  Lists every account record, decoded and rendered as a table.
`
}

func (c *accountsCmd) SetFlags(f *flag.FlagSet) {}

func (c *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenGraph()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening graph: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := requireInitialized(store); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var accounts []financebrain.Account
	for _, rec := range financebrain.NewScanner(store).ScanByType(financebrain.TagAccount) {
		if a := financebrain.DecodeAccount(rec.Properties); a != nil {
			accounts = append(accounts, *a)
		}
	}
	printMarkdown(renderer.Accounts(accounts, *currency))
	return subcommands.ExitSuccess
}
