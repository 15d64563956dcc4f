package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/zouantchaw/financebrain"
	"github.com/zouantchaw/financebrain/date"
)

type addInvestmentCmd struct {
	name        string
	accountType string
	total       string
	cash        string
	invested    string
	institution string
}

func (*addInvestmentCmd) Name() string     { return "add-investment" }
func (*addInvestmentCmd) Synopsis() string { return "record a new investment account" }
func (*addInvestmentCmd) Usage() string {
	return `fin add-investment -name <name> -type <brokerage|retirement|401k|roth-ira|traditional-ira> [-total <amount>] [-cash <amount>] [-invested <amount>] [-institution <name>]

  Records a new investment account on the Finance/Investments page.
  Total value should approximate cash + invested; this is advisory and
  never enforced.

Usage Examples:
$ fin add-investment -name "Vanguard Brokerage" -type brokerage -total 17605 -cash 500 -invested 17105
`
}

func (c *addInvestmentCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Account name (required).")
	f.StringVar(&c.accountType, "type", "", "Account type: brokerage, retirement, 401k, roth-ira, or traditional-ira (required).")
	f.StringVar(&c.total, "total", "0", "Total account value.")
	f.StringVar(&c.cash, "cash", "0", "Uninvested cash balance.")
	f.StringVar(&c.invested, "invested", "0", "Invested value.")
	f.StringVar(&c.institution, "institution", "", "Institution holding the account.")
}

func (c *addInvestmentCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required")
		return subcommands.ExitUsageError
	}
	accountType, err := financebrain.ParseInvestmentAccountType(c.accountType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	account := financebrain.InvestmentAccount{
		Name:          c.name,
		Type:          accountType,
		TotalValue:    financebrain.ParseAmount(c.total),
		CashBalance:   financebrain.ParseAmount(c.cash),
		InvestedValue: financebrain.ParseAmount(c.invested),
		Institution:   financebrain.CleanName(c.institution),
		LastUpdated:   date.Today(),
	}

	store, err := OpenGraph()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening graph: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := appendRecord(store, investmentsPage, account.Name, financebrain.EncodeInvestmentAccount(account)); err != nil {
		fmt.Fprintf(os.Stderr, "Error recording investment account: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s account %q.\n", account.Type, account.Name)
	return subcommands.ExitSuccess
}
