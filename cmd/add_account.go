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

type addAccountCmd struct {
	name        string
	accountType string
	balance     string
	institution string
	limit       string
}

func (*addAccountCmd) Name() string     { return "add-account" }
func (*addAccountCmd) Synopsis() string { return "record a new bank account" }
func (*addAccountCmd) Usage() string {
	return `fin add-account -name <name> -type <checking|savings|credit-card> [-balance <amount>] [-institution <name>] [-limit <amount>]

  Records a new account on the Finance/Accounts page. For a credit card
  the balance is the owed amount and -limit sets the credit limit.

Usage Examples:
$ fin add-account -name "Chase Checking" -type checking -balance 3500 -institution Chase
$ fin add-account -name "Chase Sapphire" -type credit-card -balance 1250.50 -limit 5000
`
}

func (c *addAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Account name (required).")
	f.StringVar(&c.accountType, "type", "", "Account type: checking, savings, or credit-card (required).")
	f.StringVar(&c.balance, "balance", "0", "Current balance; owed amount for a credit card.")
	f.StringVar(&c.institution, "institution", "", "Institution holding the account.")
	f.StringVar(&c.limit, "limit", "", "Credit limit, credit cards only.")
}

func (c *addAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required")
		return subcommands.ExitUsageError
	}
	accountType, err := financebrain.ParseAccountType(c.accountType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	account := financebrain.Account{
		Name:        c.name,
		Type:        accountType,
		Balance:     financebrain.ParseAmount(c.balance),
		Institution: financebrain.CleanName(c.institution),
		CreditLimit: financebrain.ParseAmount(c.limit),
		LastUpdated: date.Today(),
	}

	store, err := OpenGraph()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening graph: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := appendRecord(store, accountsPage, account.Name, financebrain.EncodeAccount(account)); err != nil {
		fmt.Fprintf(os.Stderr, "Error recording account: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s account %q.\n", account.Type, account.Name)
	return subcommands.ExitSuccess
}
