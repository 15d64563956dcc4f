package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/zouantchaw/financebrain"
)

// txFlags are the flags shared by the expense and income commands.
type txFlags struct {
	amount      string
	counterpart string
	category    string
	account     string
	date        string
	description string
}

func (c *txFlags) set(f *flag.FlagSet, counterpartName, counterpartUsage string) {
	f.StringVar(&c.amount, "amount", "", "Transaction amount, always a positive magnitude (required).")
	f.StringVar(&c.counterpart, counterpartName, "", counterpartUsage)
	f.StringVar(&c.category, "category", "", "Category for spending breakdowns.")
	f.StringVar(&c.account, "account", "", "Account name the money moved through.")
	f.StringVar(&c.date, "date", "", "Transaction date (YYYY-MM-DD), defaults to today.")
	f.StringVar(&c.description, "note", "", "Optional free-text note.")
}

// record validates, encodes, and persists the transaction.
func (c *txFlags) record(typ financebrain.TransactionType) subcommands.ExitStatus {
	amount := financebrain.ParseAmount(c.amount)
	if !amount.IsPositive() {
		fmt.Fprintln(os.Stderr, "Error: -amount must be a positive number")
		return subcommands.ExitUsageError
	}

	tx := financebrain.Transaction{
		Date:        financebrain.ParseDate(c.date),
		Amount:      amount,
		Merchant:    financebrain.CleanName(c.counterpart),
		Category:    c.category,
		Account:     c.account,
		Type:        typ,
		Description: c.description,
	}

	store, err := OpenGraph()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening graph: %v\n", err)
		return subcommands.ExitFailure
	}
	content := fmt.Sprintf("%s %s", tx.Merchant, financebrain.FormatAmount(tx.Amount))
	if err := appendRecord(store, transactionsPage, content, financebrain.EncodeTransaction(tx)); err != nil {
		fmt.Fprintf(os.Stderr, "Error recording %s: %v\n", typ, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s of %s on %s.\n", typ, financebrain.FormatAmount(tx.Amount), tx.Date)
	return subcommands.ExitSuccess
}

type expenseCmd struct{ txFlags }

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record an expense" }
func (*expenseCmd) Usage() string {
	return `fin expense -amount <amount> [-merchant <name>] [-category <name>] [-account <name>] [-date <YYYY-MM-DD>] [-note <text>]

  Records an expense on the Finance/Transactions page. The amount is an
  unsigned magnitude; the direction is carried by the record type.

Usage Examples:
$ fin expense -amount 125.50 -merchant "Whole Foods" -category groceries -account "Chase Checking"
`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	c.set(f, "merchant", "Merchant the expense was paid to.")
}

func (c *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.record(financebrain.Expense)
}

type incomeCmd struct{ txFlags }

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "record an income" }
func (*incomeCmd) Usage() string {
	return `fin income -amount <amount> [-source <name>] [-category <name>] [-account <name>] [-date <YYYY-MM-DD>] [-note <text>]

  Records an income on the Finance/Transactions page.

Usage Examples:
$ fin income -amount 5000 -source "Acme Corp" -category salary -account "Chase Checking"
`
}

func (c *incomeCmd) SetFlags(f *flag.FlagSet) {
	c.set(f, "source", "Source the income came from.")
}

func (c *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.record(financebrain.Income)
}
