package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/zouantchaw/financebrain/graph"
)

type initCmd struct{}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create the finance page structure in the graph" }
func (*initCmd) Usage() string {
	return `fin init

  Creates the Finance page and its sub-pages (Dashboard, Accounts,
  Investments, Transactions, Statements) in the graph directory.
  Pages that already exist are left untouched; running init twice is safe.
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {}

// structure lists the pages init creates, with the intro block each one
// starts with.
var structure = []struct {
	name  string
	intro string
}{
	{rootPage, "Finance Brain: your personal finance management system."},
	{dashboardPage, "Finance Dashboard. Run 'fin summary' for the current position."},
	{accountsPage, "Accounts. Manage your financial accounts here."},
	{investmentsPage, "Investments. Track your investment portfolio here."},
	{transactionsPage, "Transactions. Expense and income records live here."},
	{statementsPage, "Statements. Imported statements will be organized here."},
}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenGraph()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening graph: %v\n", err)
		return subcommands.ExitFailure
	}

	created, existing := 0, 0
	for _, p := range structure {
		page, err := store.CreatePage(p.name)
		if errors.Is(err, graph.ErrPageExists) {
			existing++
			continue
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating page %q: %v\n", p.name, err)
			return subcommands.ExitFailure
		}
		created++

		rec, err := store.CreateRecord(page.Name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error seeding page %q: %v\n", p.name, err)
			return subcommands.ExitFailure
		}
		if err := store.SetContent(rec.ID, p.intro); err != nil {
			fmt.Fprintf(os.Stderr, "Error seeding page %q: %v\n", p.name, err)
			return subcommands.ExitFailure
		}
	}

	if created > 0 {
		fmt.Printf("Finance structure initialized: created %d pages, %d already existed.\n", created, existing)
	} else {
		fmt.Println("Finance structure already exists.")
	}
	return subcommands.ExitSuccess
}
