// Package cmd implements the CLI application to manage the finance graph.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"sort"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/zouantchaw/financebrain/graph"
)

// The finance page structure. All record and report commands require it;
// `fin init` creates it.
const (
	rootPage         = "Finance"
	dashboardPage    = "Finance/Dashboard"
	accountsPage     = "Finance/Accounts"
	investmentsPage  = "Finance/Investments"
	transactionsPage = "Finance/Transactions"
	statementsPage   = "Finance/Statements"
)

// ErrNotInitialized reports that a command ran against a graph without
// the finance page structure.
var ErrNotInitialized = errors.New("finance structure not initialized, run 'fin init' first")

// Settings are the environment-level defaults; flags override them.
type Settings struct {
	Graph    string `env:"FINBRAIN_GRAPH" envDefault:"finance-graph"`
	Currency string `env:"FINBRAIN_CURRENCY" envDefault:"USD"`
}

func loadSettings() Settings {
	var s Settings
	if err := env.Parse(&s); err != nil {
		log.Printf("warning, could not read environment settings: %v", err)
		return Settings{Graph: "finance-graph", Currency: "USD"}
	}
	return s
}

// as a CLI application, it has a very short lived lifecycle, so it is ok
// to use global variables.
var settings = loadSettings()

var graphDir = flag.String("graph", settings.Graph, "Path to the directory holding the markdown page files")
var currency = flag.String("currency", settings.Currency, "Display currency label (no conversion is ever performed)")

// Commands lists every subcommand; a main package registers them on a
// commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&initCmd{},
	&addAccountCmd{},
	&addInvestmentCmd{},
	&expenseCmd{},
	&incomeCmd{},
	&summaryCmd{},
	&allocationCmd{},
	&spendingCmd{},
	&performanceCmd{},
	&accountsCmd{},
	&assistCmd{},
}

// OpenGraph opens the file-backed graph at the configured directory.
func OpenGraph() (*graph.FileStore, error) {
	return graph.Open(*graphDir)
}

// requireInitialized degrades a missing finance structure to the
// distinguishable ErrNotInitialized condition.
func requireInitialized(store graph.Store) error {
	_, err := store.GetPage(rootPage)
	if errors.Is(err, graph.ErrPageNotFound) {
		return ErrNotInitialized
	}
	return err
}

// appendRecord persists an encoded property map as a new record on the
// given page, one SetProperty call per key.
func appendRecord(store graph.Store, page, content string, props map[string]string) error {
	rec, err := store.CreateRecord(page)
	if err != nil {
		if errors.Is(err, graph.ErrPageNotFound) {
			return ErrNotInitialized
		}
		return err
	}
	if content != "" {
		if err := store.SetContent(rec.ID, content); err != nil {
			return err
		}
	}
	keys := make([]string, 0, len(props))
	for k := range props {
		if k != "type" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	if _, ok := props["type"]; ok {
		keys = append([]string{"type"}, keys...)
	}
	for _, k := range keys {
		if err := store.SetProperty(rec.ID, k, props[k]); err != nil {
			return err
		}
	}
	return nil
}

// printMarkdown renders a markdown report for the terminal.
func printMarkdown(markdown string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(markdown)
		return
	}
	out, err := r.Render(markdown)
	if err != nil {
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}
