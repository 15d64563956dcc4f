package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"github.com/zouantchaw/financebrain"
	"github.com/zouantchaw/financebrain/assist"
)

type assistCmd struct {
	model string
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "record a transaction from a free-text line" }
func (*assistCmd) Usage() string {
	return `fin assist <entry line>

  Asks a Gemini model to interpret a free-text line as an expense,
  income, or investment and records the result. Requires Gemini API
  credentials in the environment.

Usage Examples:
$ fin assist coffee 4.50 at Blue Bottle yesterday
$ fin assist paycheck 5000 from Acme Corp
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.model, "model", assist.DefaultModel, "Gemini model to use.")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	line := strings.TrimSpace(strings.Join(f.Args(), " "))
	if line == "" {
		fmt.Fprintln(os.Stderr, "Error: an entry line is required")
		return subcommands.ExitUsageError
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing Gemini's client: %v\n", err)
		return subcommands.ExitFailure
	}

	tx, err := assist.Parse(ctx, client, c.model, line)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	store, err := OpenGraph()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening graph: %v\n", err)
		return subcommands.ExitFailure
	}
	content := fmt.Sprintf("%s %s", tx.Merchant, financebrain.FormatAmount(tx.Amount))
	if err := appendRecord(store, transactionsPage, content, financebrain.EncodeTransaction(tx)); err != nil {
		fmt.Fprintf(os.Stderr, "Error recording %s: %v\n", tx.Type, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s of %s on %s (%s).\n", tx.Type, financebrain.FormatAmount(tx.Amount), tx.Date, tx.Merchant)
	return subcommands.ExitSuccess
}
