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

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the overall financial position" }
func (*summaryCmd) Usage() string {
	return `fin summary

  Displays net worth, liquidity, debt, and the trailing 30-day burn rate
  and cash flow, computed fresh from the current record state.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenGraph()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening graph: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := requireInitialized(store); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	summary := financebrain.NewAggregator(store).Summary()
	printMarkdown(renderer.Summary(summary, *currency))
	return subcommands.ExitSuccess
}
