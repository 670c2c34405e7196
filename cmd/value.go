package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finplan/renderer"
	"github.com/google/subcommands"
)

// valueCmd holds the flags for the 'value' subcommand.
type valueCmd struct{}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "display the portfolio valuation" }
func (*valueCmd) Usage() string {
	return `fpl value

  Displays every asset with its market value, cost basis, unrealized gain
  and the tax due on sale, all in the reporting currency.
`
}

func (c *valueCmd) SetFlags(f *flag.FlagSet) {}

func (c *valueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := LoadSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ValuationMarkdown(s.NewValuationReport()))

	return subcommands.ExitSuccess
}
