package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finplan/renderer"
	"github.com/google/subcommands"
)

// feesCmd holds the flags for the 'fees' subcommand.
type feesCmd struct{}

func (*feesCmd) Name() string     { return "fees" }
func (*feesCmd) Synopsis() string { return "display the annual fee report" }
func (*feesCmd) Usage() string {
	return `fpl fees

  Computes the annual cost of the portfolio: platform fees per platform,
  advisor fees, fund expense drag (TER) and the all-in fee rate.
`
}

func (c *feesCmd) SetFlags(f *flag.FlagSet) {}

func (c *feesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := LoadSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.FeesMarkdown(s.NewFeeReport()))

	return subcommands.ExitSuccess
}
