package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finplan/renderer"
	"github.com/google/subcommands"
)

// projectCmd holds the flags for the 'project' subcommand.
type projectCmd struct {
	years     int
	growth    float64
	inflation float64
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "project the lifetime cost of fees" }
func (*projectCmd) Usage() string {
	return `fpl project [-y <years>] [-g <growth>] [-i <inflation>]

  Grows the investible portfolio over the horizon with and without fees,
  and reports the gap, in nominal terms and in today's money. Also runs
  what-if scenarios with the fee rate reduced by up to one percentage point.
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.years, "y", 30, "projection horizon in years")
	f.Float64Var(&c.growth, "g", -1, "annual growth assumption in percent, defaults to the portfolio's weighted expected return")
	f.Float64Var(&c.inflation, "i", 5, "annual inflation assumption in percent")
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.years <= 0 {
		fmt.Fprintf(os.Stderr, "Error: horizon must be a positive number of years, got %d\n", c.years)
		return subcommands.ExitUsageError
	}

	s, err := LoadSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	growth := c.growth
	if growth < 0 {
		growth = float64(s.WeightedReturn())
	}

	printMarkdown(renderer.ProjectionMarkdown(s.NewProjection(c.years, growth, c.inflation)))

	return subcommands.ExitSuccess
}
