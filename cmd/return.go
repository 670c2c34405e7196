package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// returnCmd holds the flags for the 'return' subcommand.
type returnCmd struct{}

func (*returnCmd) Name() string     { return "return" }
func (*returnCmd) Synopsis() string { return "display the portfolio's expected annual return" }
func (*returnCmd) Usage() string {
	return `fpl return

  Computes the value-weighted expected annual return of the investible
  portfolio, from per-asset overrides and asset class assumptions.
`
}

func (c *returnCmd) SetFlags(f *flag.FlagSet) {}

func (c *returnCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := LoadSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Expected annual return: %s\n", s.WeightedReturn())

	return subcommands.ExitSuccess
}
