package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finplan/renderer"
	"github.com/google/subcommands"
)

// risksCmd holds the flags for the 'risks' subcommand.
type risksCmd struct{}

func (*risksCmd) Name() string     { return "risks" }
func (*risksCmd) Synopsis() string { return "display concentration risks" }
func (*risksCmd) Usage() string {
	return `fpl risks

  Analyses the investible portfolio by asset, class, currency, platform,
  sector, region and tier, and flags groups whose share exceeds the
  thresholds from the snapshot settings.
`
}

func (c *risksCmd) SetFlags(f *flag.FlagSet) {}

func (c *risksCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := LoadSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RisksMarkdown(s.NewConcentrationReport()))

	return subcommands.ExitSuccess
}
