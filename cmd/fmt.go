package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the snapshot file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `fpl fmt

  Validates and formats the snapshot file. This command reads the snapshot,
  validates it, migrates legacy formats to the current version, and writes
  it back with fields in a stable order.

Usage Examples:
# Rewrites the default snapshot file in place.
$ fpl fmt

`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := LoadSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := SaveSnapshot(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not save snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "✅ Successfully formatted %q.\n", *snapshotFile)
	return subcommands.ExitSuccess
}
