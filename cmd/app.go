// Package cmd implements the CLI application to analyse a financial snapshot.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finplan"
	"github.com/google/subcommands"
)

// builtins lists every subcommand with its group.
var builtins = []struct {
	cmd   subcommands.Command
	group string
}{
	{&valueCmd{}, "reports"},
	{&risksCmd{}, "reports"},
	{&returnCmd{}, "reports"},
	{&feesCmd{}, "reports"},
	{&projectCmd{}, "reports"},
	{&fmtCmd{}, "snapshot"},
	{&topicCmd{}, "documentation"},
	{&assistCmd{}, "assistant"},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")
	for _, b := range builtins {
		c.Register(b.cmd, b.group)
	}
}

// IsBuiltin reports whether name is one of the registered subcommands,
// so the main package can fall back to fpl-<name> extensions otherwise.
func IsBuiltin(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	for _, b := range builtins {
		if b.cmd.Name() == name {
			return true
		}
	}
	return false
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var snapshotFile = flag.String("snapshot-file", env(EnvSnapshotFile, "snapshot.json"), "Path to the snapshot file (JSON format)")
var Verbose = flag.Bool("v", env(EnvVerbose, "") == "true", "enable verbose logging")

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// LoadSnapshot decodes the snapshot from the app default snapshot file.
func LoadSnapshot() (*finplan.Snapshot, error) {
	f, err := os.Open(*snapshotFile)
	if err != nil {
		return nil, fmt.Errorf("could not open snapshot file %q: %w", *snapshotFile, err)
	}
	defer f.Close()

	s, err := finplan.DecodeSnapshot(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode snapshot file %q: %w", *snapshotFile, err)
	}
	return s, nil
}

// SaveSnapshot writes the snapshot back to the app default snapshot file in
// canonical form.
func SaveSnapshot(s *finplan.Snapshot) error {
	f, err := os.Create(*snapshotFile)
	if err != nil {
		return fmt.Errorf("could not create snapshot file %q: %w", *snapshotFile, err)
	}
	defer f.Close()

	if err := finplan.EncodeSnapshot(f, s); err != nil {
		return fmt.Errorf("could not encode snapshot file %q: %w", *snapshotFile, err)
	}
	return nil
}
