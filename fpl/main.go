// Command fpl analyses a personal financial snapshot: valuation,
// concentration risks, fees and long-term fee projections.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/finplan/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the CLI for shell completion. It must stay in sync
// with cmd.Register.
var completion = &complete.Command{
	Flags: map[string]complete.Predictor{
		"snapshot-file": predict.Files("*.json"),
		"v":             predict.Nothing,
	},
	Sub: map[string]*complete.Command{
		"value":  {},
		"risks":  {},
		"return": {},
		"fees":   {},
		"project": {
			Flags: map[string]complete.Predictor{
				"y": predict.Something,
				"g": predict.Something,
				"i": predict.Something,
			},
		},
		"fmt":    {},
		"topic":  {Args: predict.Set{"readme", "valuation", "currency", "concentration", "fees", "projection", "snapshot"}},
		"assist": {},
	},
}

func main() {
	// Shell completion exits here when invoked by the shell.
	completion.Complete("fpl")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()

	// Unknown subcommands fall back to fpl-<name> extensions on the PATH.
	if flag.NArg() > 0 && !cmd.IsBuiltin(flag.Arg(0)) {
		if found, code := cmd.RunExtension(flag.Arg(0), flag.Args()[1:]); found {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}
