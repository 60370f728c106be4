// Command pokerkit is a thin demonstration shell around the engine: it is
// not part of the library surface, just a way to drive a hand from the
// terminal and inspect its operation log.
package main

import (
	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Deal    DealCmd          `cmd:"" help:"Run a demo hand's automations up to its first decision and print its operation log"`
	Eval    EvalCmd          `cmd:"" help:"Evaluate a set of cards against a hand lookup"`
	Debug   bool             `help:"Enable debug logging" default:"false"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokerkit"),
		kong.Description("Demo driver for the pokerkit engine"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{"version": version},
	)

	logger := log.NewWithOptions(ctx.Stderr, log.Options{ReportTimestamp: true})
	if cli.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	err := ctx.Run(logger)
	ctx.FatalIfErrorf(err)
}
