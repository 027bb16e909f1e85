package cmd

import (
	"context"
	"flag"

	"github.com/etnz/drivelog"
	"github.com/etnz/drivelog/renderer"
	"github.com/google/subcommands"
)

type reserveCmd struct{}

func (*reserveCmd) Name() string     { return "reserve" }
func (*reserveCmd) Synopsis() string { return "display the virtual reserve breakdown" }
func (*reserveCmd) Usage() string {
	return `dlog reserve

  Displays the virtual reserve: the balance, the committed days behind it,
  the profitable days not committed yet and the maintenance debits.
`
}
func (*reserveCmd) SetFlags(f *flag.FlagSet) {}

func (*reserveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.ReserveMarkdown(drivelog.NewReserveReport(loadLedger())))
	return subcommands.ExitSuccess
}
