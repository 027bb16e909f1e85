package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmCmd struct {
	date string
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a recorded day" }
func (*rmCmd) Usage() string {
	return `dlog rm -d <date>

  Deletes the record of the given day. The day's km are subtracted from the
  odometer. Deleting an absent day does nothing.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the day to delete (defaults to today)")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, err := parseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	l := loadLedger()
	l.DeleteRecord(d)
	if status := saveLedger(l); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Deleted %s from %s\n", d, *ledgerFile)
	return subcommands.ExitSuccess
}
