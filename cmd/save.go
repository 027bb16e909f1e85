package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type saveCmd struct {
	date string
}

func (*saveCmd) Name() string     { return "save" }
func (*saveCmd) Synopsis() string { return "commit a day's profit slice to the reserve" }
func (*saveCmd) Usage() string {
	return `dlog save [-d <date>]

  Commits the day's savings slice to the virtual reserve. Only profitable
  days contribute to the balance; committing a loss day is recorded but
  adds nothing. Editing the day later resets the commitment.
`
}

func (c *saveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the day to commit (defaults to today)")
}

func (c *saveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, err := parseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	l := loadLedger()
	rec, ok := l.Record(d)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no record on %s\n", d)
		return subcommands.ExitFailure
	}
	l.MarkRecordSaved(d)
	if status := saveLedger(l); status != subcommands.ExitSuccess {
		return status
	}

	slice := l.SavingsSlice(rec)
	fmt.Printf("Committed %s from %s, reserve is now %s\n", slice, d, l.ReserveBalance())
	return subcommands.ExitSuccess
}
