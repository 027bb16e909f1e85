package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/drivelog"
	"github.com/etnz/drivelog/renderer"
	"github.com/google/subcommands"
)

type todayCmd struct {
	date string
}

func (*todayCmd) Name() string     { return "today" }
func (*todayCmd) Synopsis() string { return "display a single day's record and metrics" }
func (*todayCmd) Usage() string {
	return `dlog today [-d <date>]

  Displays one day's record with its derived metrics: profit, profit per km,
  margin and income split.
`
}

func (c *todayCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date to display (defaults to today)")
}

func (c *todayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, err := parseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	l := loadLedger()
	stats, ok := drivelog.NewDayStats(l, d)
	if !ok {
		fmt.Printf("No record on %s.\n", d)
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.DayMarkdown(stats))
	return subcommands.ExitSuccess
}
