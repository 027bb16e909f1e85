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

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	date    string
	km      float64
	uber    float64
	n99     float64
	other   float64
	fuel    float64
	expense float64
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record or replace a working day" }
func (*addCmd) Usage() string {
	return `dlog add [-d <date>] -km <km> [-uber <amount>] [-n99 <amount>] [-other <amount>] [-fuel <amount>] [-expense <amount>]

  Records a working day: distance, income per platform and expenses.
  Adding an already recorded date replaces the whole day, so a correction
  is just a second add. A replaced or new day always starts with its
  reserve slice uncommitted; use 'dlog save' to commit it.

Usage Examples:
# Record today's shift.
$ dlog add -km 180 -uber 220.50 -n99 90 -fuel 80

# Fix the fuel cost of a past day.
$ dlog add -d 2025-02-10 -km 180 -uber 220.50 -n99 90 -fuel 95

`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the day (defaults to today)")
	f.Float64Var(&c.km, "km", 0, "Distance driven, in km")
	f.Float64Var(&c.uber, "uber", 0, "Uber income")
	f.Float64Var(&c.n99, "n99", 0, "99 income")
	f.Float64Var(&c.other, "other", 0, "Other income")
	f.Float64Var(&c.fuel, "fuel", 0, "Fuel expense")
	f.Float64Var(&c.expense, "expense", 0, "Other expenses")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, err := parseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	l := loadLedger()
	rec := drivelog.DailyRecord{
		Date:         d,
		Km:           c.km,
		Uber:         drivelog.BRL(c.uber),
		N99:          drivelog.BRL(c.n99),
		OtherIncome:  drivelog.BRL(c.other),
		Fuel:         drivelog.BRL(c.fuel),
		OtherExpense: drivelog.BRL(c.expense),
	}
	if err := l.UpsertRecord(rec); err != nil {
		return fail(err)
	}
	if status := saveLedger(l); status != subcommands.ExitSuccess {
		return status
	}

	if stats, ok := drivelog.NewDayStats(l, d); ok {
		printMarkdown(renderer.DayMarkdown(stats))
	}
	return subcommands.ExitSuccess
}
