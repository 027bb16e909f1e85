package cmd

import (
	"context"
	"flag"

	"github.com/etnz/drivelog"
	"github.com/etnz/drivelog/renderer"
	"github.com/google/subcommands"
)

// The four report commands share the same shape: load, aggregate, render.

type dailyCmd struct{}

func (*dailyCmd) Name() string     { return "daily" }
func (*dailyCmd) Synopsis() string { return "display every recorded day, newest first" }
func (*dailyCmd) Usage() string {
	return `dlog daily

  Displays every recorded day with profit, profit per km and margin,
  newest first.
`
}
func (*dailyCmd) SetFlags(f *flag.FlagSet) {}

func (*dailyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.DailyMarkdown(drivelog.NewDailyReport(loadLedger())))
	return subcommands.ExitSuccess
}

type weeklyCmd struct{}

func (*weeklyCmd) Name() string     { return "weekly" }
func (*weeklyCmd) Synopsis() string { return "display records grouped by ISO week" }
func (*weeklyCmd) Usage() string {
	return `dlog weekly

  Displays the records grouped by ISO-8601 week (Monday start), newest
  week first.
`
}
func (*weeklyCmd) SetFlags(f *flag.FlagSet) {}

func (*weeklyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.WeeklyMarkdown(drivelog.NewWeeklyReport(loadLedger())))
	return subcommands.ExitSuccess
}

type monthlyCmd struct{}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display records grouped by calendar month" }
func (*monthlyCmd) Usage() string {
	return `dlog monthly

  Displays the records grouped by calendar month, newest month first.
`
}
func (*monthlyCmd) SetFlags(f *flag.FlagSet) {}

func (*monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.MonthlyMarkdown(drivelog.NewMonthlyReport(loadLedger())))
	return subcommands.ExitSuccess
}

type overallCmd struct{}

func (*overallCmd) Name() string     { return "overall" }
func (*overallCmd) Synopsis() string { return "display the all-time totals" }
func (*overallCmd) Usage() string {
	return `dlog overall

  Displays the all-time totals: profit, margin, per-km and per-day
  averages and the income split per platform.
`
}
func (*overallCmd) SetFlags(f *flag.FlagSet) {}

func (*overallCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.OverallMarkdown(drivelog.NewOverallReport(loadLedger())))
	return subcommands.ExitSuccess
}
