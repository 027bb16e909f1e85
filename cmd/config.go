package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/drivelog"
	"github.com/google/subcommands"
)

type configCmd struct {
	savings float64
	km      float64
	alert   float64
	theme   string
}

func (*configCmd) Name() string     { return "config" }
func (*configCmd) Synopsis() string { return "display or change the logbook configuration" }
func (*configCmd) Usage() string {
	return `dlog config [-savings <percent>] [-km <km>] [-alert <km>] [-theme <name>]

  Without flags, displays the current configuration. With flags, updates
  the given fields and leaves the rest untouched.

  -km sets the odometer directly, for logbooks starting mid-life. From
  then on daily records keep adjusting it by their km.

Usage Examples:
# Save 15% of each profitable day, alert 300 km before a service is due.
$ dlog config -savings 15 -alert 300

`
}

func (c *configCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.savings, "savings", -1, "Share of each profitable day saved to the reserve, in [0, 100]")
	f.Float64Var(&c.km, "km", -1, "Vehicle odometer, in km")
	f.Float64Var(&c.alert, "alert", -1, "Distance to a due service that raises the upcoming alert, in km")
	f.StringVar(&c.theme, "theme", "", "Display theme (light, dark)")
}

func (c *configCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l := loadLedger()

	patch := drivelog.ConfigPatch{}
	changed := false
	if c.savings >= 0 {
		p := drivelog.Percent(c.savings)
		patch.SavingsPercentage = &p
		changed = true
	}
	if c.km >= 0 {
		patch.TotalVehicleKm = &c.km
		changed = true
	}
	if c.alert >= 0 {
		patch.AlertKm = &c.alert
		changed = true
	}
	if c.theme != "" {
		patch.Theme = &c.theme
		changed = true
	}

	if changed {
		if err := l.UpdateConfig(patch); err != nil {
			return fail(err)
		}
		if status := saveLedger(l); status != subcommands.ExitSuccess {
			return status
		}
	}

	cfg := l.Config()
	fmt.Printf("savings: %s\nodometer: %.0f km\nalert: %.0f km\ntheme: %s\n",
		cfg.SavingsPercentage, cfg.TotalVehicleKm, cfg.AlertKm, cfg.Theme)
	return subcommands.ExitSuccess
}
