package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/drivelog"
	"github.com/etnz/drivelog/renderer"
	"github.com/google/subcommands"
)

type maintAddCmd struct {
	typ    string
	date   string
	km     float64
	nextKm float64
	cost   float64
}

func (*maintAddCmd) Name() string     { return "maint-add" }
func (*maintAddCmd) Synopsis() string { return "plan a maintenance service" }
func (*maintAddCmd) Usage() string {
	return `dlog maint-add -type <type> -km <km> -next <km> [-d <date>] [-cost <amount>]

  Plans a maintenance service: the odometer it was last done at, the
  odometer it is next due, and the estimated cost the reserve should
  cover. The due km must be strictly beyond the service km.

  Types: ` + strings.Join(serviceTypeNames(), ", ") + `

Usage Examples:
# Oil changed at 10000 km, next one due at 20000 km, 250 reais.
$ dlog maint-add -type oil_change -km 10000 -next 20000 -cost 250

`
}

func (c *maintAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.typ, "type", "", "Service type")
	f.StringVar(&c.date, "d", "", "Date of the service (defaults to today)")
	f.Float64Var(&c.km, "km", 0, "Odometer the service was done at")
	f.Float64Var(&c.nextKm, "next", 0, "Odometer the service is next due")
	f.Float64Var(&c.cost, "cost", 0, "Estimated cost of the next service")
}

func (c *maintAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	typ, err := drivelog.ParseServiceType(c.typ)
	if err != nil {
		return fail(err)
	}
	d, err := parseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	l := loadLedger()
	item, err := l.AddMaintenance(drivelog.MaintenanceItem{
		Type:   typ,
		Date:   d,
		Km:     c.km,
		NextKm: c.nextKm,
		Cost:   drivelog.BRL(c.cost),
	})
	if err != nil {
		return fail(err)
	}
	if status := saveLedger(l); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Planned %s (id %s), next due at %.0f km\n", item.Type.Label(), item.ID, item.NextKm)
	return subcommands.ExitSuccess
}

type maintDoneCmd struct {
	id string
}

func (*maintDoneCmd) Name() string     { return "maint-done" }
func (*maintDoneCmd) Synopsis() string { return "mark a planned service as completed" }
func (*maintDoneCmd) Usage() string {
	return `dlog maint-done -id <id>

  Marks the planned service as completed. Its cost is debited from the
  reserve, which may push the balance below zero. Completing an already
  completed service does nothing.
`
}

func (c *maintDoneCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Identifier of the service (see 'dlog maint')")
}

func (c *maintDoneCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}
	l := loadLedger()
	l.CompleteMaintenance(c.id)
	if status := saveLedger(l); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Reserve is now %s\n", l.ReserveBalance())
	return subcommands.ExitSuccess
}

type maintRmCmd struct {
	id string
}

func (*maintRmCmd) Name() string     { return "maint-rm" }
func (*maintRmCmd) Synopsis() string { return "delete a maintenance item" }
func (*maintRmCmd) Usage() string {
	return `dlog maint-rm -id <id>

  Deletes a maintenance item, planned or completed. Deleting a completed
  item removes its debit from the reserve. Deleting an absent id does
  nothing.
`
}

func (c *maintRmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Identifier of the service (see 'dlog maint')")
}

func (c *maintRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}
	l := loadLedger()
	l.DeleteMaintenance(c.id)
	return saveLedger(l)
}

type maintCmd struct{}

func (*maintCmd) Name() string     { return "maint" }
func (*maintCmd) Synopsis() string { return "display the maintenance monitor" }
func (*maintCmd) Usage() string {
	return `dlog maint

  Evaluates every maintenance item against the current odometer and the
  reserve: urgency status, interval progress and budget coverage.
`
}
func (*maintCmd) SetFlags(f *flag.FlagSet) {}

func (*maintCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.MaintenanceMarkdown(drivelog.NewMaintenanceReport(loadLedger())))
	return subcommands.ExitSuccess
}

func serviceTypeNames() []string {
	types := drivelog.ServiceTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return names
}
