// Package cmd implements the CLI application to manage a driver logbook.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/etnz/drivelog"
	"github.com/google/subcommands"
)

// Commands lists every subcommand of the application. A main package
// registers them all on its commander.
var Commands = []subcommands.Command{
	&addCmd{},
	&rmCmd{},
	&saveCmd{},
	&todayCmd{},
	&dailyCmd{},
	&weeklyCmd{},
	&monthlyCmd{},
	&overallCmd{},
	&maintAddCmd{},
	&maintDoneCmd{},
	&maintRmCmd{},
	&maintCmd{},
	&reserveCmd{},
	&configCmd{},
	&exportCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("f", defaultLedgerFile(), "Path to the logbook file (JSON format)")

func defaultLedgerFile() string {
	if path := os.Getenv("DRIVELOG_FILE"); path != "" {
		return path
	}
	return "drivelog.json"
}

// loadLedger loads the app logbook file. A missing or unreadable file yields
// an empty logbook, with a warning in the unreadable case, so every command
// can run against a fresh state.
func loadLedger() *drivelog.Ledger {
	l, err := drivelog.LoadLedger(*ledgerFile)
	if err != nil {
		log.Printf("warning: starting from an empty logbook: %v", err)
	}
	return l
}

// saveLedger persists the logbook back to the app file.
func saveLedger(l *drivelog.Ledger) subcommands.ExitStatus {
	if err := drivelog.SaveLedger(*ledgerFile, l); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving logbook %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// fail prints the error and converts it to an exit status, distinguishing
// invalid input from real failures.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if errors.Is(err, drivelog.ErrValidation) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}
