package cmd

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/drivelog"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export every record as CSV" }
func (*exportCmd) Usage() string {
	return `dlog export [-o <file>]

  Writes every daily record as CSV, oldest first, in the spreadsheet
  backup format. Without -o the CSV goes to standard output.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "File to write the CSV to (defaults to stdout)")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l := loadLedger()

	out := os.Stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		out = file
	}

	if err := drivelog.ExportCSV(csv.NewWriter(out), l); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.output != "" {
		fmt.Printf("Exported %d records to %s\n", l.Len(), c.output)
	}
	return subcommands.ExitSuccess
}
