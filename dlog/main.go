package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/drivelog"
	"github.com/etnz/drivelog/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// A .env file can set DRIVELOG_FILE for the logbook location.
	_ = godotenv.Load()

	completion().Complete("dlog")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the command tree for shell completion.
func completion() *complete.Command {
	dateFlag := map[string]complete.Predictor{"d": predict.Something}
	idFlag := map[string]complete.Predictor{"id": predict.Something}

	types := make([]string, 0)
	for _, t := range drivelog.ServiceTypes() {
		types = append(types, string(t))
	}

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"f": predict.Files("*.json"),
		},
		Sub: map[string]*complete.Command{
			"add":     {Flags: dateFlag},
			"rm":      {Flags: dateFlag},
			"save":    {Flags: dateFlag},
			"today":   {Flags: dateFlag},
			"daily":   {},
			"weekly":  {},
			"monthly": {},
			"overall": {},
			"maint-add": {Flags: map[string]complete.Predictor{
				"type": predict.Set(types),
				"d":    predict.Something,
			}},
			"maint-done": {Flags: idFlag},
			"maint-rm":   {Flags: idFlag},
			"maint":      {},
			"reserve":    {},
			"config":     {},
			"export":     {Flags: map[string]complete.Predictor{"o": predict.Files("*.csv")}},
			"topic":      {Args: predict.Set{"getting-started", "reports", "reserve", "maintenance", "readme"}},
		},
	}
}
