// Package cmd implements the txproc command line application.
package cmd

import (
	"flag"
	"strings"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// DefaultCommand runs when the first argument is not a command name, so that
// `txproc transactions.csv` is `txproc process transactions.csv`.
const DefaultCommand = "process"

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander, cfg Config) {
	c.Register(&processCmd{cfg: cfg}, "transactions")
	c.Register(&topicCmd{}, "help")
}

// WithDefaultCommand returns the command line arguments, with the
// DefaultCommand inserted if args do not start with a registered command.
func WithDefaultCommand(c *subcommands.Commander, args []string) []string {
	if len(args) == 0 {
		return args
	}
	if strings.HasPrefix(args[0], "-") && args[0] != "-" {
		// a flag, either global or for the default command: let the commander decide.
		return args
	}
	known := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		if cmd.Name() == args[0] {
			known = true
		}
	})
	if known {
		return args
	}
	return append([]string{DefaultCommand}, args...)
}

// Completion describes the commands of c and their flags for shell completion.
func Completion(c *subcommands.Commander) *complete.Command {
	var transactionFiles complete.Predictor = predict.Files("*.csv")
	root := &complete.Command{
		Sub:  map[string]*complete.Command{},
		Args: transactionFiles,
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		sub := &complete.Command{Flags: map[string]complete.Predictor{}}
		f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(f)
		f.VisitAll(func(fl *flag.Flag) {
			sub.Flags[fl.Name] = predict.Something
		})
		if cmd.Name() == DefaultCommand {
			sub.Args = transactionFiles
			sub.Flags["format"] = predict.Set(formatStrings())
		}
		root.Sub[cmd.Name()] = sub
	})
	return root
}

func formatStrings() []string {
	s := make([]string, len(Formats))
	for i, f := range Formats {
		s[i] = string(f)
	}
	return s
}
