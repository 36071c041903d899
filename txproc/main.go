package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/etnz/txledger/cmd"
	"github.com/google/subcommands"
)

func main() {
	name := path.Base(os.Args[0])

	cfg, err := cmd.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(int(subcommands.ExitFailure))
	}

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander, cfg)

	// exits when invoked by the shell for completion, or to (un)install it.
	cmd.Completion(commander).Complete(name)

	// flag.CommandLine exits on error.
	_ = flag.CommandLine.Parse(cmd.WithDefaultCommand(commander, os.Args[1:]))
	os.Exit(int(commander.Execute(context.Background())))
}
