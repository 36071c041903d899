package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/txledger"
	"github.com/google/subcommands"
)

// processCmd holds the flags for the 'process' subcommand.
type processCmd struct {
	cfg    Config
	format string
}

func (*processCmd) Name() string { return "process" }
func (*processCmd) Synopsis() string {
	return "apply a transactions file and print the final client accounts"
}
func (*processCmd) Usage() string {
	return `txproc [process] [-format <format>] <transactions.csv>

  Applies all transactions from a CSV file with a "type,client,tx,amount"
  header, and prints the final state of every client account to stdout.

  Transactions that cannot be applied are dropped silently. Set
  ` + EnvLogLevel + `=debug to log them on stderr.

`
}

func (c *processCmd) SetFlags(f *flag.FlagSet) {
	def := c.cfg.Format
	if def == "" {
		def = string(FormatCSV)
	}
	f.StringVar(&c.format, "format", def, "Report format: "+formatNames()+".")
}

func (c *processCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one transactions file.")
		f.Usage()
		return subcommands.ExitUsageError
	}
	format, err := ParseFormat(c.format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	logger := NewLogger(os.Stderr, c.cfg.LogLevel)
	filename := f.Arg(0)

	file, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening transactions file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	engine := txledger.NewEngine(logger)
	if err := engine.Process(txledger.NewDecoder(file).Transactions()); err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding transactions file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	logger.Info("transactions processed", "file", filename, "accounts", engine.Ledger().Len())

	if err := writeReport(os.Stdout, engine.Ledger(), format); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func formatNames() string { return strings.Join(formatStrings(), ", ") }
