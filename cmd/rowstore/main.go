package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/RichardKnop/rowstore/internal/parser"
	"github.com/RichardKnop/rowstore/internal/pkg/logging"
	"github.com/RichardKnop/rowstore/internal/rowstore"
)

const (
	cliName string = "rowstore"
)

// CLI defines the command-line flags for rowstore.
var CLI struct {
	LogLevel string `name:"log-level" env:"LOG_LEVEL" default:"warn" help:"Log level (debug, info, warn, error)"`
	MaxPages int    `name:"max-pages" default:"100" help:"Maximum number of pages the table may allocate"`
	Table    bool   `name:"table" short:"t" help:"Print select results as a table"`
}

func main() {
	kong.Parse(&CLI,
		kong.Name(cliName),
		kong.Description("An in-memory single table store of (id, username, email) rows"),
		kong.UsageOnError(),
	)

	logger, err := logging.New(CLI.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level: %s\n", err)
		os.Exit(1)
	}
	defer logger.Sync() // flushes buffer, if any

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	aTable := rowstore.NewTable(logger, rowstore.NewPager(logger, CLI.MaxPages))
	aRepl := &repl{
		out:         os.Stdout,
		logger:      logger,
		parser:      parser.New(),
		engine:      rowstore.NewEngine(logger),
		table:       aTable,
		tableOutput: CLI.Table,
	}

	done := make(chan error, 1)
	go func() {
		done <- aRepl.run(ctx, os.Stdin)
	}()

	select {
	case err := <-done:
		if closeErr := aTable.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "error closing table: %s\n", closeErr)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "error reading input: %s\n", err)
			logger.Sync()
			os.Exit(1)
		}
	case <-ctx.Done():
		// The read loop may still be blocked on stdin and owns the table,
		// memory is released with the process
		fmt.Println()
		logger.Info("interrupted")
	}
}
