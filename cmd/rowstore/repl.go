package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/RichardKnop/rowstore/internal/parser"
	"github.com/RichardKnop/rowstore/internal/pkg/util"
	"github.com/RichardKnop/rowstore/internal/rowstore"
)

const (
	prompt = "db > "
)

type metaCommand int

const (
	Unknown metaCommand = iota + 1
	Help
	Exit
	Constants
	Stats
)

func isMetaCommand(inputBuffer string) bool {
	return len(inputBuffer) > 0 && inputBuffer[:1] == "."
}

func doMetaCommand(inputBuffer string) metaCommand {
	switch inputBuffer {
	case "help":
		return Help
	case "exit":
		return Exit
	case "constants":
		return Constants
	case "stats":
		return Stats
	default:
		return Unknown
	}
}

type Parser interface {
	Parse(context.Context, string) (rowstore.Statement, error)
}

type repl struct {
	out         io.Writer
	logger      *zap.Logger
	parser      Parser
	engine      *rowstore.Engine
	table       *rowstore.Table
	tableOutput bool
}

// run reads statements until EOF, .exit or ctx cancellation
func (r *repl) run(ctx context.Context, in io.Reader) error {
	reader := bufio.NewScanner(in)
	r.printPrompt()

	// REPL (Read-eval-print loop) start
	for reader.Scan() {
		if ctx.Err() != nil {
			break
		}

		inputBuffer := strings.TrimSpace(reader.Text())
		if inputBuffer == "" {
			r.printPrompt()
			continue
		}

		if isMetaCommand(inputBuffer) {
			if exit := r.handleMetaCommand(inputBuffer); exit {
				return nil
			}
		} else {
			r.handleStatement(ctx, inputBuffer)
		}
		r.printPrompt()
	}
	// Print an additional line if we encountered an EOF character
	fmt.Fprintln(r.out)

	return reader.Err()
}

func (r *repl) printPrompt() {
	fmt.Fprint(r.out, prompt)
}

func (r *repl) handleMetaCommand(inputBuffer string) bool {
	switch doMetaCommand(strings.ToLower(inputBuffer[1:])) {
	case Help:
		fmt.Fprintln(r.out, ".help       - Show available commands")
		fmt.Fprintln(r.out, ".exit       - Closes program")
		fmt.Fprintln(r.out, ".constants  - Show storage layout constants")
		fmt.Fprintln(r.out, ".stats      - Show number of rows and allocated pages")
		fmt.Fprintln(r.out, "insert <id> <username> <email>")
		fmt.Fprintln(r.out, "select")
	case Exit:
		return true
	case Constants:
		fmt.Fprintln(r.out, "Constants:")
		fmt.Fprintf(r.out, "ROW_SIZE: %d\n", rowstore.RowSize)
		fmt.Fprintf(r.out, "PAGE_SIZE: %d\n", rowstore.PageSize)
		fmt.Fprintf(r.out, "ROWS_PER_PAGE: %d\n", rowstore.RowsPerPage)
		fmt.Fprintf(r.out, "MAX_PAGES: %d\n", r.table.MaxRows()/rowstore.RowsPerPage)
		fmt.Fprintf(r.out, "MAX_ROWS: %d\n", r.table.MaxRows())
	case Stats:
		fmt.Fprintf(r.out, "Rows: %d/%d\n", r.table.NumRows(), r.table.MaxRows())
		fmt.Fprintf(r.out, "Pages: %d\n", r.table.TotalPages())
	case Unknown:
		fmt.Fprintf(r.out, "Unrecognized command '%s'.\n", inputBuffer)
	}
	return false
}

func (r *repl) handleStatement(ctx context.Context, inputBuffer string) {
	stmt, err := r.parser.Parse(ctx, inputBuffer)
	if err != nil {
		r.printPrepareError(inputBuffer, err)
		return
	}

	aResult, err := r.engine.Execute(ctx, stmt, r.table)
	if err != nil {
		r.logger.Error("error executing statement", zap.Stringer("kind", stmt.Kind), zap.Error(err))
		fmt.Fprintf(r.out, "Error executing statement: %s\n", err)
		return
	}

	if aResult.Result == rowstore.ExecuteTableFull {
		fmt.Fprintln(r.out, "Error: Table full.")
		return
	}

	if stmt.Kind == rowstore.Select {
		if err := r.printRows(ctx, &aResult.Rows); err != nil {
			r.logger.Error("error reading rows", zap.Error(err))
			fmt.Fprintf(r.out, "Error executing statement: %s\n", err)
			return
		}
	}
	fmt.Fprintln(r.out, "Executed.")
}

func (r *repl) printRows(ctx context.Context, rows *rowstore.Iterator) error {
	if r.tableOutput {
		util.PrintTableHeader(r.out)
	}
	for rows.Next(ctx) {
		if r.tableOutput {
			util.PrintTableRow(r.out, rows.Row())
		} else {
			fmt.Fprintln(r.out, rows.Row().String())
		}
	}
	if r.tableOutput {
		util.PrintTableEnd(r.out)
	}
	return rows.Err()
}

func (r *repl) printPrepareError(inputBuffer string, err error) {
	switch {
	case errors.Is(err, parser.ErrUnrecognizedStatement):
		fmt.Fprintf(r.out, "Unrecognized keyword at start of '%s'.\n", inputBuffer)
	case errors.Is(err, parser.ErrSyntax):
		fmt.Fprintln(r.out, "Error: Syntax error. Could not parse statement.")
	case errors.Is(err, parser.ErrStringTooLong):
		fmt.Fprintln(r.out, "Error: String is too long.")
	case errors.Is(err, parser.ErrNegativeID):
		fmt.Fprintln(r.out, "Error: ID must be positive.")
	default:
		fmt.Fprintf(r.out, "Error: %s.\n", err)
	}
}
