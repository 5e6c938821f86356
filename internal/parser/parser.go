package parser

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/RichardKnop/rowstore/internal/rowstore"
)

var (
	ErrEmptyStatement        = fmt.Errorf("statement cannot be empty")
	ErrUnrecognizedStatement = fmt.Errorf("unrecognized keyword at start of statement")
	ErrSyntax                = fmt.Errorf("syntax error, could not parse statement")
	ErrNegativeID            = fmt.Errorf("ID must be positive")
	ErrInvalidID             = fmt.Errorf("ID must be a 32-bit unsigned integer")
	ErrStringTooLong         = fmt.Errorf("string is too long")
)

const (
	keywordInsert = "insert"
	keywordSelect = "select"
)

type parser struct {
	fields []string
	i      int // index of the next field to consume
}

func New() *parser {
	return new(parser)
}

// Parse prepares a single statement:
//
//	insert <id> <username> <email>
//	select
//
// A successfully parsed INSERT always carries a row which passes validation.
func (p *parser) Parse(ctx context.Context, input string) (rowstore.Statement, error) {
	p.reset(input)

	if len(p.fields) == 0 {
		return rowstore.Statement{}, ErrEmptyStatement
	}

	var (
		stmt rowstore.Statement
		err  error
	)
	switch strings.ToLower(p.pop()) {
	case keywordInsert:
		stmt, err = p.doParseInsert()
	case keywordSelect:
		stmt = rowstore.Statement{Kind: rowstore.Select}
	default:
		return rowstore.Statement{}, ErrUnrecognizedStatement
	}
	if err != nil {
		return rowstore.Statement{}, err
	}

	if p.peek() != "" {
		return rowstore.Statement{}, fmt.Errorf("%w: unexpected %q", ErrSyntax, p.peek())
	}

	return stmt, nil
}

func (p *parser) reset(input string) {
	p.fields = strings.Fields(input)
	p.i = 0
}

func (p *parser) doParseInsert() (rowstore.Statement, error) {
	if len(p.fields)-p.i < 3 {
		return rowstore.Statement{}, fmt.Errorf("%w: insert expects id, username and email", ErrSyntax)
	}

	id, err := parseID(p.pop())
	if err != nil {
		return rowstore.Statement{}, err
	}

	aRow := rowstore.Row{
		ID:       id,
		Username: p.pop(),
		Email:    p.pop(),
	}
	if err := aRow.Validate(); err != nil {
		if errors.Is(err, rowstore.ErrUsernameTooLong) || errors.Is(err, rowstore.ErrEmailTooLong) {
			return rowstore.Statement{}, fmt.Errorf("%w: %w", ErrStringTooLong, err)
		}
		return rowstore.Statement{}, err
	}

	return rowstore.Statement{
		Kind:        rowstore.Insert,
		RowToInsert: aRow,
	}, nil
}

func parseID(s string) (uint32, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	if n < 0 {
		return 0, ErrNegativeID
	}
	if n > int64(^uint32(0)) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return uint32(n), nil
}

// peek returns the next field without consuming it
func (p *parser) peek() string {
	if p.i >= len(p.fields) {
		return ""
	}
	return p.fields[p.i]
}

func (p *parser) pop() string {
	field := p.peek()
	if field != "" {
		p.i += 1
	}
	return field
}
