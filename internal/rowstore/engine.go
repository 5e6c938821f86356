package rowstore

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

var (
	ErrUnrecognizedStatementKind = fmt.Errorf("unrecognised statement kind")
)

// Engine applies prepared statements to a table
type Engine struct {
	logger *zap.Logger
}

func NewEngine(logger *zap.Logger) *Engine {
	return &Engine{
		logger: logger,
	}
}

// Execute runs the statement against the table. A full table is reported
// as ExecuteTableFull with a nil error, errors are reserved for statements
// which should never have reached the engine.
func (e *Engine) Execute(ctx context.Context, stmt Statement, aTable *Table) (StatementResult, error) {
	switch stmt.Kind {
	case Insert:
		return e.executeInsert(ctx, stmt, aTable)
	case Select:
		return e.executeSelect(ctx, stmt, aTable)
	}
	return StatementResult{}, fmt.Errorf("%w: %d", ErrUnrecognizedStatementKind, stmt.Kind)
}
