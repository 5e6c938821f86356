package rowstore

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

func (e *Engine) executeInsert(ctx context.Context, stmt Statement, aTable *Table) (StatementResult, error) {
	if aTable.NumRows() >= aTable.MaxRows() {
		e.logger.Warn("table full",
			zap.Uint32("rows", aTable.NumRows()),
			zap.Uint32("max_rows", aTable.MaxRows()),
		)
		return StatementResult{Result: ExecuteTableFull}, nil
	}

	if err := stmt.RowToInsert.Validate(); err != nil {
		e.logger.Warn("rejected invalid row", zap.Error(err))
		return StatementResult{}, fmt.Errorf("insert: %w", err)
	}

	slot, err := aTable.appendSlot(ctx)
	if err != nil {
		return StatementResult{}, fmt.Errorf("insert: %w", err)
	}

	if err := stmt.RowToInsert.Marshal(slot); err != nil {
		return StatementResult{}, fmt.Errorf("insert: %w", err)
	}

	e.logger.Sugar().With(
		"page_index", int(aTable.numRows/RowsPerPage),
		"cell_index", int(aTable.numRows%RowsPerPage),
		"row_id", int(stmt.RowToInsert.ID),
	).Debug("inserted row")

	aTable.numRows += 1

	return StatementResult{
		Result:       ExecuteSuccess,
		RowsAffected: 1,
	}, nil
}
