package rowstore

import (
	"context"
	"fmt"
)

func (e *Engine) executeSelect(ctx context.Context, stmt Statement, aTable *Table) (StatementResult, error) {
	var (
		numRows   = aTable.NumRows()
		rowNumber = uint32(0)
	)

	// Rows are decoded one by one as the iterator advances,
	// a new select always starts again from the first row
	rowFunc := func(ctx context.Context) (Row, error) {
		if rowNumber >= numRows {
			return Row{}, ErrNoMoreRows
		}

		slot, err := aTable.RowSlot(ctx, rowNumber)
		if err != nil {
			return Row{}, fmt.Errorf("select: %w", err)
		}

		var aRow Row
		if err := UnmarshalRow(slot, &aRow); err != nil {
			return Row{}, fmt.Errorf("select: %w", err)
		}
		rowNumber += 1

		return aRow, nil
	}

	return StatementResult{
		Result: ExecuteSuccess,
		Rows:   NewIterator(rowFunc),
	}, nil
}
