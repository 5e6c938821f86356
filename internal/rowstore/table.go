package rowstore

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

var (
	ErrRowOutOfBounds = fmt.Errorf("row number out of bounds")
)

// Table is the single users table. It owns the pager, all page memory
// is allocated and released through it.
type Table struct {
	pager   Pager
	logger  *zap.Logger
	numRows uint32
}

func NewTable(logger *zap.Logger, pager Pager) *Table {
	return &Table{
		pager:  pager,
		logger: logger,
	}
}

// NumRows is the number of live rows, it bounds select scans
// and determines where the next row is inserted
func (t *Table) NumRows() uint32 {
	return t.numRows
}

func (t *Table) MaxRows() uint32 {
	return RowsPerPage * t.pager.MaxPages()
}

func (t *Table) TotalPages() uint32 {
	return t.pager.TotalPages()
}

// RowSlot returns the slice of page memory holding the row with the given number.
// The slice aliases the page, writes to it are writes to the table.
func (t *Table) RowSlot(ctx context.Context, rowNumber uint32) ([]byte, error) {
	if rowNumber >= t.MaxRows() {
		return nil, fmt.Errorf("%w: row: %d, maximum rows: %d", ErrRowOutOfBounds, rowNumber, t.MaxRows())
	}

	var (
		pageIdx = PageIndex(rowNumber / RowsPerPage)
		offset  = rowOffset(rowNumber % RowsPerPage)
	)

	aPage, err := t.pager.GetPage(ctx, pageIdx)
	if err != nil {
		return nil, fmt.Errorf("row slot %d: %w", rowNumber, err)
	}

	return aPage[offset : offset+RowSize], nil
}

// appendSlot returns the slot the next inserted row goes to
func (t *Table) appendSlot(ctx context.Context) ([]byte, error) {
	return t.RowSlot(ctx, t.numRows)
}

// Close destroys the table and releases all its pages
func (t *Table) Close() error {
	t.logger.Debug("closing table",
		zap.Uint32("rows", t.numRows),
		zap.Uint32("pages", t.pager.TotalPages()),
	)
	t.numRows = 0
	return t.pager.Close()
}
