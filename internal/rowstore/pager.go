package rowstore

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

var (
	ErrPageOutOfBounds = fmt.Errorf("page index out of bounds")
	ErrPagerClosed     = fmt.Errorf("pager is closed")
)

type pagerImpl struct {
	logger     *zap.Logger
	totalPages uint32 // number of allocated pages
	// pages is a sparse array where index = PageIndex,
	// nil entries indicate pages that were not touched yet.
	// It is allocated once with its full capacity and never grows,
	// so pointers handed out by GetPage stay valid until Close.
	pages  []*Page
	closed bool
}

// NewPager creates an in-memory pager holding at most maxPages pages,
// maxPages <= 0 falls back to MaxPages
func NewPager(logger *zap.Logger, maxPages int) *pagerImpl {
	if maxPages <= 0 {
		maxPages = MaxPages
	}
	return &pagerImpl{
		logger: logger,
		pages:  make([]*Page, maxPages),
	}
}

func (p *pagerImpl) MaxPages() uint32 {
	return uint32(len(p.pages))
}

func (p *pagerImpl) TotalPages() uint32 {
	return p.totalPages
}

// GetPage returns a page, allocating a zeroed one on first access
func (p *pagerImpl) GetPage(ctx context.Context, pageIdx PageIndex) (*Page, error) {
	if p.closed {
		return nil, ErrPagerClosed
	}

	if int(pageIdx) >= len(p.pages) {
		return nil, fmt.Errorf("%w: index: %d, maximum pages: %d", ErrPageOutOfBounds, pageIdx, len(p.pages))
	}

	if p.pages[pageIdx] != nil {
		return p.pages[pageIdx], nil
	}

	// Cache miss, there is no backing file so a fresh page is all zeroes
	p.pages[pageIdx] = new(Page)
	p.totalPages += 1

	p.logger.Debug("allocated page",
		zap.Uint32("page_index", uint32(pageIdx)),
		zap.Uint32("total_pages", p.totalPages),
	)

	return p.pages[pageIdx], nil
}

// Close releases all allocated pages
func (p *pagerImpl) Close() error {
	if p.closed {
		return ErrPagerClosed
	}
	for i := range p.pages {
		p.pages[i] = nil
	}
	p.totalPages = 0
	p.closed = true
	return nil
}
