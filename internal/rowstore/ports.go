package rowstore

import (
	"context"
)

type Pager interface {
	GetPage(context.Context, PageIndex) (*Page, error)
	TotalPages() uint32
	MaxPages() uint32
	Close() error
}
