package rowstore

const (
	PageSize = 4096 // 4 kilobytes
	MaxPages = 100

	// RowsPerPage is how many marshaled rows fit into a single page,
	// the remainder of the page is unused padding
	RowsPerPage = PageSize / RowSize
	MaxRows     = RowsPerPage * MaxPages
)

type PageIndex uint32

type Page [PageSize]byte

// rowOffset returns the byte offset of the cell within a page
func rowOffset(cellIdx uint32) uint32 {
	return cellIdx * RowSize
}
