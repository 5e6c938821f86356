package rowstore

type StatementKind int

const (
	Insert StatementKind = iota + 1
	Select
)

func (k StatementKind) String() string {
	switch k {
	case Insert:
		return "INSERT"
	case Select:
		return "SELECT"
	default:
		return "UNKNOWN"
	}
}

// Statement is a prepared statement, RowToInsert is only used by INSERT
// and is expected to have been validated by the parser.
type Statement struct {
	Kind        StatementKind
	RowToInsert Row
}
