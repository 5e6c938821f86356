package util

import (
	"fmt"
	"io"
	"strings"

	"github.com/RichardKnop/rowstore/internal/rowstore"
)

const (
	truncatedStringEnd = " ..."
	maxLength          = 40
)

type column struct {
	name  string
	width int
}

var columns = []column{
	{name: "id", width: 10},
	{name: "username", width: rowstore.UsernameSize},
	{name: "email", width: maxLength},
}

func PrintTableHeader(w io.Writer) {
	tableWidth := computeTableWidth()

	// add top horizontal header
	fmt.Fprintf(w, "+%s+\n", strings.Repeat("-", tableWidth-2))

	for _, aColumn := range columns {
		// an asterisk * in the format specifies that the padding size should be given as an argument
		fmt.Fprintf(w, "| %-*s ", aColumn.width, aColumn.name)
	}
	fmt.Fprintf(w, "|\n")

	// add horizontal border bellow the header row
	fmt.Fprintf(w, "+%s+\n", strings.Repeat("-", tableWidth-2))
}

func PrintTableRow(w io.Writer, aRow rowstore.Row) {
	values := []any{aRow.ID, aRow.Username, aRow.Email}

	for i, aValue := range values {
		aStringValue := fmt.Sprint(aValue)
		r := []rune(aStringValue)
		if len(r) > columns[i].width {
			aStringValue = string(r[0:columns[i].width-len(truncatedStringEnd)]) + truncatedStringEnd
		}
		fmt.Fprintf(w, "| %-*s ", columns[i].width, aStringValue)
	}
	fmt.Fprintf(w, "|\n")
}

func PrintTableEnd(w io.Writer) {
	fmt.Fprintf(w, "+%s+\n", strings.Repeat("-", computeTableWidth()-2))
}

func computeTableWidth() int {
	// left border is | followed by a space, right border is space followed by | (2+2=4)
	// then between each column we have space, |, space (3)
	tableWidth := 4 + (len(columns)-1)*3
	for _, aColumn := range columns {
		tableWidth += aColumn.width
	}
	return tableWidth
}
