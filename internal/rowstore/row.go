package rowstore

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"
)

const (
	IDSize       = 4
	UsernameSize = 32
	EmailSize    = 255

	IDOffset       = 0
	UsernameOffset = IDOffset + IDSize
	EmailOffset    = UsernameOffset + UsernameSize

	// RowSize is the number of bytes a marshaled row occupies in a page
	RowSize = IDSize + UsernameSize + EmailSize
)

var (
	ErrUsernameTooLong = fmt.Errorf("username is too long")
	ErrEmailTooLong    = fmt.Errorf("email is too long")
	ErrInvalidText     = fmt.Errorf("text contains NUL byte")
	ErrBufferTooSmall  = fmt.Errorf("buffer too small for row")
)

// Row is a single record of the fixed users schema
type Row struct {
	ID       uint32
	Username string
	Email    string
}

// Validate checks text fields fit into their fixed size columns.
// Values are never truncated, an oversized value is an input error.
func (r Row) Validate() error {
	if len(r.Username) > UsernameSize {
		return fmt.Errorf("%w: %d bytes, maximum is %d", ErrUsernameTooLong, len(r.Username), UsernameSize)
	}
	if len(r.Email) > EmailSize {
		return fmt.Errorf("%w: %d bytes, maximum is %d", ErrEmailTooLong, len(r.Email), EmailSize)
	}
	// NUL is the padding byte, a value containing it would not survive unmarshaling
	if strings.IndexByte(r.Username, 0) >= 0 || strings.IndexByte(r.Email, 0) >= 0 {
		return ErrInvalidText
	}
	return nil
}

func (r Row) String() string {
	return fmt.Sprintf("(%d, %s, %s)", r.ID, r.Username, r.Email)
}

// Marshal writes the row into buf at fixed offsets, text columns are zero padded.
func (r Row) Marshal(buf []byte) error {
	if len(buf) < RowSize {
		return fmt.Errorf("%w: %d < %d", ErrBufferTooSmall, len(buf), RowSize)
	}

	binary.LittleEndian.PutUint32(buf[IDOffset:], r.ID)
	serializeString(r.Username, buf[UsernameOffset:UsernameOffset+UsernameSize])
	serializeString(r.Email, buf[EmailOffset:EmailOffset+EmailSize])

	return nil
}

func UnmarshalRow(buf []byte, aRow *Row) error {
	if len(buf) < RowSize {
		return fmt.Errorf("%w: %d < %d", ErrBufferTooSmall, len(buf), RowSize)
	}

	aRow.ID = binary.LittleEndian.Uint32(buf[IDOffset:])
	aRow.Username = deserializeToString(buf[UsernameOffset : UsernameOffset+UsernameSize])
	aRow.Email = deserializeToString(buf[EmailOffset : EmailOffset+EmailSize])

	return nil
}

func serializeString(value string, column []byte) {
	n := copy(column, value)
	clear(column[n:])
}

func deserializeToString(column []byte) string {
	if idx := bytes.IndexByte(column, 0); idx >= 0 {
		column = column[:idx]
	}
	return string(column)
}
