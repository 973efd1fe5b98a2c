package bmp

import (
	"encoding/binary"
	"io"
)

// fixedWidth lists the integer types that appear in BMP headers.
type fixedWidth interface {
	~uint8 | ~uint16 | ~uint32 | ~int32
}

// readField reads one little-endian value. The field name ends up in the
// returned error so callers can tell which header entry was short.
func readField[T fixedWidth](r io.Reader, field string) (T, error) {
	var v T
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return v, readFailure(field, err)
	}
	return v, nil
}

func writeField[T fixedWidth](w io.Writer, field string, v T) error {
	if err := binary.Write(w, binary.LittleEndian, v); err != nil {
		return writeFailure(field, err)
	}
	return nil
}
