package bmp

import (
	"errors"
	"fmt"
	"io"
)

// FileHandlingError is the kind of failure a Load or Save ran into.
// Kinds compare with errors.Is against any error returned by this package.
type FileHandlingError int

const (
	FileCorrupt FileHandlingError = iota + 1
	UnexpectedEndOfFile
	FileTypeUnknown
	Not24BitColourBitmap
	CompressionNotSupported
	PalettisedBitmapNotSupported
	UnknownReadError
	UnknownWriteError
	CannotOpenFile
)

func (k FileHandlingError) Error() string {
	switch k {
	case FileCorrupt:
		return "file corrupt"
	case UnexpectedEndOfFile:
		return "unexpected end of file"
	case FileTypeUnknown:
		return "file type unknown"
	case Not24BitColourBitmap:
		return "not a 24-bit colour bitmap"
	case CompressionNotSupported:
		return "compression not supported"
	case PalettisedBitmapNotSupported:
		return "palettised bitmap not supported"
	case UnknownReadError:
		return "unknown read error"
	case UnknownWriteError:
		return "unknown write error"
	case CannotOpenFile:
		return "cannot open file"
	default:
		return fmt.Sprintf("file handling error %d", int(k))
	}
}

// FieldError reports the field (or file) an operation stopped at.
//
// It unwraps to both its Kind and, when present, the underlying I/O error.
type FieldError struct {
	Field string
	Kind  FileHandlingError
	Err   error
}

func (e *FieldError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("bmp: %s: %s: %v", e.Field, e.Kind, e.Err)
	}
	return fmt.Sprintf("bmp: %s: %s", e.Field, e.Kind)
}

func (e *FieldError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// KindOf returns the FileHandlingError carried by err, or 0 if there is none.
func KindOf(err error) FileHandlingError {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	var k FileHandlingError
	if errors.As(err, &k) {
		return k
	}
	return 0
}

func invalid(field string, kind FileHandlingError) error {
	return &FieldError{Field: field, Kind: kind}
}

// readFailure classifies a failed read: running out of bytes is
// UnexpectedEndOfFile, anything else is UnknownReadError.
func readFailure(field string, err error) error {
	kind := UnknownReadError
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		kind = UnexpectedEndOfFile
	}
	return &FieldError{Field: field, Kind: kind, Err: err}
}

func writeFailure(field string, err error) error {
	return &FieldError{Field: field, Kind: UnknownWriteError, Err: err}
}
