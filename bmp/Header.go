package bmp

import (
	"io"
)

// FileTypeHeader is the 14 byte BITMAPFILEHEADER at the start of every file.
type FileTypeHeader struct {
	Signature          [2]byte // BMP Signature (BM)
	FileSize           uint32  // Total file size
	Reserved           uint32  // Reserved (0)
	OffsetToBitmapData uint32  // Offset to image data
}

func newFileTypeHeader(width, height int) FileTypeHeader {
	return FileTypeHeader{
		Signature:          signature,
		FileSize:           uint32(FileSize(width, height)),
		OffsetToBitmapData: PixelDataOffset,
	}
}

// Read fills the header and checks the signature.
func (s *FileTypeHeader) Read(r io.Reader) error {
	var err error

	if s.Signature[0], err = readField[uint8](r, "signature"); err != nil {
		return err
	}
	if s.Signature[1], err = readField[uint8](r, "signature"); err != nil {
		return err
	}

	if s.FileSize, err = readField[uint32](r, "file size"); err != nil {
		return err
	}

	if s.Reserved, err = readField[uint32](r, "reserved"); err != nil {
		return err
	}

	if s.OffsetToBitmapData, err = readField[uint32](r, "pixel data offset"); err != nil {
		return err
	}

	if s.Signature != signature {
		return invalid("signature", FileTypeUnknown)
	}
	return nil
}

func (s *FileTypeHeader) Write(w io.Writer) error {
	if err := writeField(w, "signature", s.Signature[0]); err != nil {
		return err
	}
	if err := writeField(w, "signature", s.Signature[1]); err != nil {
		return err
	}

	if err := writeField(w, "file size", s.FileSize); err != nil {
		return err
	}

	if err := writeField(w, "reserved", s.Reserved); err != nil {
		return err
	}

	return writeField(w, "pixel data offset", s.OffsetToBitmapData)
}
