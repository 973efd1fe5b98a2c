package bmp

import (
	"io"
)

// FileInfoHeader is the 40 byte BITMAPINFOHEADER that follows the file type
// header.
type FileInfoHeader struct {
	HeaderSize       uint32 // Size of the information header (40)
	Width            int32  // Image width
	Height           int32  // Image height
	Planes           uint16 // Number of color planes (always 1)
	BitsPerPixel     uint16 // Bits per pixel (24)
	Compression      uint32 // Compression method (0 for uncompressed)
	ImageSize        uint32 // Size of the raw pixel data (0 for uncompressed)
	XPixelsPerMeter  int32  // Horizontal resolution
	YPixelsPerMeter  int32  // Vertical resolution
	ColoursUsed      uint32 // Number of palette colours (0 for true-color images)
	ImportantColours uint32 // Number of important colours (0 for all)
}

// newFileInfoHeader fills in the only header this package ever writes.
func newFileInfoHeader(width, height int) FileInfoHeader {
	return FileInfoHeader{
		HeaderSize:   FileInfoHeaderSize,
		Width:        int32(width),
		Height:       int32(height),
		Planes:       Planes,
		BitsPerPixel: BitsPerPixel,
		Compression:  CompressionNone,
	}
}

// Read fills every field. It does not validate; see Validate.
func (s *FileInfoHeader) Read(r io.Reader) error {
	var err error

	if s.HeaderSize, err = readField[uint32](r, "info header size"); err != nil {
		return err
	}
	if s.Width, err = readField[int32](r, "width"); err != nil {
		return err
	}
	if s.Height, err = readField[int32](r, "height"); err != nil {
		return err
	}
	if s.Planes, err = readField[uint16](r, "planes"); err != nil {
		return err
	}
	if s.BitsPerPixel, err = readField[uint16](r, "bits per pixel"); err != nil {
		return err
	}
	if s.Compression, err = readField[uint32](r, "compression"); err != nil {
		return err
	}
	if s.ImageSize, err = readField[uint32](r, "image size"); err != nil {
		return err
	}
	if s.XPixelsPerMeter, err = readField[int32](r, "x pixels per meter"); err != nil {
		return err
	}
	if s.YPixelsPerMeter, err = readField[int32](r, "y pixels per meter"); err != nil {
		return err
	}
	if s.ColoursUsed, err = readField[uint32](r, "colours used"); err != nil {
		return err
	}
	if s.ImportantColours, err = readField[uint32](r, "important colours"); err != nil {
		return err
	}
	return nil
}

// Validate applies the decoder's format policy. Checks run in a fixed order
// and the first failure is returned.
func (s *FileInfoHeader) Validate() error {
	switch {
	case s.HeaderSize != FileInfoHeaderSize:
		return invalid("info header size", FileCorrupt)
	case s.Planes != Planes:
		return invalid("planes", FileCorrupt)
	case s.BitsPerPixel != BitsPerPixel:
		return invalid("bits per pixel", Not24BitColourBitmap)
	case s.Compression != CompressionNone:
		return invalid("compression", CompressionNotSupported)
	case s.ColoursUsed != 0 && s.ColoursUsed != ColoursUsedSentinel:
		return invalid("colours used", PalettisedBitmapNotSupported)
	case s.ImportantColours != 0:
		return invalid("important colours", PalettisedBitmapNotSupported)
	case s.Width < 1:
		return invalid("width", FileCorrupt)
	case s.Height < 1:
		// negative heights mark top-down bitmaps
		return invalid("height", FileCorrupt)
	case int64(s.Height)*int64(RowSize(int(s.Width))) > maxPixelDataSize:
		return invalid("height", FileCorrupt)
	}
	return nil
}

func (s *FileInfoHeader) Write(w io.Writer) error {
	if err := writeField(w, "info header size", s.HeaderSize); err != nil {
		return err
	}
	if err := writeField(w, "width", s.Width); err != nil {
		return err
	}
	if err := writeField(w, "height", s.Height); err != nil {
		return err
	}
	if err := writeField(w, "planes", s.Planes); err != nil {
		return err
	}
	if err := writeField(w, "bits per pixel", s.BitsPerPixel); err != nil {
		return err
	}
	if err := writeField(w, "compression", s.Compression); err != nil {
		return err
	}
	if err := writeField(w, "image size", s.ImageSize); err != nil {
		return err
	}
	if err := writeField(w, "x pixels per meter", s.XPixelsPerMeter); err != nil {
		return err
	}
	if err := writeField(w, "y pixels per meter", s.YPixelsPerMeter); err != nil {
		return err
	}
	if err := writeField(w, "colours used", s.ColoursUsed); err != nil {
		return err
	}
	return writeField(w, "important colours", s.ImportantColours)
}
