// Package bmp reads and writes uncompressed 24-bit BMP files.
//
// Only the BITMAPINFOHEADER variant with no palette and no compression is
// accepted. Pixel rows are transferred in file order, so storage row 0 of the
// canvas is the first row in the file.
package bmp

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"PictureToAscii/canvas"
)

const (
	FileTypeHeaderSize = 14
	FileInfoHeaderSize = 40
	PixelDataOffset    = FileTypeHeaderSize + FileInfoHeaderSize

	Planes          = 1
	BitsPerPixel    = 24
	CompressionNone = 0

	// ColoursUsedSentinel is accepted in the colours used field alongside 0.
	ColoursUsedSentinel = 2 << 24

	bytesPerPixel    = BitsPerPixel / 8
	maxPixelDataSize = 1 << 30
)

var signature = [2]byte{'B', 'M'}

// Padding is the number of zero bytes that end a row of width pixels.
func Padding(width int) int {
	return (4 - (bytesPerPixel*width)%4) % 4
}

// RowSize is the on-disk length of one padded row.
func RowSize(width int) int {
	return bytesPerPixel*width + Padding(width)
}

// FileSize is the total length of a saved width x height image.
func FileSize(width, height int) int {
	return PixelDataOffset + height*RowSize(width)
}

// Save writes c to path as a 24-bit BMP. A failed write can leave a partial
// file behind.
func Save(path string, c *canvas.Canvas) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return &FieldError{Field: path, Kind: CannotOpenFile, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = writeFailure(path, cerr)
		}
	}()

	return Encode(f, c)
}

// Load reads a 24-bit BMP from path into c. c is only modified when the whole
// file decodes successfully.
func Load(path string, c *canvas.Canvas) error {
	f, err := os.Open(path)
	if err != nil {
		return &FieldError{Field: path, Kind: CannotOpenFile, Err: err}
	}
	defer f.Close()

	return Decode(f, c)
}

// ReadHeaders reads and validates both headers of the file at path without
// touching its pixel data.
func ReadHeaders(path string) (FileTypeHeader, FileInfoHeader, error) {
	f, err := os.Open(path)
	if err != nil {
		return FileTypeHeader{}, FileInfoHeader{}, &FieldError{Field: path, Kind: CannotOpenFile, Err: err}
	}
	defer f.Close()

	return readHeaders(f)
}

func readHeaders(r io.Reader) (FileTypeHeader, FileInfoHeader, error) {
	var typeHeader FileTypeHeader
	var infoHeader FileInfoHeader

	if err := typeHeader.Read(r); err != nil {
		return typeHeader, infoHeader, err
	}
	if err := infoHeader.Read(r); err != nil {
		return typeHeader, infoHeader, err
	}
	if err := infoHeader.Validate(); err != nil {
		return typeHeader, infoHeader, err
	}
	return typeHeader, infoHeader, nil
}

// Decode reads a BMP stream into c. The pixel data is located through the
// offset declared in the file type header.
func Decode(r io.ReadSeeker, c *canvas.Canvas) error {
	typeHeader, infoHeader, err := readHeaders(r)
	if err != nil {
		return err
	}

	if _, err := r.Seek(int64(typeHeader.OffsetToBitmapData), io.SeekStart); err != nil {
		return readFailure("pixel data offset", err)
	}

	width, height := int(infoHeader.Width), int(infoHeader.Height)
	pixels, err := readPixels(bufio.NewReader(r), width, height)
	if err != nil {
		return err
	}
	return c.Replace(width, height, pixels)
}

func readPixels(r io.Reader, width, height int) ([]canvas.Pixel, error) {
	pixels := make([]canvas.Pixel, 0, width*height)
	row := make([]byte, RowSize(width))

	for j := 0; j < height; j++ {
		if _, err := io.ReadFull(r, row); err != nil {
			return nil, readFailure(fmt.Sprintf("pixel row %d", j), err)
		}
		for i := 0; i < width; i++ {
			bgr := row[i*bytesPerPixel:]
			pixels = append(pixels, canvas.Pixel{Blue: bgr[0], Green: bgr[1], Red: bgr[2]})
		}
	}
	return pixels, nil
}

// Encode writes c as a BMP stream.
func Encode(w io.Writer, c *canvas.Canvas) error {
	width, height := c.Width(), c.Height()
	if width <= 0 || height <= 0 {
		return fmt.Errorf("bmp: encode: %w", canvas.ErrInvalidSize)
	}

	bw := bufio.NewWriter(w)

	typeHeader := newFileTypeHeader(width, height)
	if err := typeHeader.Write(bw); err != nil {
		return err
	}
	infoHeader := newFileInfoHeader(width, height)
	if err := infoHeader.Write(bw); err != nil {
		return err
	}

	if err := writePixels(bw, c.Raw(), width, height); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return writeFailure("flush", err)
	}
	return nil
}

func writePixels(w io.Writer, pixels []canvas.Pixel, width, height int) error {
	// trailing padding bytes stay zero
	row := make([]byte, RowSize(width))

	for j := 0; j < height; j++ {
		for i, p := range pixels[j*width : (j+1)*width] {
			row[i*bytesPerPixel] = p.Blue
			row[i*bytesPerPixel+1] = p.Green
			row[i*bytesPerPixel+2] = p.Red
		}
		if _, err := w.Write(row); err != nil {
			return writeFailure(fmt.Sprintf("pixel row %d", j), err)
		}
	}
	return nil
}
