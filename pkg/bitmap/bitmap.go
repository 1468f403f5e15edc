// Package bitmap writes and reads uncompressed 32-bit bitmap files.
//
// The layout is fixed: a 54-byte header, a gap up to DataOffset, then the
// pixels in row-major order with no row padding. Rows are stored in the order
// given, with no vertical flip.
package bitmap

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
)

var ErrPixelCount = errors.New("pixel count does not match dimensions")

// An Image is a decoded bitmap.
type Image struct {
	Header Header
	Pixels []Color
}

func (img *Image) Width() int {
	return int(img.Header.Width)
}

func (img *Image) Height() int {
	return int(img.Header.Height)
}

// At returns the pixel in column x of row y.
func (img *Image) At(x, y int) Color {
	return img.Pixels[y*img.Width()+x]
}

// Encode writes a width x height image to w. pixels is row-major and must hold
// exactly width*height values.
func Encode(w io.WriteSeeker, width, height int, pixels []Color) error {
	head, err := NewHeader(width, height)
	if err != nil {
		return err
	}
	if len(pixels) != width*height {
		return fmt.Errorf("%w: %d pixels for %dx%d", ErrPixelCount, len(pixels), width, height)
	}

	var hb bytes.Buffer
	hb.Grow(HeaderSize)
	// Writing to a bytes.Buffer cannot fail.
	_ = binary.Write(&hb, binary.LittleEndian, head)

	if err := writeFull(w, hb.Bytes()); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	if _, err := w.Seek(DataOffset, io.SeekStart); err != nil {
		return fmt.Errorf("seeking to data offset %d: %w", DataOffset, err)
	}

	data := make([]byte, head.ImageSize)
	for i, p := range pixels {
		binary.LittleEndian.PutUint32(data[i*BytesPerPixel:], uint32(p))
	}

	if err := writeFull(w, data); err != nil {
		return fmt.Errorf("writing pixel data: %w", err)
	}

	return nil
}

func writeFull(w io.Writer, p []byte) error {
	n, err := w.Write(p)
	if err != nil {
		return err
	}
	if n != len(p) {
		return io.ErrShortWrite
	}
	return nil
}

// WriteFile encodes the image to path, creating or truncating it. The file is
// always closed. On failure a partially written file may be left behind.
func WriteFile(path string, width, height int, pixels []Color) (err error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		closeErr := f.Close()
		if err == nil {
			err = closeErr
		}
	}()

	return Encode(f, width, height, pixels)
}

// Decode reads a bitmap written by Encode.
func Decode(r io.ReadSeeker) (*Image, error) {
	var head Header
	if err := binary.Read(r, binary.LittleEndian, &head); err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if err := head.Validate(); err != nil {
		return nil, err
	}

	if _, err := r.Seek(int64(head.DataOffset), io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking to data offset %d: %w", head.DataOffset, err)
	}

	data := make([]byte, head.ImageSize)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("reading pixel data: %w", err)
	}

	pixels := make([]Color, len(data)/BytesPerPixel)
	for i := range pixels {
		pixels[i] = Color(binary.LittleEndian.Uint32(data[i*BytesPerPixel:]))
	}

	return &Image{Header: head, Pixels: pixels}, nil
}

// ReadFile decodes the bitmap at path.
func ReadFile(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}

// ToRGBA converts the image for use with the image packages.
func (img *Image) ToRGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width(), img.Height()))
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			out.Set(x, y, img.At(x, y))
		}
	}
	return out
}
