package bitmap

import (
	"errors"
	"fmt"
	"io"
	"math"
)

const (
	// HeaderSize is the number of header bytes written: a 14-byte file header
	// followed by a 40-byte info header.
	HeaderSize = 54

	// DataOffset is where pixel data starts. The bytes between HeaderSize and
	// DataOffset are a gap left by seeking; existing readers expect 138.
	DataOffset = 138

	// InfoHeaderSize is the declared info header size.
	InfoHeaderSize = 124

	BitsPerPixel  = 32
	BytesPerPixel = BitsPerPixel / 8
)

// Magic is the file type identifier, "BM".
var Magic = [2]byte{'B', 'M'}

var (
	ErrDimensions  = errors.New("image dimensions must be positive")
	ErrTooLarge    = errors.New("image too large for 32-bit size fields")
	ErrNotBitmap   = errors.New("not a bitmap")
	ErrUnsupported = errors.New("unsupported bitmap variant")
)

// Header is the packed on-disk header. Field order and widths match the file
// layout, so encoding/binary reads and writes it directly in 54 bytes.
type Header struct {
	Type       [2]byte
	FileSize   uint32
	Reserved1  uint16
	Reserved2  uint16
	DataOffset uint32

	InfoSize        uint32
	Width           int32
	Height          int32
	Planes          uint16
	BitCount        uint16
	Compression     uint32
	ImageSize       uint32
	XPixelsPerM     int32
	YPixelsPerM     int32
	ColorsUsed      uint32
	ColorsImportant uint32
}

// ImageBytes is the pixel data length of a width x height image.
func ImageBytes(width, height int) (int, error) {
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("%w: %dx%d", ErrDimensions, width, height)
	}
	if width > math.MaxInt32 || height > math.MaxInt32 ||
		uint64(width)*uint64(height) > (math.MaxUint32-DataOffset)/BytesPerPixel {
		return 0, fmt.Errorf("%w: %dx%d", ErrTooLarge, width, height)
	}
	return width * height * BytesPerPixel, nil
}

// NewHeader returns the header for an uncompressed 32-bit width x height image.
func NewHeader(width, height int) (Header, error) {
	size, err := ImageBytes(width, height)
	if err != nil {
		return Header{}, err
	}

	return Header{
		Type:       Magic,
		FileSize:   uint32(DataOffset + size),
		DataOffset: DataOffset,
		InfoSize:   InfoHeaderSize,
		Width:      int32(width),
		Height:     int32(height),
		Planes:     1,
		BitCount:   BitsPerPixel,
		ImageSize:  uint32(size),
	}, nil
}

// Validate checks that h describes something Decode can read.
func (h Header) Validate() error {
	if h.Type != Magic {
		return fmt.Errorf("%w: type %q", ErrNotBitmap, h.Type[:])
	}
	if h.BitCount != BitsPerPixel || h.Compression != 0 || h.Planes != 1 {
		return fmt.Errorf("%w: %d planes, %d bpp, compression %d",
			ErrUnsupported, h.Planes, h.BitCount, h.Compression)
	}

	size, err := ImageBytes(int(h.Width), int(h.Height))
	if err != nil {
		return err
	}
	if h.ImageSize != uint32(size) {
		return fmt.Errorf("%w: image size %d for %dx%d", ErrUnsupported, h.ImageSize, h.Width, h.Height)
	}
	if h.DataOffset < HeaderSize {
		return fmt.Errorf("%w: data offset %d inside header", ErrUnsupported, h.DataOffset)
	}
	return nil
}

// Dump writes every header field to w, one per line.
func (h Header) Dump(w io.Writer) error {
	_, err := fmt.Fprintf(w, `type: %s (%#04x)
size: %d
reserved1: %d
reserved2: %d
offset: %d (%#x)
info_header_size: %d
width: %d
height: %d
planes: %d
bits_per_pixel: %d
compression: %d
image_size: %d
x_pixels_per_m: %d
y_pixels_per_m: %d
colors_used: %d
colors_important: %d
`,
		h.Type[:], uint16(h.Type[0])|uint16(h.Type[1])<<8,
		h.FileSize,
		h.Reserved1,
		h.Reserved2,
		h.DataOffset, h.DataOffset,
		h.InfoSize,
		h.Width,
		h.Height,
		h.Planes,
		h.BitCount,
		h.Compression,
		h.ImageSize,
		h.XPixelsPerM,
		h.YPixelsPerM,
		h.ColorsUsed,
		h.ColorsImportant,
	)
	return err
}
