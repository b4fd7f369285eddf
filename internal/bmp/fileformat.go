// BMP-specific structs and types
package bmp

const (
	FileHeaderSize = 14 // Size of BitmapFileHeader on disk (fixed)
	InfoHeaderSize = 40 // Size of the classic BITMAPINFOHEADER

	CompressionRGB = 0 // BI_RGB (uncompressed)

	// Default resolution of encoded bitmaps: 72 DPI
	DefaultPixelsPerMeter = 2835
)

// The BitmapFileHeader structure contains information about the type, size,
// and layout of a file that contains a DIB [device-independent bitmap].
// https://learn.microsoft.com/en-us/windows/win32/api/wingdi/ns-wingdi-bitmapfileheader

type BitmapFileHeader struct {
	Type      [2]byte // The file type: must be 0x4d42 (ASCII string "BM").
	Size      uint32  // The size, in bytes, of the bitmap file.
	Reserved1 uint16  // Reserved; must be zero.
	Reserved2 uint16  // Reserved; must be zero.
	OffBits   uint32  // Bitmap File Offset (In bytes) to Pixel Arrays
}

// The BitmapInfoHeader structure contains information about the
// dimensions and color format of DIB [device-independent bitmap].

type BitmapInfoHeader struct {
	Size            uint32   // The number of bytes required by the structure.
	Width           int32    // The width of the bitmap, in pixels.
	Height          int32    // The height of the bitmap, in pixels (negative: top-down)
	Planes          uint16   // The number of planes for the target device.
	BitCount        BitDepth // The number of bits-per-pixel.
	Compression     uint32   // The type of compression
	SizeImage       uint32   // The size of the image (in bytes), may be 0 for BI_RGB.
	XPixelsPerM     int32    // The horizontal resolution, in pixels-per-meter.
	YPixelsPerM     int32    // The vertical resolution, in pixels-per-meter.
	ColorsUsed      uint32   // Number of color indexes that are actually used by bitmap.
	ColorsImportant uint32   // Number of color indexes required for displaying the bitmap.

	// Bytes following the 40-byte prefix in V2..V5 headers (kept as-is)
	Extra []byte
}

// BitDepth is the number of bits used per pixel.
type BitDepth uint16

const (
	Monochrome BitDepth = 1
	Color16    BitDepth = 4
	Color256   BitDepth = 8
	HighColor  BitDepth = 16
	TrueColor  BitDepth = 24
	DeepColor  BitDepth = 32
)

// Reports whether d is one of the supported depths
func (d BitDepth) Valid() bool {
	switch d {
	case Monochrome, Color16, Color256, HighColor, TrueColor, DeepColor:
		return true
	}
	return false
}

// Reports whether pixels of depth d are palette indices
func (d BitDepth) Indexed() bool {
	return d == Monochrome || d == Color16 || d == Color256
}

// Returns the palette capacity of an indexed depth, 0 otherwise
func (d BitDepth) MaxColors() int {
	if !d.Indexed() {
		return 0
	}
	return 1 << d
}

// Returns the number of bytes in a row of width pixels, including padding
func (d BitDepth) Stride(width int) int {
	return ((width*int(d) + 31) / 32) * 4
}
