package bmp

import (
	"bytes"
	"fmt"

	"github.com/anas-shakeel/bmpcodec/internal/logging"
	"github.com/anas-shakeel/bmpcodec/internal/utils"
)

// BitmapImage is a decoded bitmap file: its headers, color table and pixels.
type BitmapImage struct {
	FileHeader BitmapFileHeader
	InfoHeader BitmapInfoHeader
	Palette    RgbQuad
	Bitmap     *Bitmap
}

// Decode parses a complete BMP file held in data.
func Decode(data []byte) (*BitmapImage, error) {
	// Verify that this is a .BMP file by checking bitmap id (0x4d42)
	i := 0
	magic, err := utils.ReadBytes(data, &i, 2)
	if err != nil {
		return nil, truncated("file header", err)
	}
	if string(magic) != "BM" {
		return nil, fmt.Errorf("%w: magic %q", ErrInvalidMagic, magic)
	}

	fh, err := DecodeFileHeader(data)
	if err != nil {
		return nil, err
	}
	if int(fh.Size) != len(data) {
		logging.Warn("bmp: file header declares %d bytes, got %d", fh.Size, len(data))
	}

	// READ Info Header OR (more commonly) DIB Header!
	ih, err := DecodeInfoHeader(data, FileHeaderSize)
	if err != nil {
		return nil, err
	}

	if ih.Compression != CompressionRGB {
		return nil, fmt.Errorf("%w: type %d", ErrUnsupportedCompression, ih.Compression)
	}
	if !ih.BitCount.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, ih.BitCount)
	}
	if ih.Width <= 0 || ih.Height == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, ih.Width, ih.Height)
	}

	logging.Debug("bmp: decoding %dx%d, %d-bit, header %d bytes, %d colors, pixels at %d",
		ih.Width, ih.Height, ih.BitCount, ih.Size, ih.Colors(), fh.OffBits)

	palette := RgbQuad{}
	if ih.BitCount.Indexed() {
		if palette, err = DecodePalette(data, fh, ih); err != nil {
			return nil, err
		}
	}

	// OffBits is authoritative: headers may be followed by a gap
	bm, err := decodeBitmap(data, int(fh.OffBits), ih, palette)
	if err != nil {
		return nil, err
	}

	return &BitmapImage{
		FileHeader: fh,
		InfoHeader: ih,
		Palette:    palette,
		Bitmap:     bm,
	}, nil
}

// Encoder writes bitmaps at a fixed depth and resolution.
type Encoder struct {
	BitDepth    BitDepth
	XPixelsPerM int32
	YPixelsPerM int32
}

// Returns an encoder for depth at the default resolution
func NewEncoder(depth BitDepth) *Encoder {
	return &Encoder{
		BitDepth:    depth,
		XPixelsPerM: DefaultPixelsPerMeter,
		YPixelsPerM: DefaultPixelsPerMeter,
	}
}

// Encode serializes bm as a BMP file at the given depth.
func Encode(bm *Bitmap, depth BitDepth) ([]byte, error) {
	return NewEncoder(depth).Encode(bm)
}

// Encode serializes bm: file header, info header, palette, pixel array,
// with no gaps.
func (e *Encoder) Encode(bm *Bitmap) ([]byte, error) {
	depth := e.BitDepth
	if !depth.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, depth)
	}
	if err := bm.Validate(); err != nil {
		return nil, err
	}

	palette, err := BuildPalette(bm, depth)
	if err != nil {
		return nil, err
	}

	pixels, err := bm.encode(depth, palette)
	if err != nil {
		return nil, err
	}

	offBits := uint32(FileHeaderSize + InfoHeaderSize + palette.ByteSize())
	sizeImage := uint32(len(pixels))

	height := int32(bm.Height)
	if bm.TopDown {
		height = -height
	}

	fh := BitmapFileHeader{
		Type:    [2]byte{'B', 'M'},
		Size:    offBits + sizeImage, // Size of the whole bitmap file
		OffBits: offBits,
	}
	ih := BitmapInfoHeader{
		Size:        InfoHeaderSize,
		Width:       int32(bm.Width),
		Height:      height,
		Planes:      1,
		BitCount:    depth,
		Compression: CompressionRGB,
		SizeImage:   sizeImage,
		XPixelsPerM: e.XPixelsPerM,
		YPixelsPerM: e.YPixelsPerM,
		ColorsUsed:  uint32(len(palette)),
	}

	logging.Debug("bmp: encoding %dx%d, %d-bit, %d colors, %d bytes",
		bm.Width, bm.Height, depth, len(palette), fh.Size)

	var buf bytes.Buffer
	buf.Grow(int(fh.Size))
	buf.Write(fh.Bytes())
	buf.Write(ih.Bytes())
	buf.Write(palette.Bytes())
	buf.Write(pixels)

	return buf.Bytes(), nil
}

// Encode re-encodes the image at its decoded depth and resolution.
func (b *BitmapImage) Encode() ([]byte, error) {
	e := &Encoder{
		BitDepth:    b.InfoHeader.BitCount,
		XPixelsPerM: b.InfoHeader.XPixelsPerM,
		YPixelsPerM: b.InfoHeader.YPixelsPerM,
	}
	return e.Encode(b.Bitmap)
}
