package bmp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anas-shakeel/bmpcodec/internal/utils"
)

func TestFileHeaderRoundTrip(t *testing.T) {
	raw := []byte{
		'B', 'M',
		0x46, 0x00, 0x00, 0x00, // size 70
		0x01, 0x00, // reserved1
		0x02, 0x00, // reserved2
		0x3e, 0x00, 0x00, 0x00, // offset 62
	}

	h, err := DecodeFileHeader(raw)
	require.NoError(t, err)
	assert.Equal(t, "BM", h.Magic())
	assert.Equal(t, uint32(70), h.Size)
	assert.Equal(t, uint16(1), h.Reserved1)
	assert.Equal(t, uint16(2), h.Reserved2)
	assert.Equal(t, uint32(62), h.OffBits)

	assert.Equal(t, raw, h.Bytes())
	assert.Len(t, h.Bytes(), FileHeaderSize)
	assert.Equal(t, "Type: BM, Size: 70, res1: 1, res2: 2, offset: 62", h.String())
}

func TestDecodeFileHeader_NoMagicCheck(t *testing.T) {
	raw := append([]byte("XX"), make([]byte, 12)...)
	h, err := DecodeFileHeader(raw)
	require.NoError(t, err)
	assert.Equal(t, "XX", h.Magic())
}

func TestDecodeFileHeader_Truncated(t *testing.T) {
	for n := range FileHeaderSize {
		_, err := DecodeFileHeader(make([]byte, n))
		assert.ErrorIs(t, err, ErrTruncated, "length %d", n)
		assert.ErrorIs(t, err, utils.ErrOutOfBounds, "length %d", n)
	}
}

func sampleInfoHeader() BitmapInfoHeader {
	return BitmapInfoHeader{
		Size:            InfoHeaderSize,
		Width:           3,
		Height:          -2,
		Planes:          1,
		BitCount:        Color256,
		SizeImage:       8,
		XPixelsPerM:     2835,
		YPixelsPerM:     2835,
		ColorsUsed:      5,
		ColorsImportant: 5,
	}
}

func TestInfoHeaderRoundTrip(t *testing.T) {
	h := sampleInfoHeader()
	raw := h.Bytes()
	require.Len(t, raw, InfoHeaderSize)

	// Height at offset 8, bit count at offset 14
	assert.Equal(t, []byte{8, 0}, raw[14:16])
	assert.Equal(t, []byte{0xfe, 0xff, 0xff, 0xff}, raw[8:12])

	data := append(make([]byte, FileHeaderSize), raw...)
	got, err := DecodeInfoHeader(data, FileHeaderSize)
	require.NoError(t, err)
	assert.Equal(t, h, got)
	assert.True(t, got.TopDown())
	assert.Equal(t, 2, got.AbsHeight())
}

func TestDecodeInfoHeader_ExtendedVariant(t *testing.T) {
	h := sampleInfoHeader()
	h.Size = 124
	h.Extra = bytes.Repeat([]byte{0xab}, 124-InfoHeaderSize)
	raw := h.Bytes()
	require.Len(t, raw, 124)

	got, err := DecodeInfoHeader(raw, 0)
	require.NoError(t, err)
	assert.Equal(t, h.Extra, got.Extra)
	assert.Equal(t, raw, got.Bytes())

	// Extra bytes must be present in full
	_, err = DecodeInfoHeader(raw[:100], 0)
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestDecodeInfoHeader_CoreHeaderRejected(t *testing.T) {
	data := append(utils.Uint32Bytes(12), make([]byte, 8)...)
	_, err := DecodeInfoHeader(data, 0)
	assert.ErrorIs(t, err, ErrUnsupportedHeader)
}

func TestInfoHeaderColors(t *testing.T) {
	tests := []struct {
		depth      BitDepth
		colorsUsed uint32
		want       uint32
	}{
		{Monochrome, 0, 2},
		{Color16, 0, 16},
		{Color256, 0, 256},
		{Color256, 3, 3},
		{TrueColor, 0, 0},
		{DeepColor, 7, 7},
	}

	for _, tt := range tests {
		h := BitmapInfoHeader{BitCount: tt.depth, ColorsUsed: tt.colorsUsed}
		assert.Equal(t, tt.want, h.Colors(), "depth %d, colorsUsed %d", tt.depth, tt.colorsUsed)
	}
}

func TestBitDepth(t *testing.T) {
	for _, d := range []BitDepth{1, 4, 8, 16, 24, 32} {
		assert.True(t, d.Valid(), "depth %d", d)
	}
	for _, d := range []BitDepth{0, 2, 12, 64} {
		assert.False(t, d.Valid(), "depth %d", d)
	}

	assert.True(t, Color16.Indexed())
	assert.False(t, HighColor.Indexed())
	assert.Equal(t, 256, Color256.MaxColors())
	assert.Equal(t, 0, TrueColor.MaxColors())

	tests := []struct {
		depth BitDepth
		width int
		want  int
	}{
		{Monochrome, 2, 4},
		{Monochrome, 33, 8},
		{Color16, 9, 8},
		{Color256, 5, 8},
		{HighColor, 3, 8},
		{TrueColor, 3, 12},
		{TrueColor, 4, 12},
		{DeepColor, 3, 12},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.depth.Stride(tt.width), "%d-bit, width %d", tt.depth, tt.width)
	}
}
