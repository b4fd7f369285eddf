package bmp

import "errors"

var (
	ErrTruncated              = errors.New("bmp: truncated data")
	ErrInvalidMagic           = errors.New("bmp: invalid file: not a bitmap")
	ErrUnsupportedCompression = errors.New("bmp: unsupported compression")
	ErrUnsupportedBitDepth    = errors.New("bmp: unsupported bit depth")
	ErrUnsupportedHeader      = errors.New("bmp: unsupported info header")
	ErrPaletteOverflow        = errors.New("bmp: too many colors for bit depth")
	ErrInvalidDimensions      = errors.New("bmp: invalid dimensions")
	ErrInvalidPaletteIndex    = errors.New("bmp: palette index out of range")
)
