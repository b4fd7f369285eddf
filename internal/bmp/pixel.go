package bmp

import "fmt"

// Pixel is a single color. On disk channels are ordered B, G, R, A.
type Pixel struct {
	R, G, B, A byte
}

// Creates a pixel from channels in on-disk (BGRA) order
func PixelBGRA(b, g, r, a byte) Pixel {
	return Pixel{R: r, G: g, B: b, A: a}
}

// Returns the Pixels in bytes as BGR (Blue, Green, Red)
func (p Pixel) BytesBGR() []byte {
	return []byte{p.B, p.G, p.R}
}

// Returns the Pixels in bytes as BGRA (Blue, Green, Red, Alpha/Reserved)
func (p Pixel) BytesBGRA() []byte {
	return []byte{p.B, p.G, p.R, p.A}
}

// Packs the pixel into a 5-5-5 word (top bit clear)
func (p Pixel) RGB555() uint16 {
	return uint16(p.R>>3)<<10 | uint16(p.G>>3)<<5 | uint16(p.B>>3)
}

// Expands a 5-5-5 word into an opaque pixel
func PixelRGB555(v uint16) Pixel {
	expand := func(c uint16) byte {
		c &= 0x1f
		return byte(c<<3 | c>>2)
	}
	return Pixel{R: expand(v >> 10), G: expand(v >> 5), B: expand(v), A: 0xff}
}

func (p Pixel) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", p.R, p.G, p.B, p.A)
}
