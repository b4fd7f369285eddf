// bmp package implements an encoder and decoder for uncompressed bitmaps
package bmp

import (
	"fmt"
	"io"

	"github.com/anas-shakeel/bmpcodec/internal/utils"
)

// Bitmap is the pixel grid of an image. Rows are kept in the order they
// are stored on disk: Pixels[0] is the bottom row of a bottom-up bitmap
// and the top row when TopDown is set.
type Bitmap struct {
	Width   int
	Height  int
	TopDown bool
	Pixels  [][]Pixel
}

// Creates and returns a bottom-up bitmap filled with zero pixels
func NewBitmap(width, height int) (*Bitmap, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: width must be greater than 0", ErrInvalidDimensions)
	} else if height <= 0 {
		return nil, fmt.Errorf("%w: height must be greater than 0", ErrInvalidDimensions)
	}

	// Create the pixels 2d slice
	pixels := make([][]Pixel, height)
	for i := range height {
		pixels[i] = make([]Pixel, width)
	}

	return &Bitmap{Width: width, Height: height, Pixels: pixels}, nil
}

// Returns the index into Pixels of row y, counted from the top
func (b *Bitmap) storedRow(y int) int {
	if b.TopDown {
		return y
	}
	return b.Height - y - 1
}

// Returns the pixel at column x, row y (0,0 is at the top-left)
func (b *Bitmap) At(x, y int) Pixel {
	return b.Pixels[b.storedRow(y)][x]
}

// Sets the pixel at column x, row y (0,0 is at the top-left)
func (b *Bitmap) Set(x, y int, p Pixel) {
	b.Pixels[b.storedRow(y)][x] = p
}

// Checks that the grid matches its declared dimensions
func (b *Bitmap) Validate() error {
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, b.Width, b.Height)
	}
	if len(b.Pixels) != b.Height {
		return fmt.Errorf("%w: %d rows, height is %d", ErrInvalidDimensions, len(b.Pixels), b.Height)
	}
	for i, row := range b.Pixels {
		if len(row) != b.Width {
			return fmt.Errorf("%w: row %d has %d pixels, width is %d", ErrInvalidDimensions, i, len(row), b.Width)
		}
	}
	return nil
}

// UniqueColors returns every distinct color in first-seen order, scanning
// rows in stored order: the same order the encoder writes them.
func (b *Bitmap) UniqueColors() []Pixel {
	seen := make(map[Pixel]struct{})
	colors := []Pixel{}
	for _, row := range b.Pixels {
		for _, p := range row {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			colors = append(colors, p)
		}
	}
	return colors
}

// Returns the position of a depth-bit index within a row: byte offset and
// left shift (most significant bits hold the leftmost pixel)
func indexPosition(col int, depth BitDepth) (int, uint) {
	bit := col * int(depth)
	return bit / 8, uint(8 - int(depth) - bit%8)
}

// Decodes the pixel array at offset. palette is used for indexed depths only.
func decodeBitmap(data []byte, offset int, ih BitmapInfoHeader, palette RgbQuad) (*Bitmap, error) {
	depth := ih.BitCount
	width := int(ih.Width)
	height := ih.AbsHeight()
	stride := depth.Stride(width) // Total bytes in a row (incl. padding)

	// Reject before allocating: stride*height may not even fit the buffer
	if offset < 0 || offset > len(data) || height > (len(data)-offset)/stride {
		return nil, fmt.Errorf("%w: pixel array needs %d rows of %d bytes at offset %d, file has %d bytes",
			ErrTruncated, height, stride, offset, len(data))
	}
	raw, err := utils.ReadBytes(data, &offset, stride*height)
	if err != nil {
		return nil, truncated("pixel array", err)
	}

	bm, err := NewBitmap(width, height)
	if err != nil {
		return nil, err
	}
	bm.TopDown = ih.TopDown()

	for row := range height {
		line := raw[row*stride : (row+1)*stride]
		pixels := bm.Pixels[row]

		for col := range width {
			switch depth {
			case Monochrome, Color16, Color256:
				i, shift := indexPosition(col, depth)
				idx := int(line[i]>>shift) & (1<<depth - 1)
				if idx >= len(palette) {
					return nil, fmt.Errorf("%w: index %d at row %d, col %d, palette has %d colors",
						ErrInvalidPaletteIndex, idx, row, col, len(palette))
				}
				pixels[col] = palette[idx]
			case HighColor:
				pixels[col] = PixelRGB555(uint16(line[col*2]) | uint16(line[col*2+1])<<8)
			case TrueColor:
				p := line[col*3 : col*3+3]
				pixels[col] = PixelBGRA(p[0], p[1], p[2], 0xff)
			case DeepColor:
				p := line[col*4 : col*4+4]
				pixels[col] = PixelBGRA(p[0], p[1], p[2], p[3])
			default:
				return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, depth)
			}
		}
	}

	return bm, nil
}

// Encodes the grid as a padded pixel array. For indexed depths every
// pixel must be present in palette.
func (b *Bitmap) encode(depth BitDepth, palette RgbQuad) ([]byte, error) {
	stride := depth.Stride(b.Width)
	out := make([]byte, stride*b.Height) // padding stays zero

	var index map[Pixel]int
	if depth.Indexed() {
		index = palette.Index()
	}

	for row, pixels := range b.Pixels {
		line := out[row*stride : (row+1)*stride]

		for col, p := range pixels {
			switch depth {
			case Monochrome, Color16, Color256:
				idx, ok := index[p]
				if !ok || idx >= depth.MaxColors() {
					return nil, fmt.Errorf("%w: color %v at row %d, col %d", ErrInvalidPaletteIndex, p, row, col)
				}
				i, shift := indexPosition(col, depth)
				line[i] |= byte(idx) << shift
			case HighColor:
				v := p.RGB555()
				line[col*2] = byte(v)
				line[col*2+1] = byte(v >> 8)
			case TrueColor:
				copy(line[col*3:], p.BytesBGR())
			case DeepColor:
				copy(line[col*4:], p.BytesBGRA())
			default:
				return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, depth)
			}
		}
	}

	return out, nil
}

// Print the bitmap in terminal. Use for small images only
func (b *Bitmap) Preview(w io.Writer) error {
	for y := range b.Height {
		for x := range b.Width {
			p := b.At(x, y)
			if _, err := fmt.Fprint(w, utils.ColoredBlock("  ", int(p.R), int(p.G), int(p.B))); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
