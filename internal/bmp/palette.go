package bmp

import (
	"fmt"

	"github.com/anas-shakeel/bmpcodec/internal/utils"
)

// RgbQuad is the color table of an indexed bitmap.
type RgbQuad []Pixel

// DecodePalette reads ih.Colors() BGRA entries that follow the info header.
func DecodePalette(data []byte, _ BitmapFileHeader, ih BitmapInfoHeader) (RgbQuad, error) {
	offset := FileHeaderSize + int(ih.Size)
	n := int(ih.Colors())

	raw, err := utils.ReadBytes(data, &offset, n*4)
	if err != nil {
		return nil, truncated(fmt.Sprintf("palette of %d colors", n), err)
	}

	palette := make(RgbQuad, n)
	for i := range palette {
		e := raw[i*4 : i*4+4]
		palette[i] = PixelBGRA(e[0], e[1], e[2], e[3])
	}
	return palette, nil
}

// BuildPalette collects the distinct colors of bm, in the order the encoder
// will write them, for an indexed depth. Direct-color depths get an empty
// palette.
func BuildPalette(bm *Bitmap, depth BitDepth) (RgbQuad, error) {
	if !depth.Indexed() {
		return RgbQuad{}, nil
	}

	colors := bm.UniqueColors()
	if len(colors) > depth.MaxColors() {
		return nil, fmt.Errorf("%w: %d colors, %d-bit allows %d",
			ErrPaletteOverflow, len(colors), depth, depth.MaxColors())
	}
	return RgbQuad(colors), nil
}

// Returns the size of the palette on disk
func (q RgbQuad) ByteSize() int {
	return 4 * len(q)
}

// Returns the palette entries as BGRA bytes
func (q RgbQuad) Bytes() []byte {
	b := make([]byte, 0, q.ByteSize())
	for _, p := range q {
		b = append(b, p.BytesBGRA()...)
	}
	return b
}

// Maps each color to its palette index (first occurrence wins)
func (q RgbQuad) Index() map[Pixel]int {
	index := make(map[Pixel]int, len(q))
	for i, p := range q {
		if _, ok := index[p]; !ok {
			index[p] = i
		}
	}
	return index
}
