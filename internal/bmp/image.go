package bmp

import (
	"image"
	"image/color"
)

// Returns a top-left-origin copy of the bitmap
func (b *Bitmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := range b.Height {
		for x := range b.Width {
			p := b.At(x, y)
			img.SetNRGBA(x, y, color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A})
		}
	}
	return img
}

// FromImage copies any image into a bottom-up bitmap.
func FromImage(img image.Image) *Bitmap {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	pixels := make([][]Pixel, height)
	bm := &Bitmap{Width: width, Height: height, Pixels: pixels}
	for i := range height {
		pixels[i] = make([]Pixel, width)
	}

	for y := range height {
		for x := range width {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			bm.Set(x, y, Pixel{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}
	return bm
}

// ToImage returns the decoded pixels as an image. Only 32-bit bitmaps carry
// alpha, and only when some pixel has a non-zero alpha byte; everything
// else is opaque.
func (b *BitmapImage) ToImage() *image.NRGBA {
	img := b.Bitmap.ToImage()
	if b.InfoHeader.BitCount == DeepColor && hasAlpha(img) {
		return img
	}
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
	return img
}

func hasAlpha(img *image.NRGBA) bool {
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			return true
		}
	}
	return false
}
