package julia

import (
	"image"
	"image/color"
)

// Pixmap is a rendered frame: non-premultiplied RGBA bytes in row-major
// order, top row first. Interior pixels may carry zero alpha with the
// background color still in their RGB channels, so the buffer is
// straight alpha, not premultiplied.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap allocates a zeroed frame of the given size.
func NewPixmap(width, height int) *Pixmap {
	if width < 1 || height < 1 {
		return nil
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the frame width in pixels.
func (p *Pixmap) Width() int { return p.width }

// Height returns the frame height in pixels.
func (p *Pixmap) Height() int { return p.height }

// Data returns the backing RGBA bytes, length Width*Height*4. The slice
// is the live buffer, not a copy.
func (p *Pixmap) Data() []uint8 { return p.data }

// row returns the byte slice backing one pixel row.
func (p *Pixmap) row(y int) []uint8 {
	off := y * p.width * 4
	return p.data[off : off+p.width*4]
}

// RGBAAt returns the channel bytes of the pixel at (x, y).
func (p *Pixmap) RGBAAt(x, y int) (r, g, b, a uint8) {
	i := (y*p.width + x) * 4
	return p.data[i], p.data[i+1], p.data[i+2], p.data[i+3]
}

// NRGBA returns an image view sharing the pixmap's backing buffer.
// Mutating either side is visible in the other.
func (p *Pixmap) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    p.data,
		Stride: p.width * 4,
		Rect:   image.Rect(0, 0, p.width, p.height),
	}
}

// ColorModel implements image.Image.
func (p *Pixmap) ColorModel() color.Model { return color.NRGBAModel }

// Bounds implements image.Image.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// At implements image.Image.
func (p *Pixmap) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= p.width || y >= p.height {
		return color.NRGBA{}
	}
	r, g, b, a := p.RGBAAt(x, y)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

var _ image.Image = (*Pixmap)(nil)
