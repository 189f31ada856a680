package sprite

import (
	"cmp"
	"fmt"
	"image"
	"image/color"
)

// Mode is the color representation of a raster. Bilevel, gray and paletted
// rasters carry single-value colors, RGB and RGBA rasters carry channel
// tuples.
type Mode int

const (
	ModeBilevel Mode = iota
	ModeGray
	ModePaletted
	ModeRGB
	ModeRGBA
)

func (m Mode) Channels() int {
	switch m {
	case ModeRGB:
		return 3
	case ModeRGBA:
		return 4
	default:
		return 1
	}
}

func (m Mode) String() string {
	switch m {
	case ModeBilevel:
		return "1"
	case ModeGray:
		return "L"
	case ModePaletted:
		return "P"
	case ModeRGB:
		return "RGB"
	case ModeRGBA:
		return "RGBA"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Color is a comparable pixel value: either a single value (index or gray
// level) or an RGB/RGBA tuple. The zero Color has no channels and stands
// for "no color".
type Color struct {
	n uint8
	v [4]uint16
}

// Value returns a single-channel color.
func Value(v uint16) Color {
	return Color{n: 1, v: [4]uint16{v}}
}

func RGB(r, g, b uint8) Color {
	return Color{n: 3, v: [4]uint16{uint16(r), uint16(g), uint16(b)}}
}

func RGBA(r, g, b, a uint8) Color {
	return Color{n: 4, v: [4]uint16{uint16(r), uint16(g), uint16(b), uint16(a)}}
}

// Channels returns 0 for the zero Color, 1 for single values, 3 or 4 for
// tuples.
func (c Color) Channels() int { return int(c.n) }

func (c Color) IsZero() bool { return c.n == 0 }

// Channel returns the i-th channel value.
func (c Color) Channel(i int) uint16 { return c.v[i] }

// NRGBA converts c for display. Single values are read as 8-bit gray
// levels, clamped to white.
func (c Color) NRGBA() color.NRGBA {
	switch c.n {
	case 1:
		y := uint8(min(c.v[0], 0xFF))
		return color.NRGBA{R: y, G: y, B: y, A: 0xFF}
	case 3:
		return color.NRGBA{R: uint8(c.v[0]), G: uint8(c.v[1]), B: uint8(c.v[2]), A: 0xFF}
	case 4:
		return color.NRGBA{R: uint8(c.v[0]), G: uint8(c.v[1]), B: uint8(c.v[2]), A: uint8(c.v[3])}
	}
	return color.NRGBA{}
}

func (c Color) String() string {
	switch c.n {
	case 0:
		return "none"
	case 1:
		return fmt.Sprintf("%d", c.v[0])
	case 3:
		return fmt.Sprintf("#%02x%02x%02x", c.v[0], c.v[1], c.v[2])
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.v[0], c.v[1], c.v[2], c.v[3])
}

// CompareColors orders colors by channel count, then channel values.
func CompareColors(a, b Color) int {
	if r := cmp.Compare(a.n, b.n); r != 0 {
		return r
	}
	for i := range a.v {
		if r := cmp.Compare(a.v[i], b.v[i]); r != 0 {
			return r
		}
	}
	return 0
}

// Raster is a read-only pixel grid addressed from (0, 0).
type Raster interface {
	Mode() Mode
	Width() int
	Height() int
	PixelAt(x, y int) Color
}

// Buffer is an in-memory Raster.
type Buffer struct {
	mode          Mode
	width, height int
	pix           []Color
}

// NewBuffer returns a buffer filled with the zero value of mode: 0 for
// single-value modes, black for RGB and transparent black for RGBA.
func NewBuffer(mode Mode, width, height int) *Buffer {
	width, height = max(width, 0), max(height, 0)
	b := &Buffer{
		mode:   mode,
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}

	var zero Color
	switch mode.Channels() {
	case 1:
		zero = Value(0)
	case 3:
		zero = RGB(0, 0, 0)
	default:
		zero = RGBA(0, 0, 0, 0)
	}
	for i := range b.pix {
		b.pix[i] = zero
	}
	return b
}

func (b *Buffer) Mode() Mode  { return b.mode }
func (b *Buffer) Width() int  { return b.width }
func (b *Buffer) Height() int { return b.height }

func (b *Buffer) PixelAt(x, y int) Color {
	return b.pix[y*b.width+x]
}

func (b *Buffer) Set(x, y int, c Color) {
	b.pix[y*b.width+x] = c
}

// Fill sets every pixel inside r, clipped to the buffer.
func (b *Buffer) Fill(r image.Rectangle, c Color) {
	r = r.Intersect(image.Rect(0, 0, b.width, b.height))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			b.Set(x, y, c)
		}
	}
}

type imageRaster struct {
	img  image.Image
	mode Mode
	min  image.Point
	size image.Point
	at   func(x, y int) Color
}

// FromImage wraps img as a Raster. Paletted images yield palette indices,
// gray images gray levels, opaque color images RGB tuples and everything
// else non-premultiplied RGBA tuples.
func FromImage(img image.Image) Raster {
	b := img.Bounds()
	r := &imageRaster{img: img, min: b.Min, size: b.Size()}

	switch m := img.(type) {
	case *image.Paletted:
		r.mode = ModePaletted
		r.at = func(x, y int) Color { return Value(uint16(m.ColorIndexAt(x, y))) }
	case *image.Gray:
		r.mode = ModeGray
		r.at = func(x, y int) Color { return Value(uint16(m.GrayAt(x, y).Y)) }
	case *image.Gray16:
		r.mode = ModeGray
		r.at = func(x, y int) Color { return Value(m.Gray16At(x, y).Y) }
	case *image.NRGBA:
		r.mode = ModeRGBA
		r.at = func(x, y int) Color {
			c := m.NRGBAAt(x, y)
			return RGBA(c.R, c.G, c.B, c.A)
		}
	case *image.YCbCr, *image.CMYK:
		r.mode = ModeRGB
		r.at = func(x, y int) Color {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			return RGB(c.R, c.G, c.B)
		}
	default:
		r.mode = ModeRGBA
		r.at = func(x, y int) Color {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			return RGBA(c.R, c.G, c.B, c.A)
		}
	}
	return r
}

func (r *imageRaster) Mode() Mode  { return r.mode }
func (r *imageRaster) Width() int  { return r.size.X }
func (r *imageRaster) Height() int { return r.size.Y }

func (r *imageRaster) PixelAt(x, y int) Color {
	return r.at(r.min.X+x, r.min.Y+y)
}

// AsImage exposes a Raster as an image.Image anchored at (0, 0). Rasters
// built by FromImage give back their source image, shifted when its bounds
// do not start at the origin.
func AsImage(r Raster) image.Image {
	if ir, ok := r.(*imageRaster); ok {
		if ir.min == (image.Point{}) {
			return ir.img
		}
		return shiftedImage{ir}
	}
	return rasterImage{r}
}

type shiftedImage struct {
	r *imageRaster
}

func (i shiftedImage) ColorModel() color.Model { return i.r.img.ColorModel() }

func (i shiftedImage) Bounds() image.Rectangle {
	return image.Rectangle{Max: i.r.size}
}

func (i shiftedImage) At(x, y int) color.Color {
	return i.r.img.At(i.r.min.X+x, i.r.min.Y+y)
}

type rasterImage struct {
	r Raster
}

func (i rasterImage) ColorModel() color.Model { return color.NRGBAModel }

func (i rasterImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, i.r.Width(), i.r.Height())
}

func (i rasterImage) At(x, y int) color.Color {
	if !image.Pt(x, y).In(i.Bounds()) {
		return color.NRGBA{}
	}
	return i.r.PixelAt(x, y).NRGBA()
}
