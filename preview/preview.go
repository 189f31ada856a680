// Package preview prints sprite masks on the terminal. Graphics protocols
// are used when the terminal supports one, colored block art otherwise.
package preview

import (
	"fmt"
	"image"
	"io"

	"github.com/BourgeoisBear/rasterm"
	"github.com/andybons/gogif"
	"github.com/gookit/color"
	"golang.org/x/image/draw"
)

// Protocol names the way an image was printed.
type Protocol string

const (
	Kitty  Protocol = "kitty"
	ITerm  Protocol = "iterm"
	Sixel  Protocol = "sixel"
	Blocks Protocol = "blocks"
)

// sixel output is limited to a small palette
const sixelColors = 64

// Detect picks the best protocol the current terminal understands.
func Detect() Protocol {
	switch {
	case rasterm.IsTermKitty():
		return Kitty
	case rasterm.IsTermItermWez():
		return ITerm
	}
	if capable, err := rasterm.IsSixelCapable(); capable && err == nil {
		return Sixel
	}
	return Blocks
}

// Print writes img to w using protocol p.
func Print(w io.Writer, img image.Image, p Protocol) {
	switch p {
	case Kitty:
		rasterm.Settings{}.KittyWriteImage(w, img)
	case ITerm:
		rasterm.Settings{}.ItermWriteImage(w, img)
	case Sixel:
		paletted := image.NewPaletted(img.Bounds(), nil)
		quantizer := gogif.MedianCutQuantizer{NumColor: sixelColors}
		quantizer.Quantize(paletted, img.Bounds(), img, img.Bounds().Min)
		rasterm.Settings{}.SixelWriteImage(w, paletted)
	default:
		PrintBlocks(w, img)
		return
	}
	fmt.Fprintln(w)
}

// PrintBlocks draws img with two colored spaces per pixel. Transparent
// pixels are left blank.
func PrintBlocks(w io.Writer, img image.Image) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			if a == 0 {
				fmt.Fprint(w, "  ")
				continue
			}
			fmt.Fprint(w, color.RGB(uint8(r>>8), uint8(g>>8), uint8(bl>>8), true).Sprint("  "))
		}
		fmt.Fprintln(w)
	}
}

// Fit scales img with nearest neighbor sampling so that its larger side
// is maxSide pixels. Images already within maxSide are returned as is.
func Fit(img image.Image, maxSide int) image.Image {
	b := img.Bounds()
	side := max(b.Dx(), b.Dy())
	if side <= maxSide || maxSide <= 0 {
		return img
	}

	dr := image.Rect(0, 0, max(1, b.Dx()*maxSide/side), max(1, b.Dy()*maxSide/side))
	dst := image.NewNRGBA(dr)
	draw.NearestNeighbor.Scale(dst, dr, img, b, draw.Src, nil)
	return dst
}
