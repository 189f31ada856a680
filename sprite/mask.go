package sprite

import (
	"fmt"
	"image"
	"image/color"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
)

// Alpha range of mask colors on RGBA masks, high enough to stay visible.
const (
	MinMaskAlpha = 200
	MaxMaskAlpha = 255
)

// Attempts per color before MinDistance is given up on.
const maxSeparationAttempts = 256

type MaskOptions struct {
	// Fill is the color of background pixels. A four channel fill produces
	// an RGBA mask, a three channel one an RGB mask. Defaults to white.
	Fill Color
	// Rand drives color generation. Defaults to a randomly seeded source.
	Rand *rand.Rand
	// MinDistance is the smallest CIEDE2000 distance wanted between any two
	// sprite colors. Zero only requires colors to differ.
	MinDistance float64
}

// Mask is a debug rendering of a sheet: every sprite painted in its own
// color and outlined by its bounding box.
type Mask struct {
	Image  *image.NRGBA
	Colors map[int]color.NRGBA
}

// RenderMask draws the sprites of the sheet, scanning the raster first if
// needed. Colors are unique within one rendering but differ between calls.
func (s *Sheet) RenderMask(opts MaskOptions) (*Mask, error) {
	fill := opts.Fill
	if fill.IsZero() {
		fill = RGB(0xFF, 0xFF, 0xFF)
	}
	if fill.n != 3 && fill.n != 4 {
		return nil, fmt.Errorf("%w: mask fill %s needs 3 or 4 channels", ErrIncompatibleBackgroundColor, fill)
	}

	rnd := opts.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	sprites, labels := s.FindSprites()
	gen := maskColors{
		rnd:         rnd,
		alpha:       fill.n == 4,
		minDistance: opts.MinDistance,
		used:        map[color.NRGBA]struct{}{fill.NRGBA(): {}},
	}
	colors := make(map[int]color.NRGBA, len(sprites))
	for _, sp := range s.Sprites() {
		colors[sp.label] = gen.next()
	}

	bounds := image.Rect(0, 0, s.raster.Width(), s.raster.Height())
	img := image.NewNRGBA(bounds)
	draw.Draw(img, bounds, image.NewUniform(fill.NRGBA()), image.Point{}, draw.Src)

	for y, row := range labels {
		for x, label := range row {
			if label != 0 {
				img.SetNRGBA(x, y, colors[label])
			}
		}
	}

	// label order: the larger label wins where outlines overlap
	for _, sp := range s.Sprites() {
		outline(img, sp.topLeft, sp.bottomRight, colors[sp.label])
	}

	s.state = StateRendered
	s.logger.Debug("rendered mask", "sprites", len(sprites), "fill", fill)
	return &Mask{Image: img, Colors: colors}, nil
}

// outline draws the unfilled rectangle with inclusive corners a and b.
func outline(img *image.NRGBA, a, b image.Point, c color.NRGBA) {
	for x := a.X; x <= b.X; x++ {
		img.SetNRGBA(x, a.Y, c)
		img.SetNRGBA(x, b.Y, c)
	}
	for y := a.Y; y <= b.Y; y++ {
		img.SetNRGBA(a.X, y, c)
		img.SetNRGBA(b.X, y, c)
	}
}

// maskColors rejection-samples random colors, never handing out one that is
// already used.
type maskColors struct {
	rnd         *rand.Rand
	alpha       bool
	minDistance float64
	used        map[color.NRGBA]struct{}
	picked      []colorful.Color
}

func (g *maskColors) next() color.NRGBA {
	for attempt := 0; ; attempt++ {
		c := color.NRGBA{
			R: uint8(g.rnd.IntN(256)),
			G: uint8(g.rnd.IntN(256)),
			B: uint8(g.rnd.IntN(256)),
			A: 0xFF,
		}
		if g.alpha {
			c.A = uint8(MinMaskAlpha + g.rnd.IntN(MaxMaskAlpha-MinMaskAlpha+1))
		}
		if _, ok := g.used[c]; ok {
			continue
		}

		cc := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
		if g.minDistance > 0 && attempt < maxSeparationAttempts && g.tooClose(cc) {
			continue
		}

		g.used[c] = struct{}{}
		g.picked = append(g.picked, cc)
		return c
	}
}

func (g *maskColors) tooClose(c colorful.Color) bool {
	for _, p := range g.picked {
		if c.DistanceCIEDE2000(p) < g.minDistance {
			return true
		}
	}
	return false
}
