package sprite

import (
	"fmt"
	"log/slog"
	"slices"
)

// State tracks how far a Sheet has been processed.
type State int

const (
	StateUninitialized State = iota
	StateScanned
	StateRendered
)

func (s State) String() string {
	switch s {
	case StateScanned:
		return "scanned"
	case StateRendered:
		return "rendered"
	default:
		return "uninitialized"
	}
}

type Options struct {
	// Background is the color of pixels that belong to no sprite. The zero
	// Color asks Detector to pick one.
	Background Color
	// Detector defaults to MostCommonColor.
	Detector BackgroundDetector
	Logger   *slog.Logger
}

// Sheet segments a raster into sprites. Results are computed once and
// cached for the lifetime of the Sheet; a different background needs a new
// Sheet. A Sheet is not safe for concurrent use.
type Sheet struct {
	raster     Raster
	background Color
	logger     *slog.Logger
	state      State

	sprites map[int]*Sprite
	labels  [][]int
}

// NewSheet validates the background color against the raster mode, or
// detects it when none is given.
func NewSheet(r Raster, opts Options) (*Sheet, error) {
	if r == nil {
		return nil, ErrNilRaster
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	bg := opts.Background
	if bg.IsZero() {
		detect := opts.Detector
		if detect == nil {
			detect = MostCommonColor
		}
		bg = detect(r)
		logger.Debug("detected background", "color", bg, "mode", r.Mode())
	} else {
		var err error
		if bg, err = conform(bg, r.Mode()); err != nil {
			return nil, err
		}
	}

	return &Sheet{
		raster:     r,
		background: bg,
		logger:     logger,
	}, nil
}

// conform checks that c can be compared with pixels of mode m. RGB colors
// are widened with an opaque alpha on RGBA rasters, opaque RGBA colors are
// narrowed on RGB rasters.
func conform(c Color, m Mode) (Color, error) {
	switch {
	case c.n == 1 && m.Channels() == 1:
		return c, nil
	case c.n == 3 && m == ModeRGB, c.n == 4 && m == ModeRGBA:
		return c, nil
	case c.n == 3 && m == ModeRGBA:
		return RGBA(uint8(c.v[0]), uint8(c.v[1]), uint8(c.v[2]), 0xFF), nil
	case c.n == 4 && m == ModeRGB && c.v[3] == 0xFF:
		return RGB(uint8(c.v[0]), uint8(c.v[1]), uint8(c.v[2])), nil
	}
	return Color{}, fmt.Errorf("%w: %s color for mode %s", ErrIncompatibleBackgroundColor, c, m)
}

func (s *Sheet) Background() Color { return s.background }

func (s *Sheet) State() State { return s.state }

func (s *Sheet) Raster() Raster { return s.raster }

// FindSprites returns the sprites keyed by label and the label grid, where
// every cell holds the label of the sprite covering that pixel or 0 for
// background. The first call scans the raster; later calls return the same
// cached values, which callers must not modify.
func (s *Sheet) FindSprites() (map[int]*Sprite, [][]int) {
	if s.state != StateUninitialized {
		return s.sprites, s.labels
	}

	height, width := s.raster.Height(), s.raster.Width()
	lm := NewLabelMap(height, width)
	for row := range height {
		for col := range width {
			if s.raster.PixelAt(col, row) == s.background {
				continue
			}
			lm.CheckNeighbor(row, col)
		}
	}

	counts := lm.Reduce()
	sprites := make(map[int]*Sprite, len(counts))
	for label, p := range lm.PolarPoints() {
		sp, err := NewSprite(label, p[Leftmost], p[Topmost], p[Rightmost], p[Bottommost], counts[label])
		if err != nil {
			// reduction only yields well-formed boxes
			panic(fmt.Sprintf("sprite %d: %v", label, err))
		}
		sprites[label] = sp
	}

	s.sprites, s.labels = sprites, lm.Grid()
	s.state = StateScanned
	s.logger.Debug("found sprites", "sprites", len(sprites), "provisional", lm.Latest(),
		"width", width, "height", height, "background", s.background)
	return s.sprites, s.labels
}

// Sprites returns the sprites ordered by label.
func (s *Sheet) Sprites() []*Sprite {
	sprites, _ := s.FindSprites()
	res := make([]*Sprite, 0, len(sprites))
	for _, sp := range sprites {
		res = append(res, sp)
	}
	slices.SortFunc(res, func(a, b *Sprite) int { return a.label - b.label })
	return res
}
