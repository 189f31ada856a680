package sprite

import (
	"fmt"
	"image"
)

// Sprite is a connected foreground region of a sheet, described by its
// bounding box and the number of pixels it covers.
type Sprite struct {
	label       int
	topLeft     image.Point
	bottomRight image.Point
	width       int
	height      int
	surface     int
	pixels      int
	density     float64
	cx, cy      float64
}

// NewSprite builds a sprite from its label, inclusive bounding box corners
// and pixel count.
func NewSprite(label, x1, y1, x2, y2, pixelCount int) (*Sprite, error) {
	for _, v := range [...]int{label, x1, y1, x2, y2, pixelCount} {
		if v < 0 {
			return nil, fmt.Errorf("%w: negative value %d", ErrInvalidGeometry, v)
		}
	}
	if x2 < x1 || y2 < y1 {
		return nil, fmt.Errorf("%w: (%d,%d)-(%d,%d)", ErrInvalidBoundingBox, x1, y1, x2, y2)
	}

	w, h := x2-x1+1, y2-y1+1
	surface := w * h
	if pixelCount == 0 || pixelCount > surface {
		return nil, fmt.Errorf("%w: %d pixels in a %dx%d box", ErrInvalidGeometry, pixelCount, w, h)
	}

	return &Sprite{
		label:       label,
		topLeft:     image.Pt(x1, y1),
		bottomRight: image.Pt(x2, y2),
		width:       w,
		height:      h,
		surface:     surface,
		pixels:      pixelCount,
		density:     float64(pixelCount) / float64(surface),
		cx:          float64(x1+x2) / 2,
		cy:          float64(y1+y2) / 2,
	}, nil
}

func (s *Sprite) Label() int { return s.label }

// TopLeft returns the inclusive top-left corner of the bounding box.
func (s *Sprite) TopLeft() image.Point { return s.topLeft }

// BottomRight returns the inclusive bottom-right corner of the bounding box.
func (s *Sprite) BottomRight() image.Point { return s.bottomRight }

func (s *Sprite) Width() int  { return s.width }
func (s *Sprite) Height() int { return s.height }

// Surface is the area of the bounding box.
func (s *Sprite) Surface() int { return s.surface }

// PixelCount is the number of pixels labeled with this sprite's label.
func (s *Sprite) PixelCount() int { return s.pixels }

// Density is PixelCount over Surface.
func (s *Sprite) Density() float64 { return s.density }

// Centroid returns the midpoint of the bounding box.
func (s *Sprite) Centroid() (float64, float64) { return s.cx, s.cy }

// Bounds returns the bounding box as an image.Rectangle, whose Max is
// exclusive.
func (s *Sprite) Bounds() image.Rectangle {
	return image.Rectangle{Min: s.topLeft, Max: s.bottomRight.Add(image.Pt(1, 1))}
}

func (s *Sprite) String() string {
	return fmt.Sprintf("sprite %d %v-%v (%d px, density %.3f)", s.label, s.topLeft, s.bottomRight, s.pixels, s.density)
}
