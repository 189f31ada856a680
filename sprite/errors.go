package sprite

import "errors"

var (
	// ErrInvalidGeometry is returned when a sprite is built from a negative
	// coordinate, label or pixel count, or from more pixels than its
	// bounding box can hold.
	ErrInvalidGeometry = errors.New("invalid sprite geometry")

	// ErrInvalidBoundingBox is returned when the bottom-right corner of a
	// sprite lies before its top-left corner on either axis.
	ErrInvalidBoundingBox = errors.New("invalid sprite bounding box")

	// ErrIncompatibleBackgroundColor is returned when a color does not fit
	// the color mode it is used with.
	ErrIncompatibleBackgroundColor = errors.New("background color not compatible with raster mode")

	ErrNilRaster = errors.New("nil raster")
)
