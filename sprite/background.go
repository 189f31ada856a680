package sprite

import (
	"image/color"
	"math"

	"spritecut/okcolor"

	"github.com/cenkalti/dominantcolor"
)

// BackgroundDetector picks the background color of a raster.
type BackgroundDetector func(Raster) Color

func histogram(r Raster) map[Color]int {
	freq := make(map[Color]int)
	for y := range r.Height() {
		for x := range r.Width() {
			freq[r.PixelAt(x, y)]++
		}
	}
	return freq
}

// MostCommonColor returns the most frequent color of r. Equally frequent
// colors are resolved to the smallest one by CompareColors. An empty raster
// yields the zero Color.
func MostCommonColor(r Raster) Color {
	var best Color
	bestCount := 0
	for c, n := range histogram(r) {
		if n > bestCount || (n == bestCount && CompareColors(c, best) < 0) {
			best, bestCount = c, n
		}
	}
	return best
}

// DominantColor estimates the background of noisy multi-channel rasters:
// the dominant color cluster is found by k-means, then snapped to the
// closest color really present in r, in OkLab space. More frequent colors
// win distance ties. Single-value rasters use MostCommonColor.
func DominantColor(r Raster) Color {
	if r.Mode().Channels() == 1 || r.Width() == 0 || r.Height() == 0 {
		return MostCommonColor(r)
	}

	target := okcolor.LabModel.Convert(dominantcolor.Find(AsImage(r))).(okcolor.Lab)

	var best Color
	bestDist, bestCount := math.Inf(1), 0
	for c, n := range histogram(r) {
		d := okcolor.Distance(target, okcolor.LabModel.Convert(opaque(c.NRGBA())).(okcolor.Lab))
		switch {
		case d < bestDist:
		case d == bestDist && n > bestCount:
		case d == bestDist && n == bestCount && CompareColors(c, best) < 0:
		default:
			continue
		}
		best, bestDist, bestCount = c, d, n
	}
	return best
}

// Distances are measured between opaque colors.
func opaque(c color.NRGBA) color.NRGBA {
	c.A = 0xFF
	return c
}
