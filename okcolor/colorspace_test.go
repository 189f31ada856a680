package okcolor

import (
	"image/color"
	"math"
	"testing"
)

func lab(c color.Color) Lab {
	return LabModel.Convert(c).(Lab)
}

func TestLabExtremes(t *testing.T) {
	white := lab(color.White)
	if math.Abs(white.L-1) > 1e-3 || math.Abs(white.A) > 1e-3 || math.Abs(white.B) > 1e-3 {
		t.Errorf("white = %+v; want L 1, a 0, b 0", white)
	}
	black := lab(color.Black)
	if black.L > 1e-9 {
		t.Errorf("black L = %g; want 0", black.L)
	}
}

func TestLabRoundTrip(t *testing.T) {
	for _, c := range []color.NRGBA{
		{R: 0xFF, A: 0xFF},
		{G: 0x80, B: 0x40, A: 0xFF},
		{R: 0x12, G: 0x34, B: 0x56, A: 0x80},
	} {
		got := color.NRGBAModel.Convert(lab(c)).(color.NRGBA)
		if d := absDiff(got.R, c.R) + absDiff(got.G, c.G) + absDiff(got.B, c.B); d > 3 || got.A != c.A {
			t.Errorf("round trip of %v = %v", c, got)
		}
	}
}

func TestDistance(t *testing.T) {
	red := lab(color.NRGBA{R: 0xFF, A: 0xFF})
	if d := Distance(red, red); d != 0 {
		t.Errorf("distance to itself = %g", d)
	}

	orange := lab(color.NRGBA{R: 0xFF, G: 0x80, A: 0xFF})
	blue := lab(color.NRGBA{B: 0xFF, A: 0xFF})
	if Distance(red, orange) >= Distance(red, blue) {
		t.Error("red is not closer to orange than to blue")
	}
	if Distance(red, blue) != Distance(blue, red) {
		t.Error("distance is not symmetric")
	}

	transparent := red
	transparent.Alpha = 0
	if d := Distance(red, transparent); math.Abs(d-1) > 1e-9 {
		t.Errorf("alpha distance = %g; want 1", d)
	}
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
