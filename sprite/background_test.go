package sprite

import (
	"image"
	"image/color"
	"testing"
)

func TestMostCommonColor(t *testing.T) {
	b := NewBuffer(ModeRGB, 3, 2)
	b.Fill(image.Rect(0, 0, 3, 2), RGB(10, 20, 30))
	b.Set(0, 0, RGB(1, 1, 1))

	if got, want := MostCommonColor(b), RGB(10, 20, 30); got != want {
		t.Errorf("MostCommonColor() = %v; want %v", got, want)
	}
}

func TestMostCommonColorTieBreak(t *testing.T) {
	b := NewBuffer(ModeRGB, 2, 2)
	b.Set(0, 0, RGB(9, 0, 0))
	b.Set(1, 0, RGB(9, 0, 0))
	b.Set(0, 1, RGB(2, 5, 0))
	b.Set(1, 1, RGB(2, 5, 0))

	// equal counts resolve to the lexicographically smallest color, no
	// matter how the histogram iterates
	for range 20 {
		if got, want := MostCommonColor(b), RGB(2, 5, 0); got != want {
			t.Fatalf("MostCommonColor() = %v; want %v", got, want)
		}
	}
}

func TestMostCommonColorEmpty(t *testing.T) {
	if got := MostCommonColor(NewBuffer(ModeGray, 0, 5)); !got.IsZero() {
		t.Errorf("MostCommonColor() = %v; want zero color", got)
	}
}

func TestDominantColorUniform(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	c := color.NRGBA{R: 0x20, G: 0x80, B: 0x40, A: 0xFF}
	for y := range 8 {
		for x := range 8 {
			img.SetNRGBA(x, y, c)
		}
	}

	if got, want := DominantColor(FromImage(img)), RGBA(0x20, 0x80, 0x40, 0xFF); got != want {
		t.Errorf("DominantColor() = %v; want %v", got, want)
	}
}

func TestDominantColorSnapsToRasterColor(t *testing.T) {
	b := NewBuffer(ModeRGB, 10, 10)
	b.Fill(image.Rect(0, 0, 10, 10), RGB(200, 40, 40))
	b.Fill(image.Rect(0, 0, 10, 3), RGB(202, 38, 41))
	b.Fill(image.Rect(7, 7, 9, 9), RGB(10, 10, 200))

	got := DominantColor(b)
	present := map[Color]bool{
		RGB(200, 40, 40): true,
		RGB(202, 38, 41): true,
		RGB(10, 10, 200): true,
	}
	if !present[got] {
		t.Errorf("DominantColor() = %v; want one of the raster colors", got)
	}
}

func TestDominantColorSingleChannel(t *testing.T) {
	b := sheetFromRows(
		"#..",
		"...",
	)
	if got := DominantColor(b); got != Value(0) {
		t.Errorf("DominantColor() = %v; want 0", got)
	}
}

func TestCompareColors(t *testing.T) {
	tests := []struct {
		a, b Color
		want int
	}{
		{Value(1), Value(2), -1},
		{Value(2), Value(2), 0},
		{Value(200), RGB(0, 0, 0), -1},
		{RGB(1, 2, 3), RGB(1, 2, 2), 1},
		{RGB(1, 2, 3), RGBA(0, 0, 0, 0), -1},
		{Color{}, Value(0), -1},
	}
	for _, tt := range tests {
		if got := CompareColors(tt.a, tt.b); got != tt.want {
			t.Errorf("CompareColors(%v, %v) = %d; want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
