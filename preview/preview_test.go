package preview

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"
)

func TestFit(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		maxSide int
		wantW   int
		wantH   int
	}{
		{"wide", 512, 256, 128, 128, 64},
		{"tall", 100, 400, 200, 50, 200},
		{"small", 20, 10, 128, 20, 10},
		{"thin", 1000, 1, 100, 100, 1},
		{"unbounded", 300, 300, 0, 300, 300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Fit(image.NewNRGBA(image.Rect(0, 0, tt.w, tt.h)), tt.maxSide).Bounds()
			if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("got %dx%d; want %dx%d", b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestFitKeepsColors(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	red := color.NRGBA{R: 0xFF, A: 0xFF}
	for y := range 4 {
		for x := range 2 {
			img.SetNRGBA(x, y, red)
		}
	}
	got := Fit(img, 2).(*image.NRGBA)
	if got.NRGBAAt(0, 0) != red || got.NRGBAAt(1, 1) != (color.NRGBA{}) {
		t.Errorf("scaled pixels = %v, %v", got.NRGBAAt(0, 0), got.NRGBAAt(1, 1))
	}
}

func TestPrintBlocks(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(1, 0, color.NRGBA{R: 0xFF, A: 0xFF})

	var buf bytes.Buffer
	PrintBlocks(&buf, img)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines; want 2", len(lines))
	}
	if lines[1] != strings.Repeat(" ", 6) {
		t.Errorf("transparent row = %q; want blanks", lines[1])
	}
}
