package sprite

import "testing"

// sheetFromRows builds a gray raster where '#' is foreground (255) and any
// other rune is background (0).
func sheetFromRows(rows ...string) *Buffer {
	width := 0
	if len(rows) > 0 {
		width = len(rows[0])
	}
	b := NewBuffer(ModeGray, width, len(rows))
	for y, row := range rows {
		for x, ch := range row {
			if ch == '#' {
				b.Set(x, y, Value(255))
			}
		}
	}
	return b
}

func mustSheet(tb testing.TB, r Raster, opts Options) *Sheet {
	tb.Helper()
	s, err := NewSheet(r, opts)
	if err != nil {
		tb.Fatalf("NewSheet: %v", err)
	}
	return s
}
