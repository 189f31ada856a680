package sprite

import (
	"testing"

	"spritecut/ttesting"
)

func scan(b *Buffer) *LabelMap {
	lm := NewLabelMap(b.Height(), b.Width())
	for row := range b.Height() {
		for col := range b.Width() {
			if b.PixelAt(col, row) != Value(0) {
				lm.CheckNeighbor(row, col)
			}
		}
	}
	return lm
}

func TestLabelMapProvisionalLabels(t *testing.T) {
	lm := scan(sheetFromRows(
		"#.#",
		"#.#",
		"###",
	))

	grid := lm.Grid()
	ttesting.AssertEqualInt(t, "left column", grid[0][0], 1)
	ttesting.AssertEqualInt(t, "right column", grid[0][2], 2)
	ttesting.AssertEqualInt(t, "right column below", grid[1][2], 2)
	ttesting.AssertEqualInt(t, "latest", lm.Latest(), 2)
}

func TestLabelMapReduce(t *testing.T) {
	lm := scan(sheetFromRows(
		"#.#.",
		"#.#.",
		"###.",
		"...#",
	))

	counts := lm.Reduce()
	if len(counts) != 1 {
		t.Fatalf("got %d labels after reduce: %v; want 1", len(counts), counts)
	}
	ttesting.AssertEqualInt(t, "count", counts[1], 8)

	for y, row := range lm.Grid() {
		for x, label := range row {
			if label != 0 && label != 1 {
				t.Errorf("grid[%d][%d] = %d; want 1", y, x, label)
			}
		}
	}

	p, ok := lm.PolarPoints()[1]
	if !ok {
		t.Fatalf("no polar points for label 1")
	}
	if p != [4]int{0, 0, 3, 3} {
		t.Errorf("polar points = %v; want [0 0 3 3]", p)
	}
}

func TestLabelMapSeparateRegions(t *testing.T) {
	lm := scan(sheetFromRows(
		"##..#",
		"....#",
		"#....",
	))

	counts := lm.Reduce()
	want := map[int]int{1: 2, 2: 2, 3: 1}
	if len(counts) != len(want) {
		t.Fatalf("counts = %v; want %v", counts, want)
	}
	for l, n := range want {
		ttesting.AssertEqualInt(t, "count", counts[l], n)
	}

	pp := lm.PolarPoints()
	if pp[2] != [4]int{4, 0, 4, 1} {
		t.Errorf("polar points of 2 = %v; want [4 0 4 1]", pp[2])
	}
}

func TestLabelMapEmpty(t *testing.T) {
	lm := NewLabelMap(0, 0)
	if n := len(lm.Reduce()); n != 0 {
		t.Errorf("got %d labels; want 0", n)
	}

	lm = NewLabelMap(-1, 3)
	if n := len(lm.Grid()); n != 0 {
		t.Errorf("got %d rows for negative height; want 0", n)
	}
}
