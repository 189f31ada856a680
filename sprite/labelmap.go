package sprite

// Offsets of the neighbors already visited by a top-to-bottom,
// left-to-right scan: north-west, north, north-east and west. Together with
// the scan order they give 8-connectivity.
var visitedNeighbors = [4][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}}

// Indexes into a polar points quadruple.
const (
	Leftmost = iota
	Topmost
	Rightmost
	Bottommost
)

// LabelMap is a height×width grid of labels. Zero means background.
type LabelMap struct {
	height, width int
	grid          [][]int
	latest        int
	eq            *EquivalenceTable
	polar         map[int]*[4]int
}

func NewLabelMap(height, width int) *LabelMap {
	height, width = max(height, 0), max(width, 0)

	// one backing array keeps rows contiguous
	cells := make([]int, height*width)
	grid := make([][]int, height)
	for row := range grid {
		grid[row] = cells[row*width : (row+1)*width : (row+1)*width]
	}

	return &LabelMap{
		height: height,
		width:  width,
		grid:   grid,
		eq:     NewEquivalenceTable(),
		polar:  make(map[int]*[4]int),
	}
}

// CheckNeighbor labels the foreground pixel at (row, col). It must be
// called in raster order. The pixel takes the label of its first labeled
// visited neighbor; any other differing neighbor label is recorded as
// equivalent. Without labeled neighbors a fresh label is allocated.
func (m *LabelMap) CheckNeighbor(row, col int) {
	assigned := 0
	for _, off := range visitedNeighbors {
		r, c := row+off[0], col+off[1]
		if r < 0 || c < 0 || r >= m.height || c >= m.width {
			continue
		}

		nearby := m.grid[r][c]
		switch {
		case nearby == 0:
		case assigned == 0:
			assigned = nearby
		case nearby != assigned:
			m.eq.Union(nearby, assigned)
		}
	}

	if assigned == 0 {
		m.latest++
		assigned = m.latest
		m.eq.Add(assigned)
	}

	m.grid[row][col] = assigned
}

// Reduce replaces every provisional label with its canonical label and
// returns the number of pixels carrying each canonical label. Polar points
// are collected on the way and available from PolarPoints.
func (m *LabelMap) Reduce() map[int]int {
	counts := make(map[int]int)
	for row := range m.grid {
		for col, label := range m.grid[row] {
			if label == 0 {
				continue
			}

			label = m.eq.Find(label)
			m.grid[row][col] = label
			counts[label]++
			m.expand(label, row, col)
		}
	}
	return counts
}

func (m *LabelMap) expand(label, row, col int) {
	p, ok := m.polar[label]
	if !ok {
		m.polar[label] = &[4]int{col, row, col, row}
		return
	}

	p[Leftmost] = min(p[Leftmost], col)
	p[Rightmost] = max(p[Rightmost], col)
	p[Topmost] = min(p[Topmost], row)
	p[Bottommost] = max(p[Bottommost], row)
}

// PolarPoints returns the [left, top, right, bottom] extremes of every
// canonical label. Only meaningful after Reduce.
func (m *LabelMap) PolarPoints() map[int][4]int {
	res := make(map[int][4]int, len(m.polar))
	for label, p := range m.polar {
		res[label] = *p
	}
	return res
}

// Grid returns the label grid. It aliases the map's storage.
func (m *LabelMap) Grid() [][]int {
	return m.grid
}

// Latest returns the last provisional label allocated.
func (m *LabelMap) Latest() int {
	return m.latest
}
