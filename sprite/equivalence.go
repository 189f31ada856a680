package sprite

// EquivalenceTable records which provisional labels belong to the same
// connected region. Every label points either to itself (a root) or to a
// strictly smaller label, so chains always terminate.
type EquivalenceTable struct {
	parent map[int]int
}

func NewEquivalenceTable() *EquivalenceTable {
	return &EquivalenceTable{parent: make(map[int]int)}
}

// Add registers label as its own root. Adding an existing label is a no-op.
func (t *EquivalenceTable) Add(label int) {
	if _, ok := t.parent[label]; !ok {
		t.parent[label] = label
	}
}

// Union declares a and b connected. The larger of the two roots is
// repointed to the smaller one.
func (t *EquivalenceTable) Union(a, b int) {
	ra, rb := t.Find(a), t.Find(b)
	switch {
	case ra > rb:
		t.parent[ra] = rb
	case rb > ra:
		t.parent[rb] = ra
	}
}

// Find returns the canonical (smallest) label of the region label belongs
// to, compressing the path it walked.
func (t *EquivalenceTable) Find(label int) int {
	root := label
	for {
		next, ok := t.parent[root]
		if !ok || next == root {
			break
		}
		root = next
	}

	for label != root {
		next := t.parent[label]
		t.parent[label] = root
		label = next
	}
	return root
}

// Len returns the number of labels ever registered.
func (t *EquivalenceTable) Len() int {
	return len(t.parent)
}
