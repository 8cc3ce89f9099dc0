package tex2gfm

import "regexp"

// labelSources matches every construct that can introduce a label name:
// \label{...} declarations, data-reference="..." attributes on Pandoc
// anchors, and raw \ref{...}/\eqref{...} commands that survived Pandoc.
// Exactly one capture group is non-empty per match.
var labelSources = regexp.MustCompile(`\\label\{([^}]+)\}|data-reference="([^"]+)"|\\(?:eq)?ref\{([^}]+)\}`)

// LabelMap assigns sequential numbers to equation labels in order of
// first textual appearance, starting at 1. A label's number is fixed at
// first occurrence and reused for every later mention of the same name.
type LabelMap struct {
	numbers map[string]int
	names   []string
}

func newLabelMap() *LabelMap {
	return &LabelMap{numbers: make(map[string]int)}
}

// assign returns the number for name, allocating the next one if unseen.
func (m *LabelMap) assign(name string) int {
	if n, ok := m.numbers[name]; ok {
		return n
	}
	n := len(m.names) + 1
	m.numbers[name] = n
	m.names = append(m.names, name)
	return n
}

// Number returns the number assigned to name, and whether name is known.
func (m *LabelMap) Number(name string) (int, bool) {
	n, ok := m.numbers[name]
	return n, ok
}

// Len returns the count of distinct labels.
func (m *LabelMap) Len() int {
	return len(m.names)
}

// Names returns the label names in assignment order.
func (m *LabelMap) Names() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// collectLabels scans content once, left to right, and numbers every
// distinct label name at its first occurrence. Order is purely textual:
// a reference appearing before its declaration claims the number first.
// Unrecognized text is skipped, never an error.
func collectLabels(content string) *LabelMap {
	m := newLabelMap()
	for _, match := range labelSources.FindAllStringSubmatch(content, -1) {
		for _, name := range match[1:] {
			if name != "" {
				m.assign(name)
				break
			}
		}
	}
	return m
}
