/*
Copyright © 2023 Kovalev Pavel kovalev5690@gmail.com

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/
package mapfile

import (
	"slices"

	"github.com/Pavel7004/goLinkerMap/pkg/domain"
)

// SizeMismatch records a section whose declared size differs from the sum of
// its placements. This is normal for sections with padding or jumps that the
// map file doesn't list as entries.
type SizeMismatch struct {
	Section        string
	DeclaredSize   uint64
	CalculatedSize uint64
}

// Model is the result of a single parse. Sections are kept in the order they
// first appear in the map file.
type Model struct {
	order    []string
	sections map[string]domain.Section

	// Discrepancies lists every section failing the size check.
	Discrepancies []SizeMismatch

	// SkippedBlocks counts section blocks without a readable header line.
	SkippedBlocks int

	// UnmatchedBlocks counts subsection blocks that mention an address but
	// produced no placement.
	UnmatchedBlocks int
}

func newModel() *Model {
	return &Model{
		order:    make([]string, 0, 32),
		sections: make(map[string]domain.Section),
	}
}

// put adds sec to the model. A section with the same name replaces the
// earlier one but keeps its position.
func (m *Model) put(sec domain.Section) {
	if _, ok := m.sections[sec.Name]; !ok {
		m.order = append(m.order, sec.Name)
	}
	m.sections[sec.Name] = sec
}

func (m *Model) Len() int {
	return len(m.order)
}

// Names returns the section names in model order.
func (m *Model) Names() []string {
	return slices.Clone(m.order)
}

// Section returns a copy of the named section.
func (m *Model) Section(name string) (domain.Section, bool) {
	sec, ok := m.sections[name]
	if !ok {
		return domain.Section{}, false
	}
	sec.Placements = slices.Clone(sec.Placements)
	return sec, true
}

// Sections returns copies of all sections in model order.
func (m *Model) Sections() []domain.Section {
	secs := make([]domain.Section, 0, len(m.order))
	for _, name := range m.order {
		sec, _ := m.Section(name)
		secs = append(secs, sec)
	}
	return secs
}
