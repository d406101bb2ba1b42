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
	"regexp"

	"github.com/Pavel7004/goLinkerMap/pkg/domain"
)

// ListSections returns name, address and declared size of every section not
// named in excluding.
func (m *Model) ListSections(excluding map[string]bool) []domain.SectionSummary {
	list := make([]domain.SectionSummary, 0, len(m.order))
	for _, name := range m.order {
		if excluding[name] {
			continue
		}
		sec := m.sections[name]
		list = append(list, domain.SectionSummary{
			Name:    sec.Name,
			Address: sec.Address,
			Size:    sec.DeclaredSize,
		})
	}
	return list
}

func TotalSectionSize(sections []domain.SectionSummary) uint64 {
	var total uint64
	for _, s := range sections {
		total += s.Size
	}
	return total
}

func TotalPlacementSize(placements []domain.Placement) uint64 {
	var total uint64
	for _, p := range placements {
		total += p.Size
	}
	return total
}

// FindPlacementsByFile returns every placement whose source file matches re,
// across all sections.
func (m *Model) FindPlacementsByFile(re *regexp.Regexp) []domain.PlacementRef {
	var found []domain.PlacementRef
	for _, name := range m.order {
		for _, p := range m.sections[name].Placements {
			if re.MatchString(p.SourceFile) {
				found = append(found, domain.PlacementRef{Section: name, Placement: p})
			}
		}
	}
	return found
}

// ClassInfoReport describes every placement of every section. Placements
// without a symbol name are flagged MISSING_CLASSINFO. Placements whose
// continuation line names a different address are flagged
// ALTERNATE_CLASSINFO, unless the symbol is missing as well.
func (m *Model) ClassInfoReport() []domain.ClassInfo {
	var report []domain.ClassInfo
	for _, name := range m.order {
		for _, p := range m.sections[name].Placements {
			info := domain.ClassInfo{
				SymbolName: p.SymbolName,
				Address:    p.Address,
				Size:       p.Size,
				Section:    name,
				SourceFile: p.SourceFile,
				ObjectName: p.ObjectName,
			}

			if p.HasSecondaryAddress && p.SecondaryAddress != p.Address {
				info.Status = domain.StatusAlternateClassInfo
			}
			if !p.HasSymbol() {
				info.Status = domain.StatusMissingClassInfo
			}

			// synthetic entries carry this in place of a file name
			if info.SourceFile == "00" {
				info.SourceFile = ""
			}

			report = append(report, info)
		}
	}
	return report
}
