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
	"strings"

	"github.com/rs/zerolog"

	"github.com/Pavel7004/goLinkerMap/pkg/domain"
)

// sectionHeader matches the first line of a section block, eg.
//
//	".mmu_table      0x2fff8000     0x8000"
//	".fast           0x2ffc0380     0x6ac0 load address 0xc0000780"
//
// Anything after the size is ignored.
var sectionHeader = regexp.MustCompile(`^([\.\w]+)\s+(0x\w+)\s+(0x\w+).*$`)

// ParseSectionHeader reads name, address and size from a section header
// line. ok is false if the line isn't a section header.
func ParseSectionHeader(line string) (name string, address uint64, size uint64, ok bool) {
	matches := sectionHeader.FindAllStringSubmatch(line, -1)
	if len(matches) != 1 {
		return "", 0, 0, false
	}
	m := matches[0]

	address, err := parseHex(m[2])
	if err != nil {
		return "", 0, 0, false
	}

	size, err = parseHex(m[3])
	if err != nil {
		return "", 0, 0, false
	}

	return m[1], address, size, true
}

// AssembleSection turns a section block into a Section. The placements are
// reconciled with RemoveReusedPlacements. ok is false if the block doesn't
// start with a section header.
func AssembleSection(block string) (domain.Section, bool) {
	sec, _, ok := assembleSection(block, zerolog.Nop())
	return sec, ok
}

// assembleSection also returns the number of subsection blocks that look like
// they carry data but produced no placement.
func assembleSection(block string, log zerolog.Logger) (domain.Section, int, bool) {
	header, body, _ := strings.Cut(block, "\n")

	name, address, size, ok := ParseSectionHeader(header)
	if !ok {
		return domain.Section{}, 0, false
	}

	unmatched := 0
	placements := make([]domain.Placement, 0, 8)
	for _, sub := range SplitSubsections(body) {
		p := parsePlacements(sub, log)
		if len(p) == 0 && strings.Contains(sub, "0x") {
			log.Debug().Str("section", name).Str("block", sub).Msg("no placement found in subsection")
			unmatched++
		}
		placements = append(placements, p...)
	}

	return domain.Section{
		Name:         name,
		Address:      address,
		DeclaredSize: size,
		Placements:   RemoveReusedPlacements(placements),
	}, unmatched, true
}
