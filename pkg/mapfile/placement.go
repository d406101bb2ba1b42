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
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Pavel7004/goLinkerMap/pkg/domain"
)

// placementEntry matches entries like
//
//	" COMMON         0xc056fd60       0x18 libOPEScored.a(IP_ARP.c.obj)"
//
// optionally followed by a continuation line naming the symbol placed there
//
//	"                0xc056fd60                IP_ARP_Table"
//
// Note the single leading space. A size at the very end of the block needs no
// trailing whitespace. The submatches are:
//
//	1 - object name, may be blank or span lines when the name is long
//	2 - address
//	3 - size
//	4 - (optional) file the object was taken from
//	5 - (optional) address on the continuation line
//	6 - (optional) symbol or class name
var placementEntry = regexp.MustCompile(`(?m)^\s([\*\.\w\s]+)\s+(0x\w+)[^\S\r\n]+(0x\w+)(?:\s|$)(.+)?\s*\n?\s*(0x\w+)?\s*(.+)?`)

const (
	placementName = iota + 1
	placementAddress
	placementSize
	placementFile
	placementSecondaryAddress
	placementSymbol
)

// ParsePlacements returns every placement entry found in a subsection block,
// in the order they appear. A block without entries, eg. a bare "*(.text)"
// rule, gives an empty result.
func ParsePlacements(block string) []domain.Placement {
	return parsePlacements(block, zerolog.Nop())
}

// ExtractPlacements runs ParsePlacements over every block and concatenates
// the results.
func ExtractPlacements(blocks []string) []domain.Placement {
	return extractPlacements(blocks, zerolog.Nop())
}

func extractPlacements(blocks []string, log zerolog.Logger) []domain.Placement {
	placements := make([]domain.Placement, 0, len(blocks))
	for _, b := range blocks {
		placements = append(placements, parsePlacements(b, log)...)
	}
	return placements
}

func parsePlacements(block string, log zerolog.Logger) []domain.Placement {
	matches := placementEntry.FindAllStringSubmatch(block, -1)
	placements := make([]domain.Placement, 0, len(matches))

	for _, m := range matches {
		address, err := parseHex(m[placementAddress])
		if err != nil {
			log.Debug().Err(err).Str("entry", m[0]).Msg("failed to parse placement address")
			continue
		}

		size, err := parseHex(m[placementSize])
		if err != nil {
			log.Debug().Err(err).Str("entry", m[0]).Msg("failed to parse placement size")
			continue
		}

		p := domain.Placement{
			ObjectName: strings.TrimSpace(m[placementName]),
			Address:    address,
			Size:       size,
			SourceFile: strings.TrimSpace(m[placementFile]),
			SymbolName: strings.TrimSpace(m[placementSymbol]),
		}

		if p.ObjectName == "" {
			p.ObjectName = domain.EmptyName
		}

		if s := m[placementSecondaryAddress]; s != "" {
			if p.SecondaryAddress, err = parseHex(s); err == nil {
				p.HasSecondaryAddress = true
			} else {
				log.Debug().Err(err).Str("entry", m[0]).Msg("ignoring unreadable secondary address")
			}
		}

		placements = append(placements, p)
	}

	return placements
}

// parseHex reads a 0x prefixed hexadecimal number.
func parseHex(s string) (uint64, error) {
	return strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 64)
}
