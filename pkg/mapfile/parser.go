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
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type Parser struct {
	text string
	log  zerolog.Logger
}

type Option func(*Parser)

// WithLogger sets the logger used for diagnostics. Parsers log nothing by
// default.
func WithLogger(log zerolog.Logger) Option {
	return func(p *Parser) {
		p.log = log
	}
}

// NewParser returns a parser for the complete contents of a map file.
func NewParser(text string, opts ...Option) *Parser {
	p := &Parser{
		text: text,
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse builds a new Model from the map file. The only error is a memory map
// region that can't be isolated. Size mismatches and unreadable blocks are
// logged and recorded in the model.
func (p *Parser) Parse() (*Model, error) {
	region, err := ExtractMemoryMap(p.text)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	m := newModel()

	for _, block := range SplitSections(region.MemoryMap) {
		sec, unmatched, ok := assembleSection(block, p.log)
		m.UnmatchedBlocks += unmatched
		if !ok {
			if strings.TrimSpace(block) != "" {
				first, _, _ := strings.Cut(block, "\n")
				p.log.Debug().Str("line", first).Msg("skipping block without section header")
				m.SkippedBlocks++
			}
			continue
		}

		p.log.Info().Str("section", sec.Name).Msg("going through section")

		calculated := TotalPlacementSize(sec.Placements)
		if calculated != sec.DeclaredSize {
			p.log.Error().
				Str("section", sec.Name).
				Uint64("section_size", sec.DeclaredSize).
				Uint64("calculated_size", calculated).
				Msg("section size is not equal to calculated size")

			for _, g := range CheckIntegrity(sec.Placements) {
				p.log.Debug().
					Str("section", sec.Name).
					Str("previous", g.Previous.ObjectName).
					Str("next", g.Next.ObjectName).
					Int64("delta", g.Delta).
					Msg("placements are not contiguous")
			}

			m.Discrepancies = append(m.Discrepancies, SizeMismatch{
				Section:        sec.Name,
				DeclaredSize:   sec.DeclaredSize,
				CalculatedSize: calculated,
			})
		}

		p.log.Debug().Str("section", sec.Name).Interface("placements", sec.Placements).Msg("placements")

		m.put(sec)
	}

	if m.UnmatchedBlocks > 0 {
		p.log.Warn().Int("count", m.UnmatchedBlocks).Msg("subsection blocks without a readable placement")
	}

	return m, nil
}
