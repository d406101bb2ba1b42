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
)

const memoryMapHeadline = "Linker script and memory map"

var (
	startDelimiter  = regexp.MustCompile(memoryMapHeadline + `\n\n`)
	endDelimiter    = regexp.MustCompile(`OUTPUT\(.*\)\n`)
	regionDelimiter = regexp.MustCompile(startDelimiter.String() + `|` + endDelimiter.String())
)

// Region is the map file split around the memory map. Concatenating the
// fields in order gives back the original text.
type Region struct {
	Preamble       string
	StartDelimiter string
	MemoryMap      string
	EndDelimiter   string
	Trailer        string
}

func (r Region) String() string {
	return r.Preamble + r.StartDelimiter + r.MemoryMap + r.EndDelimiter + r.Trailer
}

// ExtractMemoryMap isolates the text between the "Linker script and memory
// map" headline and the OUTPUT(...) line. Exactly one of each must be present,
// in that order.
func ExtractMemoryMap(text string) (Region, error) {
	matches := regionDelimiter.FindAllStringIndex(text, -1)

	starts, ends := 0, 0
	for _, m := range matches {
		if strings.HasPrefix(text[m[0]:m[1]], memoryMapHeadline) {
			starts++
		} else {
			ends++
		}
	}

	if starts != 1 || ends != 1 {
		return Region{}, &MalformedInputError{StartDelimiters: starts, EndDelimiters: ends}
	}

	start, end := matches[0], matches[1]
	if !strings.HasPrefix(text[start[0]:start[1]], memoryMapHeadline) {
		return Region{}, &MalformedInputError{StartDelimiters: starts, EndDelimiters: ends, OutOfOrder: true}
	}

	return Region{
		Preamble:       text[:start[0]],
		StartDelimiter: text[start[0]:start[1]],
		MemoryMap:      text[start[1]:end[0]],
		EndDelimiter:   text[end[0]:end[1]],
		Trailer:        text[end[1]:],
	}, nil
}
