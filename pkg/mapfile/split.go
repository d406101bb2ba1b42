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

var (
	// a section starts with a line that isn't indented
	sectionStart = regexp.MustCompile(`(?m)^[^\s].*$`)

	// a subsection starts with a line indented by exactly one character
	subsectionStart = regexp.MustCompile(`(?m)^\s[^\s].*$`)
)

// SplitBlocks cuts text at every match of re. Unlike strings.Split the
// delimiting line is kept as the first line of its block. The text before the
// first match is returned as the first block, even when it is empty. Every
// block but the last has its trailing newline removed.
//
// If re doesn't match at all the result is empty.
func SplitBlocks(re *regexp.Regexp, text string) []string {
	matches := re.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return []string{}
	}

	blocks := make([]string, 0, len(matches)+1)
	blocks = append(blocks, text[:matches[0][0]])

	for i := 1; i < len(matches); i++ {
		blocks = append(blocks, text[matches[i-1][0]:matches[i][0]-1])
	}

	blocks = append(blocks, text[matches[len(matches)-1][0]:])

	return blocks
}

// SplitSections splits the memory map into section blocks. LOAD lines are
// input files, not output sections, and are dropped.
func SplitSections(memoryMap string) []string {
	blocks := SplitBlocks(sectionStart, memoryMap)

	secs := blocks[:0]
	for _, b := range blocks {
		if strings.HasPrefix(b, "LOAD") {
			continue
		}
		secs = append(secs, b)
	}

	return secs
}

// SplitSubsections splits the body of a section block (everything after the
// header line) into subsection blocks. The first block is whatever precedes
// the first subsection line and usually is empty.
func SplitSubsections(body string) []string {
	return SplitBlocks(subsectionStart, body)
}
