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

import "github.com/Pavel7004/goLinkerMap/pkg/domain"

// Gap describes two neighbouring placements that aren't contiguous. Delta is
// positive for a hole and negative for an overlap.
type Gap struct {
	Previous domain.Placement
	Next     domain.Placement
	Delta    int64
}

// CheckIntegrity lists every pair of neighbouring placements where the second
// doesn't start at the end of the first. Useful when a section's declared size
// doesn't add up.
func CheckIntegrity(placements []domain.Placement) []Gap {
	var gaps []Gap
	for i := 1; i < len(placements); i++ {
		prev, next := placements[i-1], placements[i]
		if prev.End() != next.Address {
			gaps = append(gaps, Gap{
				Previous: prev,
				Next:     next,
				Delta:    int64(next.Address - prev.End()),
			})
		}
	}
	return gaps
}
