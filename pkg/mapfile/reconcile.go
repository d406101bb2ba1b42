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

// RemoveReusedPlacements drops entries the linker emitted more than once when
// resolving multiply defined symbols. A placement is kept only if the next
// placement starts exactly where it ends. The last placement is always kept
// because there is nothing to compare it with.
func RemoveReusedPlacements(placements []domain.Placement) []domain.Placement {
	kept := make([]domain.Placement, 0, len(placements))
	if len(placements) == 0 {
		return kept
	}

	held := placements[0]
	for _, p := range placements[1:] {
		if held.End() == p.Address {
			kept = append(kept, held)
		}
		held = p
	}

	return append(kept, held)
}
