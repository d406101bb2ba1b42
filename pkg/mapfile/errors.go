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
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrMalformedInput = errors.New("Memory map region is not readable")
	ErrNotMapFile     = errors.New("File is not a linker map file")
)

// MalformedInputError is returned when the memory map region can't be
// isolated. The counts say how many of each delimiter were found.
type MalformedInputError struct {
	StartDelimiters int
	EndDelimiters   int
	OutOfOrder      bool
}

func (e *MalformedInputError) Error() string {
	if e.OutOfOrder {
		return fmt.Sprintf("%v: OUTPUT() line precedes memory map headline", ErrMalformedInput)
	}
	return fmt.Sprintf("%v: found %d memory map headline(s) and %d OUTPUT() line(s), want exactly one of each",
		ErrMalformedInput, e.StartDelimiters, e.EndDelimiters)
}

func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}
