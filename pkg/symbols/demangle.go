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
package symbols

import (
	"strings"

	"github.com/ianlancetaylor/demangle"
)

// Demangle returns the readable form of a C++ symbol. Input section names
// such as ".text._ZN7drivers2a73Mmu4initEv" keep their section prefix. Names
// that can't be demangled are returned unchanged.
func Demangle(name string) string {
	prefix, mangled := splitSectionPrefix(name)
	if !strings.HasPrefix(mangled, "_Z") {
		return name
	}

	pretty, err := demangle.ToString(mangled)
	if err != nil {
		return name
	}

	return prefix + pretty
}

func splitSectionPrefix(name string) (string, string) {
	if i := strings.Index(name, "._Z"); i >= 0 {
		return name[:i+1], name[i+1:]
	}
	return "", name
}
