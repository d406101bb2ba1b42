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

// Package mapfile reads the memory map of GNU ld style map files (the output
// of -Map) and reconstructs which objects were placed into which output
// section.
//
// Parsing is a pipeline of small functions that can be used and tested on
// their own:
//
//	ExtractMemoryMap   cut the text between "Linker script and memory map"
//	                   and OUTPUT(...)
//	SplitSections      one block per unindented line, LOAD lines dropped
//	SplitSubsections   one block per line indented by a single character
//	ParsePlacements    placement entries of a subsection block
//	RemoveReusedPlacements
//	                   drop entries the linker listed more than once
//	AssembleSection    header line plus reconciled placements
//
// Parser.Parse runs the whole pipeline and returns a Model that can be
// queried. The Model is never modified after Parse returns.
package mapfile
