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
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// MapReader loads a map file from disk. The whole file is read by Open; there
// is no streaming.
type MapReader struct {
	Filename string
	Logger   zerolog.Logger

	file *os.File
	text string
}

func NewMapReader(filename string) *MapReader {
	return &MapReader{
		Filename: filename,
		Logger:   zerolog.Nop(),
	}
}

func (r *MapReader) Open() error {
	f, err := os.Open(r.Filename)
	if err != nil {
		return errors.WithStack(err)
	}
	r.file = f

	data, err := io.ReadAll(bufio.NewReader(f))
	if err != nil {
		r.Logger.Error().Err(err).Str("file", r.Filename).Msg("failed to read map file")
		return errors.Wrapf(err, "reading %s", r.Filename)
	}
	r.text = string(data)

	return r.checkMapHeadline()
}

func (r *MapReader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// Parse parses the text loaded by Open.
func (r *MapReader) Parse() (*Model, error) {
	return NewParser(r.text, WithLogger(r.Logger)).Parse()
}

// checkMapHeadline looks for the memory map headline. Files without one
// aren't map files and are rejected before any parsing.
func (r *MapReader) checkMapHeadline() error {
	scanner := bufio.NewScanner(strings.NewReader(r.text))
	scanner.Buffer(make([]byte, 0, 64*1024), len(r.text)+1)
	for scanner.Scan() {
		if strings.TrimRight(scanner.Text(), "\r") == memoryMapHeadline {
			return nil
		}
	}
	r.Logger.Debug().Str("file", r.Filename).Msg("memory map headline not found")
	return errors.WithStack(ErrNotMapFile)
}

// ParseString parses the map file contents in s.
func ParseString(s string, opts ...Option) (*Model, error) {
	return NewParser(s, opts...).Parse()
}

// ParseBytes parses the map file contents in buf.
func ParseBytes(buf []byte, opts ...Option) (*Model, error) {
	return ParseString(string(buf), opts...)
}

// ParseFile reads and parses the map file at path.
func ParseFile(path string, opts ...Option) (*Model, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return ParseBytes(buf, opts...)
}
