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
package logger

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// DefaultFile is where the log goes unless configured otherwise.
const DefaultFile = "mapfile_parser.log"

// Stderr as File sends the log to standard error instead of a file.
const Stderr = "-"

type Config struct {
	Level   string
	File    string
	Console bool
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New builds a logger from cfg. The returned Closer must be closed once
// logging is finished.
func New(cfg Config) (zerolog.Logger, io.Closer, error) {
	level := zerolog.DebugLevel
	if cfg.Level != "" {
		l, err := zerolog.ParseLevel(cfg.Level)
		if err != nil {
			return zerolog.Nop(), nil, errors.Wrapf(err, "log level %q", cfg.Level)
		}
		level = l
	}

	var w io.Writer
	var c io.Closer = nopCloser{}

	switch cfg.File {
	case Stderr:
		w = os.Stderr
	default:
		name := cfg.File
		if name == "" {
			name = DefaultFile
		}
		f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), nil, errors.WithStack(err)
		}
		w, c = f, f
	}

	if cfg.Console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.DateTime, NoColor: cfg.File != Stderr}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), c, nil
}
