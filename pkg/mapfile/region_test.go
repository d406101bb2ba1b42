package mapfile_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/Pavel7004/goLinkerMap/internal/test"
	"github.com/Pavel7004/goLinkerMap/pkg/mapfile"
)

func TestExtractMemoryMap(t *testing.T) {
	region, err := mapfile.ExtractMemoryMap(sampleMap)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, region.String(), sampleMap)
	test.ExpectEquality(t, region.StartDelimiter, "Linker script and memory map\n\n")
	test.ExpectEquality(t, region.EndDelimiter, "OUTPUT(app.elf elf32-littlearm)\n")
	test.ExpectSuccess(t, strings.HasPrefix(region.MemoryMap, "LOAD CMakeFiles/app.dir/main.c.obj\n"))
	test.ExpectSuccess(t, strings.HasSuffix(region.MemoryMap, "counter\n"))
	test.ExpectSuccess(t, strings.HasPrefix(region.Trailer, "LOAD linker stubs\n"))
	test.ExpectSuccess(t, strings.HasSuffix(region.Preamble, "xrw\n\n"))
}

func TestExtractMemoryMapMinimal(t *testing.T) {
	text := "Linker script and memory map\n\nOUTPUT(a.elf)\n"

	region, err := mapfile.ExtractMemoryMap(text)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, region.Preamble, "")
	test.ExpectEquality(t, region.MemoryMap, "")
	test.ExpectEquality(t, region.Trailer, "")
	test.ExpectEquality(t, region.String(), text)
}

func TestExtractMemoryMapMalformed(t *testing.T) {
	for _, tc := range []struct {
		name   string
		text   string
		starts int
		ends   int
	}{
		{"no headline", "foo\nOUTPUT(a.elf)\n", 0, 1},
		{"no output", "Linker script and memory map\n\n.text 0x0 0x0\n", 1, 0},
		{"empty", "", 0, 0},
		{"two outputs", "Linker script and memory map\n\nOUTPUT(a.elf)\nOUTPUT(b.elf)\n", 1, 2},
		{"two headlines", "Linker script and memory map\n\nLinker script and memory map\n\nOUTPUT(a.elf)\n", 2, 1},
		{"headline without blank line", "Linker script and memory map\n.text\nOUTPUT(a.elf)\n", 0, 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mapfile.ExtractMemoryMap(tc.text)
			test.DemandFailure(t, err)
			test.ExpectSuccess(t, errors.Is(err, mapfile.ErrMalformedInput))

			var merr *mapfile.MalformedInputError
			test.DemandSuccess(t, errors.As(err, &merr))
			test.ExpectEquality(t, merr.StartDelimiters, tc.starts)
			test.ExpectEquality(t, merr.EndDelimiters, tc.ends)
		})
	}
}

func TestExtractMemoryMapOutOfOrder(t *testing.T) {
	_, err := mapfile.ExtractMemoryMap("OUTPUT(a.elf)\nfoo\nLinker script and memory map\n\nbar\n")
	test.DemandFailure(t, err)

	var merr *mapfile.MalformedInputError
	test.DemandSuccess(t, errors.As(err, &merr))
	test.ExpectSuccess(t, merr.OutOfOrder)
}
