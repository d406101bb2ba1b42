package symbols_test

import (
	"testing"

	"github.com/Pavel7004/goLinkerMap/internal/test"
	"github.com/Pavel7004/goLinkerMap/pkg/symbols"
)

func TestDemangle(t *testing.T) {
	test.ExpectEquality(t, symbols.Demangle("_ZN7drivers2a73Mmu4initEv"), "drivers::a7::Mmu::init()")
	test.ExpectEquality(t, symbols.Demangle(".text._ZN7drivers2a73Mmu4initEv"), ".text.drivers::a7::Mmu::init()")
}

func TestDemangleUnchanged(t *testing.T) {
	for _, name := range []string{
		"",
		"main",
		".bss.counter",
		"*fill*",
		"drivers::a7::Mmu::translationTable",
	} {
		test.ExpectEquality(t, symbols.Demangle(name), name)
	}
}
