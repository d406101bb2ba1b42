package domain

const (
	StatusMissingClassInfo   = "MISSING_CLASSINFO"
	StatusAlternateClassInfo = "ALTERNATE_CLASSINFO"
)

type ClassInfo struct {
	Status     string
	SymbolName string
	Address    uint64
	Size       uint64
	Section    string
	SourceFile string
	ObjectName string
}
