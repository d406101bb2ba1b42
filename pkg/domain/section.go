package domain

// EmptyName replaces a blank object name, eg. for some *fill* entries.
const EmptyName = "*empty*"

type Section struct {
	Name         string
	Address      uint64
	DeclaredSize uint64
	Placements   []Placement
}

type Placement struct {
	ObjectName string
	Address    uint64
	Size       uint64
	SourceFile string

	SecondaryAddress    uint64
	HasSecondaryAddress bool

	SymbolName string
}

func (p Placement) HasSourceFile() bool {
	return p.SourceFile != ""
}

func (p Placement) HasSymbol() bool {
	return p.SymbolName != ""
}

// End is the first address after the placement.
func (p Placement) End() uint64 {
	return p.Address + p.Size
}

type SectionSummary struct {
	Name    string
	Address uint64
	Size    uint64
}

type PlacementRef struct {
	Section string
	Placement
}
