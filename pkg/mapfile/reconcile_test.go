package mapfile_test

import (
	"testing"

	"github.com/Pavel7004/goLinkerMap/internal/test"
	"github.com/Pavel7004/goLinkerMap/pkg/domain"
	"github.com/Pavel7004/goLinkerMap/pkg/mapfile"
)

func placement(name string, address, size uint64) domain.Placement {
	return domain.Placement{ObjectName: name, Address: address, Size: size}
}

func expectNoOverlap(t *testing.T, placements []domain.Placement) {
	t.Helper()
	for i := 1; i < len(placements); i++ {
		test.ExpectSuccess(t, placements[i-1].End() <= placements[i].Address)
	}
}

func TestRemoveReusedPlacementsOnce(t *testing.T) {
	res := mapfile.RemoveReusedPlacements([]domain.Placement{
		placement("sect1", 0, 10),
		placement("sect2", 10, 20),
		placement("sect_", 10, 20),
		placement("sect3", 30, 10),
	})

	test.ExpectDeepEquality(t, res, []domain.Placement{
		placement("sect1", 0, 10),
		placement("sect_", 10, 20),
		placement("sect3", 30, 10),
	})
	expectNoOverlap(t, res)
}

func TestRemoveReusedPlacementsTwice(t *testing.T) {
	res := mapfile.RemoveReusedPlacements([]domain.Placement{
		placement("sect1", 0, 10),
		placement("sect2", 10, 20),
		placement("sect_", 10, 20),
		placement("sect__", 10, 20),
		placement("sect3", 30, 10),
	})

	test.ExpectDeepEquality(t, res, []domain.Placement{
		placement("sect1", 0, 10),
		placement("sect__", 10, 20),
		placement("sect3", 30, 10),
	})
	expectNoOverlap(t, res)
}

func TestRemoveReusedPlacementsContiguous(t *testing.T) {
	in := []domain.Placement{
		placement("a", 0x100, 0x10),
		placement("b", 0x110, 0x4),
		placement("c", 0x114, 0x0),
		placement("d", 0x114, 0x8),
	}
	test.ExpectDeepEquality(t, mapfile.RemoveReusedPlacements(in), in)
}

func TestRemoveReusedPlacementsEdges(t *testing.T) {
	test.ExpectEquality(t, len(mapfile.RemoveReusedPlacements(nil)), 0)

	single := []domain.Placement{placement(".mmu_table", 0x2fff8000, 0x4000)}
	test.ExpectDeepEquality(t, mapfile.RemoveReusedPlacements(single), single)

	// the last entry is kept even though it jumps backwards
	res := mapfile.RemoveReusedPlacements([]domain.Placement{
		placement("a", 0x100, 0x10),
		placement("b", 0x50, 0x10),
	})
	test.ExpectDeepEquality(t, res, []domain.Placement{placement("b", 0x50, 0x10)})
}

func TestRemoveReusedPlacementsDoesNotModifyInput(t *testing.T) {
	in := []domain.Placement{
		placement("sect1", 0, 10),
		placement("sect2", 10, 20),
		placement("sect_", 10, 20),
	}
	mapfile.RemoveReusedPlacements(in)
	test.ExpectEquality(t, in[1].ObjectName, "sect2")
	test.ExpectEquality(t, len(in), 3)
}
