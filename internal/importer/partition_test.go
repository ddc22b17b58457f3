package importer

import (
	"testing"

	"github.com/heartmarshall/worklisten-backend/internal/domain"
)

func TestPartition_Empty(t *testing.T) {
	t.Parallel()

	groups, chapters := Partition(nil)
	if groups != nil || chapters != nil {
		t.Errorf("Partition(nil) = %v, %v; want nil, nil", groups, chapters)
	}
}

func TestPartition_120Entries(t *testing.T) {
	t.Parallel()

	entries := make([]domain.Entry, 120)
	groups, chapters := Partition(entries)

	wantCounts := []int{50, 50, 20}
	if len(groups) != len(wantCounts) {
		t.Fatalf("got %d groups, want %d", len(groups), len(wantCounts))
	}
	for i, want := range wantCounts {
		if groups[i].Index != i || groups[i].EntryCount != want {
			t.Errorf("group %d = %+v, want index %d count %d", i, groups[i], i, want)
		}
	}

	if len(chapters) != 1 {
		t.Fatalf("got %d chapters, want 1", len(chapters))
	}
	c := chapters[0]
	if c.Number != 1 || c.FirstGroup != 0 || c.LastGroup != 2 || c.Title != "第 1 章 (1-3组)" {
		t.Errorf("chapter = %+v", c)
	}

	if entries[0].GroupIndex != 0 || entries[49].GroupIndex != 0 || entries[50].GroupIndex != 1 || entries[119].GroupIndex != 2 {
		t.Errorf("unexpected group indexes: %d %d %d %d",
			entries[0].GroupIndex, entries[49].GroupIndex, entries[50].GroupIndex, entries[119].GroupIndex)
	}
	if entries[119].Position != 119 {
		t.Errorf("entries[119].Position = %d, want 119", entries[119].Position)
	}
}

func TestPartition_ChapterBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		entries    int
		groups     int
		wantTitles []string
	}{
		{1, 1, []string{"第 1 章 (1-1组)"}},
		{500, 10, []string{"第 1 章 (1-10组)"}},
		{501, 11, []string{"第 1 章 (1-10组)", "第 2 章 (11-11组)"}},
		{1050, 21, []string{"第 1 章 (1-10组)", "第 2 章 (11-20组)", "第 3 章 (21-21组)"}},
	}
	for _, tt := range tests {
		groups, chapters := Partition(make([]domain.Entry, tt.entries))
		if len(groups) != tt.groups {
			t.Errorf("%d entries: got %d groups, want %d", tt.entries, len(groups), tt.groups)
		}
		if len(chapters) != len(tt.wantTitles) {
			t.Errorf("%d entries: got %d chapters, want %d", tt.entries, len(chapters), len(tt.wantTitles))
			continue
		}
		for i, want := range tt.wantTitles {
			if chapters[i].Title != want {
				t.Errorf("%d entries: chapter %d title = %q, want %q", tt.entries, i, chapters[i].Title, want)
			}
		}
	}
}

func TestPartition_Invariants(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 1300; n += 37 {
		entries := make([]domain.Entry, n)
		groups, chapters := Partition(entries)
		assertPartitionInvariants(t, entries, groups, chapters)
	}
}

// assertPartitionInvariants checks group and chapter sizes, coverage and
// that only the final group and chapter are under-full.
func assertPartitionInvariants(t *testing.T, entries []domain.Entry, groups []domain.Group, chapters []domain.Chapter) {
	t.Helper()

	total := 0
	for i, g := range groups {
		if g.Index != i {
			t.Fatalf("group %d has index %d", i, g.Index)
		}
		if g.EntryCount > domain.WordsPerGroup || g.EntryCount == 0 {
			t.Fatalf("group %d has %d entries", i, g.EntryCount)
		}
		if i < len(groups)-1 && g.EntryCount != domain.WordsPerGroup {
			t.Fatalf("non-final group %d is under-full (%d)", i, g.EntryCount)
		}
		total += g.EntryCount
	}
	if total != len(entries) {
		t.Fatalf("groups cover %d entries, want %d", total, len(entries))
	}

	next := 0
	for i, c := range chapters {
		if c.Number != i+1 || c.FirstGroup != next {
			t.Fatalf("chapter %d = %+v, want number %d starting at group %d", i, c, i+1, next)
		}
		if c.GroupCount() > domain.GroupsPerChapter {
			t.Fatalf("chapter %d spans %d groups", i, c.GroupCount())
		}
		if i < len(chapters)-1 && c.GroupCount() != domain.GroupsPerChapter {
			t.Fatalf("non-final chapter %d is under-full (%d)", i, c.GroupCount())
		}
		next = c.LastGroup + 1
	}
	if next != len(groups) {
		t.Fatalf("chapters cover %d groups, want %d", next, len(groups))
	}

	for i, e := range entries {
		if e.Position != i || e.GroupIndex != i/domain.WordsPerGroup {
			t.Fatalf("entry %d has position %d group %d", i, e.Position, e.GroupIndex)
		}
	}
}
