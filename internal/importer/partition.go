package importer

import "github.com/heartmarshall/worklisten-backend/internal/domain"

// Partition assigns entries to groups of WordsPerGroup in order and derives
// the groups and chapters covering them. Entries are updated in place.
// Only the last group and the last chapter may be under-full.
func Partition(entries []domain.Entry) ([]domain.Group, []domain.Chapter) {
	if len(entries) == 0 {
		return nil, nil
	}

	var groups []domain.Group
	for i := range entries {
		idx := domain.GroupIndexOf(i)
		entries[i].Position = i
		entries[i].GroupIndex = idx
		if idx == len(groups) {
			groups = append(groups, domain.Group{Index: idx})
		}
		groups[idx].EntryCount++
	}

	var chapters []domain.Chapter
	for _, g := range groups {
		ci := g.ChapterIndex()
		if ci == len(chapters) {
			chapters = append(chapters, domain.Chapter{Number: ci + 1, FirstGroup: g.Index})
		}
		chapters[ci].LastGroup = g.Index
	}
	for i := range chapters {
		c := &chapters[i]
		c.Title = domain.ChapterTitle(c.Number, c.FirstGroup, c.LastGroup)
	}

	return groups, chapters
}
