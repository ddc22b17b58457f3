package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Partition sizes for imported vocabulary lists.
const (
	WordsPerGroup    = 50
	GroupsPerChapter = 10
)

// Library is a named, imported vocabulary list.
type Library struct {
	ID             uuid.UUID
	Name           string
	NameNormalized string
	SourceFormat   SourceFormat
	EntryCount     int
	GroupCount     int
	ChapterCount   int
	CreatedAt      time.Time
}

// Chapter bundles up to GroupsPerChapter consecutive groups.
type Chapter struct {
	ID         uuid.UUID
	LibraryID  uuid.UUID
	Number     int // 1-based
	Title      string
	FirstGroup int
	LastGroup  int
}

// GroupCount returns the number of groups the chapter covers.
func (c Chapter) GroupCount() int {
	return c.LastGroup - c.FirstGroup + 1
}

// Group is a fixed-size study unit of up to WordsPerGroup entries.
type Group struct {
	ID         uuid.UUID
	LibraryID  uuid.UUID
	ChapterID  uuid.UUID
	Index      int // 0-based across the library
	EntryCount int
}

// ChapterIndex returns the 0-based index of the chapter owning the group.
func (g Group) ChapterIndex() int {
	return ChapterIndexOf(g.Index)
}

// Entry is one deduplicated vocabulary item.
type Entry struct {
	ID               uuid.UUID
	LibraryID        uuid.UUID
	Position         int
	DisplayForm      string
	OriginalForm     string
	Meaning          string
	PartOfSpeech     string
	IsNonLatinScript bool
	GroupIndex       int
}

// ImportStats describes what happened to the rows of one import run.
type ImportStats struct {
	Format       SourceFormat
	Charset      string
	RawPairs     int // pairs produced by the format parser
	BlankMeaning int // pairs whose meaning was empty after cleanup
	Duplicates   int
	NonLatin     int
}

// ImportResult is the successful outcome of one import run.
type ImportResult struct {
	Library       Library
	Entries       []Entry
	Groups        []Group
	Chapters      []Chapter
	ImportedCount int
	SkippedCount  int
	Stats         ImportStats
}

// GroupIndexOf returns the group index for the entry at position.
func GroupIndexOf(position int) int {
	return position / WordsPerGroup
}

// ChapterIndexOf returns the chapter index for the group at groupIndex.
func ChapterIndexOf(groupIndex int) int {
	return groupIndex / GroupsPerChapter
}

// ChapterTitle formats a chapter title from its number and inclusive 0-based group range.
func ChapterTitle(number, firstGroup, lastGroup int) string {
	return fmt.Sprintf("第 %d 章 (%d-%d组)", number, firstGroup+1, lastGroup+1)
}
