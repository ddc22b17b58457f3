package library

import "github.com/heartmarshall/worklisten-backend/internal/domain"

// ImportOutput summarizes one import call. Library.ID is zero for dry runs.
type ImportOutput struct {
	Library       domain.Library
	ImportedCount int
	SkippedCount  int
	GroupCount    int
	ChapterCount  int
	DryRun        bool
	Stats         domain.ImportStats
}

// Detail is a library together with its chapter and group layout.
type Detail struct {
	Library  domain.Library
	Chapters []domain.Chapter
	Groups   []domain.Group
}
