package testhelper

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/worklisten-backend/internal/domain"
	"github.com/heartmarshall/worklisten-backend/internal/importer"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueName returns a library name that no other test uses.
func UniqueName(prefix string) string {
	return prefix + "-" + uniqueSuffix()
}

// NewImportResult builds an in-memory import result with n distinct entries,
// partitioned the way the importer does it.
func NewImportResult(name string, n int) *domain.ImportResult {
	entries := make([]domain.Entry, n)
	for i := range entries {
		word := fmt.Sprintf("word%05d", i)
		entries[i] = domain.Entry{
			DisplayForm:  word,
			OriginalForm: word,
			Meaning:      fmt.Sprintf("释义 %d", i),
			PartOfSpeech: "n.",
		}
	}
	groups, chapters := importer.Partition(entries)

	return &domain.ImportResult{
		Library: domain.Library{
			Name:           name,
			NameNormalized: domain.NormalizeText(name),
			SourceFormat:   domain.SourceFormatText,
			EntryCount:     n,
			GroupCount:     len(groups),
			ChapterCount:   len(chapters),
		},
		Entries:       entries,
		Groups:        groups,
		Chapters:      chapters,
		ImportedCount: n,
	}
}

// SeedLibrary inserts a bare library row with no entries and returns it.
func SeedLibrary(t *testing.T, pool *pgxpool.Pool, name string) domain.Library {
	t.Helper()

	lib := domain.Library{
		ID:             uuid.New(),
		Name:           name,
		NameNormalized: domain.NormalizeText(name),
		SourceFormat:   domain.SourceFormatCSV,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO libraries (id, name, name_normalized, source_format)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at`,
		lib.ID, lib.Name, lib.NameNormalized, string(lib.SourceFormat),
	).Scan(&lib.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedLibrary insert: %v", err)
	}

	return lib
}
