// Package library implements the vocabulary library store using PostgreSQL.
package library

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/worklisten-backend/internal/adapter/postgres"
	"github.com/heartmarshall/worklisten-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const libraryColumns = "id, name, name_normalized, source_format, entry_count, group_count, chapter_count, created_at"

var entryColumns = []string{
	"id", "library_id", "position", "group_index", "display_form",
	"original_form", "meaning", "part_of_speech", "is_non_latin",
}

// Repo persists imported libraries with their chapters, groups and entries.
type Repo struct {
	pool *pgxpool.Pool
	tx   *postgres.TxManager
}

// New creates a new library repository.
func New(pool *pgxpool.Pool, tx *postgres.TxManager) *Repo {
	return &Repo{pool: pool, tx: tx}
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// SaveImport stores an import result in one transaction and returns the
// library with its assigned ID. Each group is attached to the chapter at
// index groupIndex / GroupsPerChapter.
func (r *Repo) SaveImport(ctx context.Context, res *domain.ImportResult) (*domain.Library, error) {
	lib := res.Library
	lib.ID = uuid.New()
	lib.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	if lib.NameNormalized == "" {
		lib.NameNormalized = domain.NormalizeText(lib.Name)
	}

	err := r.tx.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.pool)

		_, err := q.Exec(ctx,
			`INSERT INTO libraries (`+libraryColumns+`)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			lib.ID, lib.Name, lib.NameNormalized, string(lib.SourceFormat),
			lib.EntryCount, lib.GroupCount, lib.ChapterCount, lib.CreatedAt,
		)
		if err != nil {
			return mapError(err, "library", lib.Name)
		}

		batch, err := partitionBatch(lib.ID, res.Chapters, res.Groups)
		if err != nil {
			return err
		}
		if _, err := sendBatchExec(ctx, q, batch); err != nil {
			return mapError(err, "library", lib.Name)
		}

		rows := make([][]any, len(res.Entries))
		for i, e := range res.Entries {
			rows[i] = []any{
				uuid.New(), lib.ID, e.Position, e.GroupIndex, e.DisplayForm,
				e.OriginalForm, e.Meaning, e.PartOfSpeech, e.IsNonLatinScript,
			}
		}
		copied, err := q.CopyFrom(ctx, pgx.Identifier{"entries"}, entryColumns, pgx.CopyFromRows(rows))
		if err != nil {
			return mapError(err, "library", lib.Name)
		}
		if int(copied) != len(rows) {
			return fmt.Errorf("library %s: copied %d of %d entries", lib.Name, copied, len(rows))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &lib, nil
}

// partitionBatch queues chapter rows followed by group rows pointing at them.
func partitionBatch(libraryID uuid.UUID, chapters []domain.Chapter, groups []domain.Group) (*pgx.Batch, error) {
	batch := &pgx.Batch{}

	chapterIDs := make([]uuid.UUID, len(chapters))
	for i, c := range chapters {
		chapterIDs[i] = uuid.New()
		batch.Queue(
			`INSERT INTO chapters (id, library_id, number, title, first_group, last_group)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			chapterIDs[i], libraryID, c.Number, c.Title, c.FirstGroup, c.LastGroup,
		)
	}

	for _, g := range groups {
		ci := g.ChapterIndex()
		if ci >= len(chapterIDs) {
			return nil, fmt.Errorf("group %d: no chapter %d among %d: %w", g.Index, ci, len(chapterIDs), domain.ErrValidation)
		}
		batch.Queue(
			`INSERT INTO word_groups (id, library_id, chapter_id, group_index, entry_count)
			 VALUES ($1, $2, $3, $4, $5)`,
			uuid.New(), libraryID, chapterIDs[ci], g.Index, g.EntryCount,
		)
	}

	return batch, nil
}

// Delete removes a library and, by cascade, everything imported with it.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM libraries WHERE id = $1`, id)
	if err != nil {
		return mapError(err, "library", id)
	}
	if tag.RowsAffected() == 0 {
		return mapError(pgx.ErrNoRows, "library", id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns a library by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Library, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `SELECT `+libraryColumns+` FROM libraries WHERE id = $1`, id)
	lib, err := scanLibrary(row)
	if err != nil {
		return nil, mapError(err, "library", id)
	}
	return &lib, nil
}

// GetByName returns the library whose normalized name matches name.
func (r *Repo) GetByName(ctx context.Context, name string) (*domain.Library, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `SELECT `+libraryColumns+` FROM libraries WHERE name_normalized = $1`, domain.NormalizeText(name))
	lib, err := scanLibrary(row)
	if err != nil {
		return nil, mapError(err, "library", name)
	}
	return &lib, nil
}

// List returns one page of libraries, newest first, and the total number
// matching the filter.
func (r *Repo) List(ctx context.Context, filter domain.LibraryFilter) ([]domain.Library, int, error) {
	filter = filter.Normalized()
	q := postgres.QuerierFromCtx(ctx, r.pool)

	where := sq.And{}
	if filter.Search != "" {
		where = append(where, sq.Like{"name_normalized": "%" + escapeLike(filter.Search) + "%"})
	}

	countSQL, countArgs, err := psql.Select("count(*)").From("libraries").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, mapError(err, "library", "list")
	}

	listSQL, listArgs, err := psql.Select(libraryColumns).
		From("libraries").
		Where(where).
		OrderBy("created_at DESC", "name_normalized").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, mapError(err, "library", "list")
	}
	libs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Library, error) {
		return scanLibrary(row)
	})
	if err != nil {
		return nil, 0, mapError(err, "library", "list")
	}

	return libs, total, nil
}

// ListChapters returns the chapters of a library in order.
func (r *Repo) ListChapters(ctx context.Context, libraryID uuid.UUID) ([]domain.Chapter, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT id, library_id, number, title, first_group, last_group
		 FROM chapters WHERE library_id = $1 ORDER BY number`, libraryID)
	if err != nil {
		return nil, mapError(err, "chapters of library", libraryID)
	}
	chapters, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Chapter, error) {
		var c domain.Chapter
		err := row.Scan(&c.ID, &c.LibraryID, &c.Number, &c.Title, &c.FirstGroup, &c.LastGroup)
		return c, err
	})
	if err != nil {
		return nil, mapError(err, "chapters of library", libraryID)
	}
	return chapters, nil
}

// ListGroups returns the groups of a library in order.
func (r *Repo) ListGroups(ctx context.Context, libraryID uuid.UUID) ([]domain.Group, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT id, library_id, chapter_id, group_index, entry_count
		 FROM word_groups WHERE library_id = $1 ORDER BY group_index`, libraryID)
	if err != nil {
		return nil, mapError(err, "groups of library", libraryID)
	}
	groups, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Group, error) {
		var g domain.Group
		err := row.Scan(&g.ID, &g.LibraryID, &g.ChapterID, &g.Index, &g.EntryCount)
		return g, err
	})
	if err != nil {
		return nil, mapError(err, "groups of library", libraryID)
	}
	return groups, nil
}

// ListEntries returns the entries of one group in position order.
func (r *Repo) ListEntries(ctx context.Context, libraryID uuid.UUID, groupIndex int) ([]domain.Entry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Select(entryColumns...).
		From("entries").
		Where(sq.Eq{"library_id": libraryID, "group_index": groupIndex}).
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build entries query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, mapError(err, "entries of library", libraryID)
	}
	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Entry, error) {
		var e domain.Entry
		err := row.Scan(&e.ID, &e.LibraryID, &e.Position, &e.GroupIndex, &e.DisplayForm,
			&e.OriginalForm, &e.Meaning, &e.PartOfSpeech, &e.IsNonLatinScript)
		return e, err
	})
	if err != nil {
		return nil, mapError(err, "entries of library", libraryID)
	}
	return entries, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func scanLibrary(row pgx.Row) (domain.Library, error) {
	var (
		lib    domain.Library
		format string
	)
	err := row.Scan(&lib.ID, &lib.Name, &lib.NameNormalized, &format,
		&lib.EntryCount, &lib.GroupCount, &lib.ChapterCount, &lib.CreatedAt)
	lib.SourceFormat = domain.SourceFormat(format)
	return lib, err
}

// sendBatchExec runs every queued statement and returns the affected row count.
func sendBatchExec(ctx context.Context, q postgres.Querier, batch *pgx.Batch) (int, error) {
	results := q.SendBatch(ctx, batch)
	defer results.Close()

	var affected int
	for range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			return affected, fmt.Errorf("batch exec: %w", err)
		}
		affected += int(tag.RowsAffected())
	}

	return affected, nil
}

// escapeLike escapes LIKE wildcards in user input.
func escapeLike(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '%' || r == '_' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}
