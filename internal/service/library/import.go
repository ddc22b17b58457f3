package library

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/worklisten-backend/internal/domain"
	"github.com/heartmarshall/worklisten-backend/internal/importer"
	"github.com/heartmarshall/worklisten-backend/pkg/ctxutil"
)

// Import parses one vocabulary file and stores it as a new library.
// Names are unique after normalization; an existing name fails with
// domain.ErrAlreadyExists before the file is persisted.
func (s *Service) Import(ctx context.Context, input ImportInput) (*ImportOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.LibraryName)
	source := input.Source()

	var opts []importer.Option
	if d := input.DelimiterRune(); d != 0 {
		opts = append(opts, importer.WithDelimiter(d))
	}

	res, err := s.importer.ImportReader(input.File, source, name, opts...)
	if err != nil {
		s.log.WarnContext(ctx, "import rejected",
			slog.String("library", name),
			slog.String("source", source),
			slog.String("origin", ctxutil.OriginFromCtx(ctx)),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("import %s: %w", source, err)
	}
	// Parsing a large file can outlive the request.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := &ImportOutput{
		Library:       res.Library,
		ImportedCount: res.ImportedCount,
		SkippedCount:  res.SkippedCount,
		GroupCount:    len(res.Groups),
		ChapterCount:  len(res.Chapters),
		DryRun:        input.DryRun,
		Stats:         res.Stats,
	}
	if input.DryRun {
		return out, nil
	}

	exists, err := s.Exists(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("library %q: %w", name, domain.ErrAlreadyExists)
	}

	lib, err := s.libraries.SaveImport(ctx, res)
	if err != nil {
		return nil, fmt.Errorf("save library: %w", err)
	}
	out.Library = *lib

	s.log.InfoContext(ctx, "library imported",
		slog.String("library_id", lib.ID.String()),
		slog.String("library", lib.Name),
		slog.String("origin", ctxutil.OriginFromCtx(ctx)),
		slog.String("format", res.Stats.Format.String()),
		slog.String("charset", res.Stats.Charset),
		slog.Int("imported", out.ImportedCount),
		slog.Int("skipped", out.SkippedCount),
		slog.Int("groups", out.GroupCount),
		slog.Int("chapters", out.ChapterCount),
	)

	return out, nil
}
