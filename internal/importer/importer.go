// Package importer turns vocabulary list files (plain text, CSV/TSV and
// Excel workbooks of any common encoding) into deduplicated entries
// partitioned into groups and chapters.
// Pure transform: bytes in, domain structs out. No database dependencies.
package importer

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/worklisten-backend/internal/domain"
)

// DefaultDelimiter separates columns of delimited text unless overridden.
const DefaultDelimiter = ','

// Importer runs import passes. It keeps no state between calls and is safe
// for concurrent use.
type Importer struct {
	log       *slog.Logger
	delimiter rune
}

// New creates an Importer. A zero delimiter selects DefaultDelimiter.
func New(logger *slog.Logger, delimiter rune) *Importer {
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}
	return &Importer{log: logger.With("component", "importer"), delimiter: delimiter}
}

// Option adjusts a single import call.
type Option func(*options)

type options struct {
	delimiter rune
}

// WithDelimiter sets the column delimiter for CSV input. TSV input always uses tabs.
func WithDelimiter(r rune) Option {
	return func(o *options) {
		if r != 0 {
			o.delimiter = r
		}
	}
}

// ValidDelimiter reports whether r can separate delimited columns.
func ValidDelimiter(r rune) bool {
	return r != 0 && r != '"' && r != '\r' && r != '\n' && r != utf8.RuneError && utf8.ValidRune(r)
}

// ImportReader reads src fully and imports it. Read failures wrap
// domain.ErrUnreadableSource.
func (im *Importer) ImportReader(src io.Reader, source, libraryName string, opts ...Option) (*domain.ImportResult, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnreadableSource, err)
	}
	return im.Import(data, source, libraryName, opts...)
}

// Import converts data into a vocabulary library named libraryName. source is
// the file name or a bare format hint and selects the parser.
// Either a complete result or an error is returned, never both.
func (im *Importer) Import(data []byte, source, libraryName string, opts ...Option) (res *domain.ImportResult, err error) {
	o := options{delimiter: im.delimiter}
	for _, opt := range opts {
		opt(&o)
	}

	format, err := ResolveFormat(source)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrEmptyFile, source)
	}
	if format == domain.SourceFormatCSV && !ValidDelimiter(o.delimiter) {
		return nil, domain.NewValidationError("delimiter", fmt.Sprintf("%q cannot separate columns", o.delimiter))
	}

	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = fmt.Errorf("%w: %s: reader panicked: %v", domain.ErrMalformedSource, source, r)
		}
	}()

	pairs, charset, err := readPairs(format, data, o.delimiter)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("%w: %s has no usable rows", domain.ErrEmptyFile, source)
	}

	res = assemble(pairs, libraryName)
	res.Library.SourceFormat = format
	res.Stats.Format = format
	res.Stats.Charset = charset
	if len(res.Entries) == 0 {
		return nil, fmt.Errorf("%w: %s has no usable rows", domain.ErrEmptyFile, source)
	}

	im.log.Debug("import parsed",
		slog.String("source", source),
		slog.String("format", format.String()),
		slog.String("charset", charset),
		slog.Int("rows", res.Stats.RawPairs),
		slog.Int("imported", res.ImportedCount),
		slog.Int("skipped", res.SkippedCount),
		slog.Int("groups", len(res.Groups)),
		slog.Int("chapters", len(res.Chapters)),
	)

	return res, nil
}

// assemble runs meaning extraction, deduplication, script classification and
// partitioning over pairs.
func assemble(pairs []rawPair, libraryName string) *domain.ImportResult {
	stats := domain.ImportStats{RawPairs: len(pairs)}
	seen := newDedupe(len(pairs))
	entries := make([]domain.Entry, 0, len(pairs))

	for _, p := range pairs {
		pos, meaning := ParseMeaning(p.meaning)
		if strings.TrimSpace(meaning) == "" {
			stats.BlankMeaning++
			continue
		}
		if !seen.accept(p.headword) {
			continue
		}

		e := domain.Entry{
			DisplayForm:  p.headword,
			OriginalForm: p.headword,
			Meaning:      meaning,
			PartOfSpeech: pos,
		}
		if IsNonLatinScript(p.headword) {
			e.IsNonLatinScript = true
			e.DisplayForm = ExtractKana(p.headword)
			stats.NonLatin++
		}
		entries = append(entries, e)
	}
	stats.Duplicates = seen.skipped

	groups, chapters := Partition(entries)
	name := strings.TrimSpace(libraryName)

	return &domain.ImportResult{
		Library: domain.Library{
			Name:           name,
			NameNormalized: domain.NormalizeText(name),
			EntryCount:     len(entries),
			GroupCount:     len(groups),
			ChapterCount:   len(chapters),
		},
		Entries:       entries,
		Groups:        groups,
		Chapters:      chapters,
		ImportedCount: len(entries),
		SkippedCount:  seen.skipped,
		Stats:         stats,
	}
}
