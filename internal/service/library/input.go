package library

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/worklisten-backend/internal/domain"
	"github.com/heartmarshall/worklisten-backend/internal/importer"
)

// MaxNameLength caps library names, in characters.
const MaxNameLength = 200

// ImportInput holds the parameters for importing one vocabulary file.
type ImportInput struct {
	LibraryName string
	File        io.Reader
	FileName    string // selects the parser by extension unless Format is set
	Format      string // bare format hint: txt, csv, tsv, xls, xlsx
	Delimiter   string // CSV column delimiter, a single character
	DryRun      bool   // parse and report without persisting
}

// Source returns the value handed to the importer to pick a parser.
func (i ImportInput) Source() string {
	if f := strings.TrimSpace(i.Format); f != "" {
		return f
	}
	return strings.TrimSpace(i.FileName)
}

// DelimiterRune returns the configured delimiter, or 0 when unset.
func (i ImportInput) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(i.Delimiter)
	if r == utf8.RuneError {
		return 0
	}
	return r
}

// Validate checks all fields and collects all errors.
func (i ImportInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.LibraryName)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if utf8.RuneCountInString(name) > MaxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}

	if i.File == nil {
		errs = append(errs, domain.FieldError{Field: "file", Message: "required"})
	}

	if i.Source() == "" {
		errs = append(errs, domain.FieldError{Field: "file_name", Message: "file name or format required"})
	}

	if i.Delimiter != "" {
		if utf8.RuneCountInString(i.Delimiter) != 1 || !importer.ValidDelimiter(i.DelimiterRune()) {
			errs = append(errs, domain.FieldError{Field: "delimiter", Message: "must be a single character"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListInput holds the parameters for listing libraries.
type ListInput struct {
	Search string
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > domain.MaxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "max 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(i.Search) > 500 {
		errs = append(errs, domain.FieldError{Field: "search", Message: "max 500 characters"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// EntriesInput identifies one group of a library.
type EntriesInput struct {
	LibraryID  uuid.UUID
	GroupIndex int
}

// Validate checks all fields and collects all errors.
func (i EntriesInput) Validate() error {
	var errs []domain.FieldError
	if i.LibraryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "library_id", Message: "required"})
	}
	if i.GroupIndex < 0 {
		errs = append(errs, domain.FieldError{Field: "group_index", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
