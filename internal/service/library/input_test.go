package library

import (
	"errors"
	"strings"
	"testing"

	"github.com/heartmarshall/worklisten-backend/internal/domain"
)

func TestImportInput_Validate(t *testing.T) {
	t.Parallel()

	file := strings.NewReader("x")
	tests := []struct {
		name   string
		input  ImportInput
		fields []string
	}{
		{"valid", ImportInput{LibraryName: "a", File: file, FileName: "a.txt"}, nil},
		{"format only", ImportInput{LibraryName: "a", File: file, Format: "csv"}, nil},
		{"multibyte delimiter", ImportInput{LibraryName: "a", File: file, Format: "csv", Delimiter: "，"}, nil},
		{"blank name", ImportInput{LibraryName: "   ", File: file, FileName: "a.txt"}, []string{"name"}},
		{"long name", ImportInput{LibraryName: strings.Repeat("词", 201), File: file, FileName: "a.txt"}, []string{"name"}},
		{"name at limit", ImportInput{LibraryName: strings.Repeat("词", 200), File: file, FileName: "a.txt"}, nil},
		{"no file", ImportInput{LibraryName: "a", FileName: "a.txt"}, []string{"file"}},
		{"no source", ImportInput{LibraryName: "a", File: file}, []string{"file_name"}},
		{"two-char delimiter", ImportInput{LibraryName: "a", File: file, FileName: "a.csv", Delimiter: ";;"}, []string{"delimiter"}},
		{"quote delimiter", ImportInput{LibraryName: "a", File: file, FileName: "a.csv", Delimiter: `"`}, []string{"delimiter"}},
		{"everything wrong", ImportInput{Delimiter: "\n"}, []string{"name", "file", "file_name", "delimiter"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.input.Validate()
			if tt.fields == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %T: %v", err, err)
			}
			if len(ve.Errors) != len(tt.fields) {
				t.Fatalf("expected %d field errors, got %d: %v", len(tt.fields), len(ve.Errors), ve.Errors)
			}
			for i, f := range tt.fields {
				if ve.Errors[i].Field != f {
					t.Errorf("error %d: field %q, want %q", i, ve.Errors[i].Field, f)
				}
			}
		})
	}
}

func TestImportInput_Source(t *testing.T) {
	t.Parallel()

	if got := (ImportInput{FileName: " words.xlsx ", Format: ""}).Source(); got != "words.xlsx" {
		t.Errorf("Source() = %q, want %q", got, "words.xlsx")
	}
	if got := (ImportInput{FileName: "words.xlsx", Format: "tsv"}).Source(); got != "tsv" {
		t.Errorf("Source() = %q, want %q", got, "tsv")
	}
}

func TestListInput_Validate(t *testing.T) {
	t.Parallel()

	if err := (ListInput{Limit: 200}).Validate(); err != nil {
		t.Errorf("limit 200: unexpected error: %v", err)
	}
	if err := (ListInput{Limit: 201}).Validate(); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("limit 201: expected ErrValidation, got %v", err)
	}
	if err := (ListInput{Offset: -1}).Validate(); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("offset -1: expected ErrValidation, got %v", err)
	}
}
