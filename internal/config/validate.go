package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/worklisten-backend/internal/importer"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required")
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Import.validate(); err != nil {
		return fmt.Errorf("import: %w", err)
	}

	return nil
}

func (i *ImportConfig) validate() error {
	if i.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be > 0 (got %d)", i.MaxUploadBytes)
	}

	if i.UploadsPerMinute < 0 {
		return fmt.Errorf("uploads_per_minute must be >= 0 (got %d)", i.UploadsPerMinute)
	}

	if utf8.RuneCountInString(i.DefaultDelimiter) != 1 || !importer.ValidDelimiter(i.Delimiter()) {
		return fmt.Errorf("default_delimiter must be a single character (got %q)", i.DefaultDelimiter)
	}

	corpora, err := ParseCorpora(i.CorporaRaw)
	if err != nil {
		return fmt.Errorf("bootstrap_corpora: %w", err)
	}
	i.Corpora = corpora

	return nil
}

// ParseCorpora parses a comma-separated list of file=name pairs
// (e.g. "english.txt=内置-英语,japanese.txt=内置-日语") into corpora.
// An empty string returns a nil slice.
func ParseCorpora(raw string) ([]Corpus, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	corpora := make([]Corpus, 0, len(parts))
	names := make(map[string]bool, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		file, name, ok := strings.Cut(p, "=")
		file, name = strings.TrimSpace(file), strings.TrimSpace(name)
		if !ok || file == "" || name == "" {
			return nil, fmt.Errorf("invalid entry %q, want file=name", p)
		}
		if names[name] {
			return nil, fmt.Errorf("duplicate library name %q", name)
		}
		names[name] = true
		corpora = append(corpora, Corpus{File: file, Name: name})
	}

	return corpora, nil
}
