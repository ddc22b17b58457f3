package importer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/heartmarshall/worklisten-backend/internal/domain"
)

// rawPair is one headword/meaning pair as read from the source, untrimmed.
type rawPair struct {
	headword string
	meaning  string
}

// ResolveFormat maps a file name or a bare format hint ("csv", ".xlsx") to a
// SourceFormat. Matching is case-insensitive.
func ResolveFormat(source string) (domain.SourceFormat, error) {
	source = strings.TrimSpace(source)
	ext := filepath.Ext(source)
	if ext == "" {
		ext = source
	}
	f := domain.SourceFormat(strings.ToLower(strings.TrimPrefix(ext, ".")))
	if !f.IsValid() {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, source)
	}
	return f, nil
}

// readPairs dispatches data to the parser for format.
func readPairs(format domain.SourceFormat, data []byte, delimiter rune) ([]rawPair, string, error) {
	switch {
	case format == domain.SourceFormatText:
		text, charset := DecodeText(data)
		return readPlainText(text), charset, nil
	case format.IsDelimited():
		if format == domain.SourceFormatTSV {
			delimiter = '\t'
		}
		text, charset := DecodeText(data)
		pairs, err := readDelimited(text, delimiter)
		return pairs, charset, err
	case format.IsSpreadsheet():
		pairs, err := readSpreadsheet(data)
		return pairs, "", err
	default:
		return nil, "", fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
}
