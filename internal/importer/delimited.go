package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/heartmarshall/worklisten-backend/internal/domain"
)

// readDelimited extracts pairs from delimiter-separated text. Column 0 is the
// headword and column 1 the meaning; extra columns are ignored. A source
// without a single record is empty.
func readDelimited(text string, delimiter rune) ([]rawPair, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1 // allow variable column count
	reader.LazyQuotes = true

	var pairs []rawPair
	rows := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: read row: %w", domain.ErrMalformedSource, err)
		}
		rows++

		if len(record) < 2 {
			continue
		}
		pairs = appendPair(pairs, record[0], record[1])
	}

	if rows == 0 {
		return nil, fmt.Errorf("%w: no rows", domain.ErrEmptyFile)
	}
	return pairs, nil
}
