package importer

import (
	"regexp"
	"strings"
)

// columnGapRe separates the headword from its meaning: a tab or a run of
// two or more whitespace characters.
var columnGapRe = regexp.MustCompile(`[ \t\n\v\f\r]{2,}|\t`)

// readPlainText extracts pairs from one-entry-per-line text. Lines that do not
// split into a non-blank headword and meaning are dropped.
func readPlainText(text string) []rawPair {
	var pairs []rawPair
	for _, line := range lineBreakRe.Split(text, -1) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := columnGapRe.Split(line, 2)
		if len(parts) < 2 {
			continue
		}
		pairs = appendPair(pairs, parts[0], parts[1])
	}
	return pairs
}

// appendPair appends a trimmed pair unless either side is blank.
func appendPair(pairs []rawPair, headword, meaning string) []rawPair {
	headword = strings.TrimSpace(headword)
	meaning = strings.TrimSpace(meaning)
	if headword == "" || meaning == "" {
		return pairs
	}
	return append(pairs, rawPair{headword: headword, meaning: meaning})
}
