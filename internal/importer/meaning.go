package importer

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf16"
)

// singleSenseMaxOffset is the largest UTF-16 offset at which a lone tag still
// counts as leading the text.
const singleSenseMaxOffset = 1

var (
	bracketNoteRe = regexp.MustCompile(`\[(.*?)\]`)
	senseSepRe    = regexp.MustCompile(`[;；。]`)
	lineBreakRe   = regexp.MustCompile(`\r\n|\n|\r`)
)

const (
	senseSep    = "；"
	senseJoiner = "； "
)

// posTokens is the closed set of part-of-speech abbreviations recognized in meanings.
var posTokens = []string{"adv", "adj", "art", "aux", "conj", "int", "n", "num", "prep", "pron", "v", "vi", "vt"}

type posMatch struct {
	start int // rune offset
	end   int // rune offset past the optional period
}

// ParseMeaning splits a raw meaning cell into its part-of-speech tag and a
// cleaned meaning. Multi-sense text keeps its tags inline, one sense per line,
// and returns an empty tag.
func ParseMeaning(raw string) (pos, meaning string) {
	text := strings.TrimSpace(raw)
	if len(text) >= 2 && strings.HasPrefix(text, `"`) && strings.HasSuffix(text, `"`) {
		text = text[1 : len(text)-1]
	}
	text = strings.ReplaceAll(text, "\r\n", " ")
	text = strings.ReplaceAll(text, "\n", " ")
	text = strings.TrimSpace(bracketNoteRe.ReplaceAllString(text, ""))

	runes := []rune(text)
	matches := findPosTags(runes)

	switch {
	case len(matches) == 0:
		return "", CleanMeaning(text)
	case len(matches) == 1 && utf16Len(runes[:matches[0].start]) <= singleSenseMaxOffset:
		m := matches[0]
		tag := string(runes[m.start:m.end])
		if !strings.HasSuffix(tag, ".") {
			tag += "."
		}
		return tag, CleanMeaning(string(runes[m.end:]))
	}

	segments := make([]string, 0, len(matches))
	for i, m := range matches {
		end := len(runes)
		if i+1 < len(matches) {
			end = matches[i+1].start
		}
		seg := strings.TrimSpace(string(runes[m.start:end]))
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return "", CleanSenses(strings.Join(segments, "\n"))
}

// CleanMeaning normalizes sense separators (";", "；", "。") to "； ",
// trimming each fragment and dropping empty ones. It is idempotent.
func CleanMeaning(s string) string {
	return strings.TrimSpace(cleanLine(s))
}

// CleanSenses applies CleanMeaning to every line of s independently and
// joins the lines back with "\n".
func CleanSenses(s string) string {
	lines := lineBreakRe.Split(s, -1)
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func cleanLine(line string) string {
	parts := strings.Split(senseSepRe.ReplaceAllString(line, senseSep), senseSep)
	kept := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, senseJoiner)
}

// findPosTags returns the non-overlapping part-of-speech tags in runes, in order.
// A tag must be a whole word: letters, digits, marks and connector
// punctuation on either side disqualify it, so "名词n" carries no tag.
func findPosTags(runes []rune) []posMatch {
	var out []posMatch
	for i := 0; i < len(runes); {
		if !isWordRune(runes[i]) {
			i++
			continue
		}
		j := i
		for j < len(runes) && isWordRune(runes[j]) {
			j++
		}
		if isPosToken(runes[i:j]) {
			end := j
			if end < len(runes) && runes[end] == '.' {
				end++
			}
			out = append(out, posMatch{start: i, end: end})
			i = end
			continue
		}
		i = j
	}
	return out
}

func isPosToken(word []rune) bool {
	if len(word) > 4 {
		return false
	}
	w := string(word)
	for _, tok := range posTokens {
		if asciiEqualFold(w, tok) {
			return true
		}
	}
	return false
}

func asciiEqualFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) || unicode.Is(unicode.Pc, r)
}

func utf16Len(runes []rune) int {
	n := 0
	for _, r := range runes {
		n += utf16.RuneLen(r)
	}
	return n
}
