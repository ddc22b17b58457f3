package importer

import (
	"regexp"
	"strings"
)

var (
	cjkRe       = regexp.MustCompile(`[\x{3040}-\x{309F}\x{30A0}-\x{30FF}\x{4E00}-\x{9FFF}]`)
	latinWordRe = regexp.MustCompile(`^[a-zA-Z]+(?:[-'][a-zA-Z]+)*$`)
	// Leading kana run, optionally followed by a 【kanji】 gloss or a space-separated kanji spelling.
	kanaHeadRe = regexp.MustCompile(`^([\x{3040}-\x{309F}\x{30A0}-\x{30FF}ー]+)(?:【.+】|\s+[\x{4E00}-\x{9FFF}]+)?`)
)

// IsNonLatinScript reports whether word contains hiragana, katakana or CJK
// ideographs and is not a plain Latin word.
func IsNonLatinScript(word string) bool {
	return cjkRe.MatchString(word) && !latinWordRe.MatchString(word)
}

// ExtractKana returns the leading kana reading of a Japanese headword such as
// "あいさつ【挨拶】". Words without a leading kana run are returned unchanged.
func ExtractKana(word string) string {
	m := kanaHeadRe.FindStringSubmatch(strings.TrimSpace(word))
	if m == nil {
		return word
	}
	return m[1]
}
