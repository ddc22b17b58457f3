package domain

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeText prepares text for storage and comparison:
//   - folds compatibility forms (full-width Latin, half-width kana) via NFKC
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses runs of whitespace into one space
//
// Library names are compared in this form.
func NormalizeText(text string) string {
	text = strings.TrimSpace(norm.NFKC.String(text))
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)
	return strings.Join(strings.Fields(text), " ")
}
