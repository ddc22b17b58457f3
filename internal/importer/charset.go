package importer

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
)

const (
	charsetUTF8 = "UTF-8"
	bom         = "\uFEFF"
)

// Multibyte CJK charsets in tie-break order. Short CJK input often scores
// higher as a single-byte Latin charset, so these win whenever one of them
// decodes the input cleanly.
var cjkCharsets = []string{"GB-18030", "Big5", "Shift_JIS", "EUC-JP", "EUC-KR"}

// chardet names GB18030 in a form neither index knows.
var charsetAliases = map[string]string{
	"GB-18030": "gb18030",
}

// DecodeText converts raw file bytes to a string. Valid UTF-8 is taken as is;
// anything else goes through statistical detection. Undetectable or
// undecodable input is read as UTF-8 with invalid bytes replaced.
// A leading byte-order mark is dropped. The returned charset names the
// encoding actually used.
func DecodeText(data []byte) (text, charset string) {
	if utf8.Valid(data) {
		return strings.TrimPrefix(string(data), bom), charsetUTF8
	}

	if name := detectCharset(data); name != "" {
		if enc := lookupEncoding(name); enc != nil {
			if out, err := enc.NewDecoder().Bytes(data); err == nil {
				return strings.TrimPrefix(string(out), bom), name
			}
		}
	}

	return strings.TrimPrefix(strings.ToValidUTF8(string(data), "\uFFFD"), bom), charsetUTF8
}

func detectCharset(data []byte) string {
	results, err := chardet.NewTextDetector().DetectAll(data)
	if err != nil || len(results) == 0 {
		return ""
	}

	best := results[0].Charset
	if strings.HasPrefix(best, "UTF-") {
		return best
	}
	if name := cjkCandidate(results, data); name != "" {
		return name
	}
	return best
}

// cjkCandidate returns the most confident CJK result that decodes data
// without replacement characters, or "" if there is none.
func cjkCandidate(results []chardet.Result, data []byte) string {
	picked, pickedRank, pickedConf := "", len(cjkCharsets), 0
	for _, r := range results {
		rank := slices.Index(cjkCharsets, r.Charset)
		if rank < 0 || !decodesCleanly(r.Charset, data) {
			continue
		}
		if picked == "" || r.Confidence > pickedConf || (r.Confidence == pickedConf && rank < pickedRank) {
			picked, pickedRank, pickedConf = r.Charset, rank, r.Confidence
		}
	}
	return picked
}

func decodesCleanly(name string, data []byte) bool {
	enc := lookupEncoding(name)
	if enc == nil {
		return false
	}
	out, err := enc.NewDecoder().Bytes(data)
	return err == nil && !strings.ContainsRune(string(out), utf8.RuneError)
}

// lookupEncoding resolves a charset name through the WHATWG index first and
// the IANA registry second. Unknown names return nil.
func lookupEncoding(name string) encoding.Encoding {
	if alias, ok := charsetAliases[name]; ok {
		name = alias
	}
	if enc, err := htmlindex.Get(name); err == nil {
		return enc
	}
	if enc, err := ianaindex.IANA.Encoding(name); err == nil && enc != nil {
		return enc
	}
	return nil
}
