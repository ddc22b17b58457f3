package domain

import "strings"

// SourceFormat identifies the container format of an imported file.
type SourceFormat string

const (
	SourceFormatText SourceFormat = "txt"
	SourceFormatCSV  SourceFormat = "csv"
	SourceFormatTSV  SourceFormat = "tsv"
	SourceFormatXLS  SourceFormat = "xls"
	SourceFormatXLSX SourceFormat = "xlsx"
)

func (f SourceFormat) String() string { return string(f) }

func (f SourceFormat) IsValid() bool {
	switch f {
	case SourceFormatText, SourceFormatCSV, SourceFormatTSV, SourceFormatXLS, SourceFormatXLSX:
		return true
	}
	return false
}

// IsDelimited reports whether the format is delimiter-separated text.
func (f SourceFormat) IsDelimited() bool {
	return f == SourceFormatCSV || f == SourceFormatTSV
}

// IsSpreadsheet reports whether the format is a workbook.
func (f SourceFormat) IsSpreadsheet() bool {
	return f == SourceFormatXLS || f == SourceFormatXLSX
}

// PartOfSpeech represents the coarse grammatical category of a tag.
type PartOfSpeech string

const (
	PartOfSpeechNoun         PartOfSpeech = "NOUN"
	PartOfSpeechVerb         PartOfSpeech = "VERB"
	PartOfSpeechAdjective    PartOfSpeech = "ADJECTIVE"
	PartOfSpeechAdverb       PartOfSpeech = "ADVERB"
	PartOfSpeechPronoun      PartOfSpeech = "PRONOUN"
	PartOfSpeechPreposition  PartOfSpeech = "PREPOSITION"
	PartOfSpeechConjunction  PartOfSpeech = "CONJUNCTION"
	PartOfSpeechInterjection PartOfSpeech = "INTERJECTION"
	PartOfSpeechNumeral      PartOfSpeech = "NUMERAL"
	PartOfSpeechArticle      PartOfSpeech = "ARTICLE"
	PartOfSpeechAuxiliary    PartOfSpeech = "AUXILIARY"
	PartOfSpeechOther        PartOfSpeech = "OTHER"
)

func (p PartOfSpeech) String() string { return string(p) }

func (p PartOfSpeech) IsValid() bool {
	switch p {
	case PartOfSpeechNoun, PartOfSpeechVerb, PartOfSpeechAdjective, PartOfSpeechAdverb,
		PartOfSpeechPronoun, PartOfSpeechPreposition, PartOfSpeechConjunction,
		PartOfSpeechInterjection, PartOfSpeechNumeral, PartOfSpeechArticle,
		PartOfSpeechAuxiliary, PartOfSpeechOther:
		return true
	}
	return false
}

var tagCategories = map[string]PartOfSpeech{
	"n":    PartOfSpeechNoun,
	"v":    PartOfSpeechVerb,
	"vt":   PartOfSpeechVerb,
	"vi":   PartOfSpeechVerb,
	"adj":  PartOfSpeechAdjective,
	"adv":  PartOfSpeechAdverb,
	"pron": PartOfSpeechPronoun,
	"prep": PartOfSpeechPreposition,
	"conj": PartOfSpeechConjunction,
	"int":  PartOfSpeechInterjection,
	"num":  PartOfSpeechNumeral,
	"art":  PartOfSpeechArticle,
	"aux":  PartOfSpeechAuxiliary,
	"名":    PartOfSpeechNoun,
	"形动":   PartOfSpeechAdjective,
	"自五":   PartOfSpeechVerb,
	"他五":   PartOfSpeechVerb,
	"自サ":   PartOfSpeechVerb,
	"他サ":   PartOfSpeechVerb,
	"自一":   PartOfSpeechVerb,
	"他一":   PartOfSpeechVerb,
}

// PartOfSpeechFromTag maps a dictionary tag such as "vt." or "自五" to its category.
// Blank input returns ""; unknown tags return PartOfSpeechOther.
func PartOfSpeechFromTag(tag string) PartOfSpeech {
	key := strings.ToLower(strings.TrimSuffix(strings.TrimSpace(tag), "."))
	if key == "" {
		return ""
	}
	if p, ok := tagCategories[key]; ok {
		return p
	}
	return PartOfSpeechOther
}
