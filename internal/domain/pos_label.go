package domain

import "strings"

var tagLabels = map[string]string{
	"n.":    "名词",
	"v.":    "动词",
	"vt.":   "及物动词",
	"vi.":   "不及物动词",
	"adj.":  "形容词",
	"adv.":  "副词",
	"prep.": "介词",
	"conj.": "连词",
	"pron.": "代词",
	"num.":  "数词",
	"art.":  "冠词",
	"int.":  "感叹词",
	"名":     "名词",
	"形动":    "形容动词",
	"自五":    "自动词（五段）",
	"他五":    "他动词（五段）",
	"他サ":    "他动词（サ变）",
	"自サ":    "自动词（サ变）",
	"自一":    "自动词（一段）",
	"他一":    "他动词（一段）",
}

// PartOfSpeechLabel returns the Chinese display label for a part-of-speech tag.
// Tags without a known label are returned unchanged.
func PartOfSpeechLabel(tag string) string {
	t := strings.TrimSpace(tag)
	if label, ok := tagLabels[strings.ToLower(t)]; ok {
		return label
	}
	return t
}
