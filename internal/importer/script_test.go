package importer

import "testing"

func TestIsNonLatinScript(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word string
		want bool
	}{
		{"あいさつ挨拶", true},
		{"カード", true},
		{"東京", true},
		{"hello世界", true},
		{"abundance", false},
		{"well-known", false},
		{"don't", false},
		{"한국어", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsNonLatinScript(tt.word); got != tt.want {
			t.Errorf("IsNonLatinScript(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestExtractKana(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		word string
		want string
	}{
		{"kana then kanji", "あいさつ挨拶", "あいさつ"},
		{"bracketed kanji", "あいさつ【挨拶】", "あいさつ"},
		{"space separated kanji", "たべる 食べる", "たべる"},
		{"katakana with long mark", "  コーヒー  ", "コーヒー"},
		{"kanji first is unchanged", "食べる", "食べる"},
		{"no kana is unchanged", "東京", "東京"},
		{"latin is unchanged", "abc", "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExtractKana(tt.word); got != tt.want {
				t.Errorf("ExtractKana(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}
