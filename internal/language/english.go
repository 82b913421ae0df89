// Package language holds the heuristic used to keep English posts only.
package language

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	minDecidableLength = 10
	minCommonWords     = 2
	maxForeignRatio    = 0.2
)

var commonWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`the be to of and a in that have i it for not on with he as
		you do at this but his by from they we say her she or an will my one all would there
		their what`) {
		commonWords[w] = struct{}{}
	}
}

var foreignScripts = []*unicode.RangeTable{
	unicode.Han,
	unicode.Hiragana,
	unicode.Katakana,
	unicode.Cyrillic,
	unicode.Arabic,
}

// English classifies text as likely English.
type English struct{}

// IsLikelyTargetLanguage is permissive: short or ambiguous text passes,
// only text dominated by non-Latin scripts is rejected.
func (English) IsLikelyTargetLanguage(text string) bool {
	trimmed := strings.TrimSpace(text)
	if utf8.RuneCountInString(trimmed) < minDecidableLength {
		return true
	}

	if countCommonWords(trimmed) >= minCommonWords {
		return true
	}

	total := utf8.RuneCountInString(text)
	foreign := 0
	for _, r := range text {
		if unicode.In(r, foreignScripts...) {
			foreign++
		}
	}
	return float64(foreign)/float64(total) <= maxForeignRatio
}

func countCommonWords(text string) int {
	seen := make(map[string]struct{})
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
	for _, w := range words {
		if _, ok := commonWords[w]; ok {
			seen[w] = struct{}{}
		}
	}
	return len(seen)
}
