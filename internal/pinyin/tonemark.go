package pinyin

import (
	"strings"

	"github.com/samber/lo"
)

// Syllable is a part decomposed into the text before the syllable, the
// syllable letters and the trailing tone.
type Syllable struct {
	Prefix  string
	Letters string
	Tone    Tone
}

// Transliterate converts numbered pinyin such as "ni3hao3" into tone marked
// pinyin ("nǐhǎo"). Text that does not look like a numbered syllable is
// returned unchanged.
func Transliterate(text string) string {
	return TransliterateWith(Diacritics, text)
}

// TransliterateWith is Transliterate using the given diacritic table.
func TransliterateWith(table DiacriticTable, text string) string {
	parts := lo.Map(Split(text), func(part string, _ int) string {
		return ConvertPartWith(table, part)
	})
	return strings.Join(parts, "")
}

// Split breaks text into parts, each ending right after a digit. Any digit
// closes a part, not only tone digits. Joining the parts yields text again.
func Split(text string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(text); i++ {
		if isDigit(text[i]) {
			parts = append(parts, text[start:i+1])
			start = i + 1
		}
	}
	if start < len(text) {
		parts = append(parts, text[start:])
	}
	return parts
}

// PickVowel returns the index of the letter in syllable that takes the tone
// mark, or -1 if the syllable has no vowel. The first of a, e, o, u or v wins;
// otherwise the first i is used.
func PickVowel(syllable string) int {
	first := -1
	for i := 0; i < len(syllable); i++ {
		c := syllable[i]
		if isStrongVowel(c) {
			return i
		}
		if first < 0 && isVowel(c) {
			first = i
		}
	}
	return first
}

// MatchSyllable splits part into prefix, letters and tone when part ends in
// one or more ASCII letters followed by a tone digit 1-4.
func MatchSyllable(part string) (Syllable, bool) {
	n := len(part)
	if n < 2 {
		return Syllable{}, false
	}
	tone := toneFromDigit(part[n-1])
	if tone == ToneUnknown {
		return Syllable{}, false
	}

	start := n - 1
	for start > 0 && isLetter(part[start-1]) {
		start--
	}
	if start == n-1 {
		return Syllable{}, false
	}

	return Syllable{
		Prefix:  part[:start],
		Letters: part[start : n-1],
		Tone:    tone,
	}, true
}

// ConvertPart converts a single part produced by Split.
func ConvertPart(part string) string {
	return ConvertPartWith(Diacritics, part)
}

// ConvertPartWith converts a single part using the given diacritic table.
// Parts without a numbered syllable, or whose syllable has no vowel, are
// returned unchanged, tone digit included.
func ConvertPartWith(table DiacriticTable, part string) string {
	syl, ok := MatchSyllable(part)
	if !ok {
		return part
	}

	idx := PickVowel(syl.Letters)
	if idx < 0 {
		return part
	}

	marked, ok := table.Mark(rune(syl.Letters[idx]), syl.Tone)
	if !ok {
		return part
	}

	var b strings.Builder
	b.Grow(len(part) + 2)
	b.WriteString(syl.Prefix)
	b.WriteString(syl.Letters[:idx])
	b.WriteRune(marked)
	b.WriteString(syl.Letters[idx+1:])
	return b.String()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isStrongVowel(c byte) bool {
	return strings.IndexByte("aeouvAEOUV", c) >= 0
}

func isVowel(c byte) bool {
	return strings.IndexByte("aeiouvAEIOUV", c) >= 0
}
