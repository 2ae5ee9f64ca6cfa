// Package pinyin converts numbered Hanyu Pinyin ("ni3hao3") into its tone
// marked form ("nǐhǎo") and suggests numbered readings for Chinese characters.
//
// The conversion functions are pure and safe for concurrent use.
package pinyin

import (
	"strings"
	"unicode"
	"unicode/utf8"

	gopinyin "github.com/mozillazg/go-pinyin"
)

// Parser suggests numbered pinyin for Chinese characters.
type Parser struct {
	args      gopinyin.Args
	heteronym gopinyin.Args
}

// NewParser creates a new pinyin parser.
func NewParser() *Parser {
	args := gopinyin.NewArgs()
	args.Style = gopinyin.Tone3 // Tone digit after the syllable: hao3

	heteronym := gopinyin.NewArgs()
	heteronym.Style = gopinyin.Tone3
	heteronym.Heteronym = true // Return all possible readings

	return &Parser{args: args, heteronym: heteronym}
}

// Numbered returns the numbered pinyin for every Han character in text, using
// the most common reading of each. Other runes are kept as they are, so
// "你好!" becomes "ni3hao3!".
func (p *Parser) Numbered(text string) string {
	var result strings.Builder
	for _, r := range text {
		if !unicode.Is(unicode.Han, r) {
			result.WriteRune(r)
			continue
		}
		readings := gopinyin.SinglePinyin(r, p.args)
		if len(readings) == 0 {
			result.WriteRune(r)
			continue
		}
		result.WriteString(readings[0])
	}
	return result.String()
}

// Readings returns all numbered readings for a single character.
func (p *Parser) Readings(char string) []string {
	r, size := utf8.DecodeRuneInString(char)
	if size == 0 || !unicode.Is(unicode.Han, r) {
		return nil
	}
	return gopinyin.SinglePinyin(r, p.heteronym)
}

// Marked returns the tone marked form of Numbered(text).
func (p *Parser) Marked(text string) string {
	return Transliterate(p.Numbered(text))
}
