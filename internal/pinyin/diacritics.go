package pinyin

// DiacriticTable maps a base vowel letter to its four toned forms, indexed by
// tone minus one. The letter v stands in for ü.
type DiacriticTable map[rune][4]rune

// Diacritics is the standard Hanyu Pinyin tone mark table.
var Diacritics = DiacriticTable{
	'a': {'ā', 'á', 'ǎ', 'à'},
	'A': {'Ā', 'Á', 'Ǎ', 'À'},
	'e': {'ē', 'é', 'ě', 'è'},
	'E': {'Ē', 'É', 'Ě', 'È'},
	'i': {'ī', 'í', 'ǐ', 'ì'},
	'I': {'Ī', 'Í', 'Ǐ', 'Ì'},
	'o': {'ō', 'ó', 'ǒ', 'ò'},
	'O': {'Ō', 'Ó', 'Ǒ', 'Ò'},
	'u': {'ū', 'ú', 'ǔ', 'ù'},
	'U': {'Ū', 'Ú', 'Ǔ', 'Ù'},
	'v': {'ǖ', 'ǘ', 'ǚ', 'ǜ'},
	'V': {'Ǖ', 'Ǘ', 'Ǚ', 'Ǜ'},
}

// Mark returns the toned form of vowel. It reports false when the vowel is
// not in the table or the tone is not one of the four marked tones.
func (d DiacriticTable) Mark(vowel rune, t Tone) (rune, bool) {
	if !t.Valid() {
		return 0, false
	}
	forms, ok := d[vowel]
	if !ok {
		return 0, false
	}
	return forms[t-1], true
}
