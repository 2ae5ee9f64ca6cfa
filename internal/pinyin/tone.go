package pinyin

// Tone represents the four tones of Mandarin plus neutral tone.
type Tone int

const (
	ToneUnknown Tone = 0
	Tone1       Tone = 1 // First tone (high level) - macron
	Tone2       Tone = 2 // Second tone (rising) - acute
	Tone3       Tone = 3 // Third tone (dipping) - caron
	Tone4       Tone = 4 // Fourth tone (falling) - grave
	Tone5       Tone = 5 // Fifth tone (neutral), never marked
)

// Valid reports whether t is one of the four marked tones.
func (t Tone) Valid() bool {
	return t >= Tone1 && t <= Tone4
}

// toneFromDigit maps an ASCII tone digit to its Tone.
func toneFromDigit(b byte) Tone {
	if b < '1' || b > '4' {
		return ToneUnknown
	}
	return Tone(b - '0')
}
