// Package words loads word entries (hanzi, numbered pinyin, definitions and
// example sentences) and prepares them for display.
package words

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/f3rmion/jianjin/internal/pinyin"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// ErrNotFound is returned when a word is not in the list.
var ErrNotFound = errors.New("word not found")

// PartOfSpeech is the grammatical category of a definition.
type PartOfSpeech string

const (
	PartNone        PartOfSpeech = " "
	PartNoun        PartOfSpeech = "N"
	PartVerb        PartOfSpeech = "V"
	PartAdjective   PartOfSpeech = "ADJ"
	PartAdverb      PartOfSpeech = "ADV"
	PartPreposition PartOfSpeech = "PREP"
)

// Name returns the long name of the part of speech.
func (p PartOfSpeech) Name() string {
	switch p {
	case PartNoun:
		return "noun"
	case PartVerb:
		return "verb"
	case PartAdjective:
		return "adjective"
	case PartAdverb:
		return "adverb"
	case PartPreposition:
		return "preposition"
	default:
		return "none"
	}
}

// Example is a sentence illustrating a definition.
type Example struct {
	Sentence    string `json:"sentence"`
	Pinyin      string `json:"pinyin"` // Numbered pinyin
	Translation string `json:"translation"`
}

// Definition is one meaning of a word.
type Definition struct {
	Definition   string       `json:"definition"`
	PartOfSpeech PartOfSpeech `json:"part_of_speech,omitempty"`
	Examples     []Example    `json:"example_sentences,omitempty"`
}

// Entry is a vocabulary word.
type Entry struct {
	Word        string       `json:"word"`
	Pinyin      string       `json:"pinyin"` // Numbered pinyin, e.g. "ni3hao3"
	Notes       string       `json:"notes,omitempty"`
	Tags        []string     `json:"tags,omitempty"`
	Confidence  int          `json:"confidence"`
	Definitions []Definition `json:"definitions,omitempty"`
	Related     []string     `json:"related_words,omitempty"`
}

// Display returns a copy of e with every pinyin field in tone marked form.
func (e Entry) Display() Entry {
	out := e
	out.Pinyin = pinyin.Transliterate(e.Pinyin)
	out.Definitions = lo.Map(e.Definitions, func(d Definition, _ int) Definition {
		d.Examples = lo.Map(d.Examples, func(ex Example, _ int) Example {
			ex.Pinyin = pinyin.Transliterate(ex.Pinyin)
			return ex
		})
		return d
	})
	return out
}

// HasTag reports whether the entry carries tag.
func (e Entry) HasTag(tag string) bool {
	return lo.Contains(e.Tags, tag)
}

// List holds word entries in file order.
type List struct {
	entries []*Entry
	index   map[string]*Entry
	logger  *zap.Logger
}

// NewList creates an empty list.
func NewList(logger *zap.Logger) *List {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &List{
		index:  make(map[string]*Entry),
		logger: logger,
	}
}

// LoadFile loads entries from a JSON Lines file.
func (l *List) LoadFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening word file: %w", err)
	}
	defer file.Close()

	if err := l.Load(file); err != nil {
		return fmt.Errorf("reading word file: %w", err)
	}
	return nil
}

// Load reads JSON Lines entries from r. Blank and malformed lines are skipped.
// A later entry for the same word replaces the earlier one.
func (l *List) Load(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			l.logger.Warn("skipping malformed entry", zap.Int("line", lineNum), zap.Error(err))
			continue
		}
		if entry.Word == "" {
			l.logger.Warn("skipping entry without word", zap.Int("line", lineNum))
			continue
		}

		l.Add(entry)
	}
	return scanner.Err()
}

// Add appends entry, replacing any entry for the same word in place.
func (l *List) Add(entry Entry) {
	if existing, ok := l.index[entry.Word]; ok {
		*existing = entry
		return
	}
	e := &entry
	l.entries = append(l.entries, e)
	l.index[e.Word] = e
}

// Lookup returns the entry for word.
func (l *List) Lookup(word string) (*Entry, error) {
	e, ok := l.index[word]
	if !ok {
		return nil, fmt.Errorf("%q: %w", word, ErrNotFound)
	}
	return e, nil
}

// Entries returns the entries in load order.
func (l *List) Entries() []Entry {
	return lo.Map(l.entries, func(e *Entry, _ int) Entry { return *e })
}

// Filter returns the entries carrying tag, or all entries when tag is empty.
func (l *List) Filter(tag string) []Entry {
	if tag == "" {
		return l.Entries()
	}
	return lo.Filter(l.Entries(), func(e Entry, _ int) bool { return e.HasTag(tag) })
}

// Tags returns the distinct tags in first-seen order.
func (l *List) Tags() []string {
	return lo.Uniq(lo.FlatMap(l.entries, func(e *Entry, _ int) []string { return e.Tags }))
}

// Size returns the number of entries.
func (l *List) Size() int {
	return len(l.entries)
}
