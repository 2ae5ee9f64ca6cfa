package words

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `{"word":"你好","pinyin":"ni3hao3","tags":["greeting"],"definitions":[{"definition":"hello","part_of_speech":"V","example_sentences":[{"sentence":"你好吗","pinyin":"ni3hao3ma5","translation":"how are you"}]}]}

not json
{"pinyin":"wu2"}
{"word":"宝贝","pinyin":"bao3bei4","tags":["family","greeting"]}
{"word":"你好","pinyin":"NI3HAO3","tags":["greeting"]}
`

func TestLoad(t *testing.T) {
	l := NewList(nil)
	require.NoError(t, l.Load(strings.NewReader(sample)))

	assert.Equal(t, 2, l.Size())

	entries := l.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "你好", entries[0].Word)
	assert.Equal(t, "NI3HAO3", entries[0].Pinyin, "later entry replaces earlier one in place")
	assert.Equal(t, "宝贝", entries[1].Word)
}

func TestLookup(t *testing.T) {
	l := NewList(nil)
	require.NoError(t, l.Load(strings.NewReader(sample)))

	e, err := l.Lookup("宝贝")
	require.NoError(t, err)
	assert.Equal(t, "bao3bei4", e.Pinyin)

	_, err = l.Lookup("再见")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0644))

	l := NewList(nil)
	require.NoError(t, l.LoadFile(path))
	assert.Equal(t, 2, l.Size())

	err := NewList(nil).LoadFile(filepath.Join(t.TempDir(), "missing.jsonl"))
	assert.Error(t, err)
}

func TestDisplay(t *testing.T) {
	e := Entry{
		Word:   "你好",
		Pinyin: "ni3hao3",
		Definitions: []Definition{{
			Definition: "hello",
			Examples:   []Example{{Sentence: "你好吗", Pinyin: "ni3hao3 ma5"}},
		}},
	}

	d := e.Display()
	assert.Equal(t, "nǐhǎo", d.Pinyin)
	assert.Equal(t, "nǐhǎo ma5", d.Definitions[0].Examples[0].Pinyin)

	// The original is not modified.
	assert.Equal(t, "ni3hao3", e.Pinyin)
	assert.Equal(t, "ni3hao3 ma5", e.Definitions[0].Examples[0].Pinyin)
}

func TestFilterAndTags(t *testing.T) {
	l := NewList(nil)
	require.NoError(t, l.Load(strings.NewReader(sample)))

	assert.Equal(t, []string{"greeting", "family"}, l.Tags())
	assert.Len(t, l.Filter(""), 2)

	family := l.Filter("family")
	require.Len(t, family, 1)
	assert.Equal(t, "宝贝", family[0].Word)
	assert.Empty(t, l.Filter("food"))
}

func TestPartOfSpeechName(t *testing.T) {
	assert.Equal(t, "verb", PartVerb.Name())
	assert.Equal(t, "preposition", PartPreposition.Name())
	assert.Equal(t, "none", PartNone.Name())
	assert.Equal(t, "none", PartOfSpeech("").Name())
}
