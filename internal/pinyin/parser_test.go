package pinyin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParserNumbered(t *testing.T) {
	p := NewParser()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"greeting", "你好", "ni3hao3"},
		{"keeps punctuation", "你好!", "ni3hao3!"},
		{"latin passthrough", "abc", "abc"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Numbered(tt.input))
		})
	}
}

func TestParserMarked(t *testing.T) {
	p := NewParser()
	assert.Equal(t, "nǐhǎo", p.Marked("你好"))
}

func TestParserReadings(t *testing.T) {
	p := NewParser()

	readings := p.Readings("中")
	assert.Contains(t, readings, "zhong1")
	assert.Contains(t, readings, "zhong4")

	assert.Nil(t, p.Readings("a"))
	assert.Nil(t, p.Readings(""))
}
