// Package render formats word entries for the terminal using text templates
// with pinyin and dictionary link filters.
package render

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/f3rmion/jianjin/internal/dictlink"
	"github.com/f3rmion/jianjin/internal/pinyin"
	"github.com/f3rmion/jianjin/internal/words"
	"github.com/mattn/go-runewidth"
)

// DefaultTemplate renders one block per entry.
const DefaultTemplate = `{{range .}}{{.Word}}  {{pinyin .Pinyin}}
  {{dictlink .Word}}
{{- range .Definitions}}
  - {{.Definition}}{{with .PartOfSpeech}}{{if ne .Name "none"}} ({{.Name}}){{end}}{{end}}
{{- range .Examples}}
      {{.Sentence}}
      {{pinyin .Pinyin}}
      {{.Translation}}
{{- end}}
{{- end}}
{{if .Notes}}  {{.Notes}}
{{end}}
{{end}}`

// FuncMap returns the template filters: pinyin converts numbered pinyin to
// tone marks and dictlink builds a dictionary URL from the original word.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"pinyin":   pinyin.Transliterate,
		"dictlink": dictlink.Link,
	}
}

// Renderer renders entries with a template.
type Renderer struct {
	tmpl *template.Template
}

// New parses src with the pinyin filters installed. An empty src selects
// DefaultTemplate.
func New(src string) (*Renderer, error) {
	if src == "" {
		src = DefaultTemplate
	}
	tmpl, err := template.New("entries").Funcs(FuncMap()).Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes entries to w.
func (r *Renderer) Render(w io.Writer, entries []words.Entry) error {
	if err := r.tmpl.Execute(w, entries); err != nil {
		return fmt.Errorf("rendering entries: %w", err)
	}
	return nil
}

// Tone marks are ambiguous width in East Asian locales; pinyin columns are
// always measured as narrow.
var width = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// Table writes one aligned row per entry: word, tone marked pinyin and link.
func Table(w io.Writer, entries []words.Entry) error {
	rows := make([][2]string, len(entries))
	wordWidth, pinyinWidth := 0, 0
	for i, e := range entries {
		rows[i] = [2]string{e.Word, pinyin.Transliterate(e.Pinyin)}
		wordWidth = max(wordWidth, width.StringWidth(rows[i][0]))
		pinyinWidth = max(pinyinWidth, width.StringWidth(rows[i][1]))
	}

	for i, row := range rows {
		line := width.FillRight(row[0], wordWidth) + "  " +
			width.FillRight(row[1], pinyinWidth) + "  " +
			dictlink.Link(entries[i].Word)
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}
