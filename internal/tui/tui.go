// Package tui provides an interactive preview of pinyin conversion.
package tui

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/jianjin/internal/dictlink"
	"github.com/f3rmion/jianjin/internal/pinyin"
)

// Clipboard messages
type clearCopiedMsg struct{}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

// CopyFunc writes text to the clipboard.
type CopyFunc func(string) error

// Model is the Bubble Tea model for the preview.
type Model struct {
	input  textinput.Model
	parser *pinyin.Parser
	copy   CopyFunc

	result Result
	copied bool
	err    error

	width int
}

// Result is the conversion of the current input.
type Result struct {
	Input     string
	Output    string
	Parts     []string // Tokenized input
	Hanzi     string   // Han characters found in the input
	Suggested string   // Numbered reading suggested for Hanzi
	Link      string   // Dictionary link for Hanzi
}

// Analyze converts input and, when it contains Chinese characters, suggests
// a reading and dictionary link for them.
func Analyze(parser *pinyin.Parser, input string) Result {
	r := Result{
		Input:  input,
		Output: pinyin.Transliterate(input),
		Parts:  pinyin.Split(input),
	}

	var hanzi strings.Builder
	for _, c := range input {
		if unicode.Is(unicode.Han, c) {
			hanzi.WriteRune(c)
		}
	}
	r.Hanzi = hanzi.String()
	if r.Hanzi != "" {
		r.Link = dictlink.Link(r.Hanzi)
		if parser != nil {
			r.Suggested = parser.Numbered(r.Hanzi)
		}
	}

	return r
}

// New creates a new preview model. copyFn may be nil to disable copying.
func New(parser *pinyin.Parser, copyFn CopyFunc) Model {
	ti := textinput.New()
	ti.Placeholder = "Type numbered pinyin (ni3hao3) or hanzi..."
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 50
	ti.PromptStyle = lipgloss.NewStyle().Foreground(ColorSecondary)
	ti.TextStyle = lipgloss.NewStyle().Foreground(ColorAccent)

	return Model{
		input:  ti,
		parser: parser,
		copy:   copyFn,
	}
}

// Result returns the conversion of the current input.
func (m Model) Result() Result {
	return m.result
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "ctrl+y":
			if m.result.Output == "" {
				return m, nil
			}
			if m.copy == nil {
				m.err = fmt.Errorf("clipboard not available")
				return m, nil
			}
			if err := m.copy(m.result.Output); err != nil {
				m.err = fmt.Errorf("copying: %w", err)
				return m, nil
			}
			m.err = nil
			m.copied = true
			return m, clearCopiedAfter(2 * time.Second)
		}

	case clearCopiedMsg:
		m.copied = false
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != m.result.Input {
		m.result = Analyze(m.parser, value)
		m.err = nil
	}

	return m, cmd
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("简进 jianjin"))
	b.WriteString("  ")
	b.WriteString(subtitleStyle.Render("numbered pinyin → tone marks"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.result.Input != "" {
		var rows []string
		rows = append(rows, row("Pinyin", pinyinStyle.Render(m.result.Output)))
		rows = append(rows, row("Parts", partStyle.Render(strings.Join(quoteAll(m.result.Parts), " "))))
		if m.result.Hanzi != "" {
			rows = append(rows, row("Hanzi", hanziStyle.Render(m.result.Hanzi)))
			if m.result.Suggested != "" {
				rows = append(rows, row("Reading", valueStyle.Render(
					fmt.Sprintf("%s (%s)", m.result.Suggested, pinyin.Transliterate(m.result.Suggested)))))
			}
			rows = append(rows, row("Lookup", valueStyle.Render(m.result.Link)))
		}

		box := boxStyle
		if m.width > 4 {
			box = box.MaxWidth(m.width)
		}
		b.WriteString(box.Render(strings.Join(rows, "\n")))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	if m.copied {
		b.WriteString(copiedStyle.Render("Copied!"))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("ctrl+y copy • esc quit"))
	return b.String()
}

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value)
}

func quoteAll(parts []string) []string {
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = fmt.Sprintf("%q", p)
	}
	return out
}
