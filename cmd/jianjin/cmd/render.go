package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/f3rmion/jianjin/internal/render"
	"github.com/f3rmion/jianjin/internal/words"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var renderCmd = &cobra.Command{
	Use:   "render [words.jsonl]",
	Short: "Render a word list with tone marked pinyin",
	Long: `Render a JSON Lines word list, converting every pinyin field
(words and example sentences) to tone marks and adding dictionary links.

Each line holds one entry:
  {"word":"你好","pinyin":"ni3hao3","definitions":[{"definition":"hello"}]}

A custom text/template can be given with --template; it receives the list of
entries and may use the "pinyin" and "dictlink" functions.

Examples:
  jianjin render words.jsonl
  jianjin render words.jsonl --table --tag hsk1`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

var (
	renderTable    bool
	renderTag      string
	renderTemplate string
)

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().BoolVarP(&renderTable, "table", "t", false, "Print an aligned table instead of the template")
	renderCmd.Flags().StringVar(&renderTag, "tag", "", "Only render entries with this tag")
	renderCmd.Flags().StringVar(&renderTemplate, "template", "", "Template file (default: built-in)")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadSettings()
	if err != nil {
		return err
	}
	defer log.Sync()

	path := cfg.Words
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return errors.New("no word list given and none configured")
	}

	list := words.NewList(log)
	if err := list.LoadFile(path); err != nil {
		return err
	}
	entries := list.Filter(renderTag)
	log.Debug("loaded word list",
		zap.String("path", path),
		zap.Int("entries", list.Size()),
		zap.Int("selected", len(entries)),
	)

	if renderTable {
		return render.Table(cmd.OutOrStdout(), entries)
	}

	src := ""
	tmplPath := cfg.Template
	if renderTemplate != "" {
		tmplPath = renderTemplate
	}
	if tmplPath != "" {
		data, err := os.ReadFile(tmplPath)
		if err != nil {
			return fmt.Errorf("reading template: %w", err)
		}
		src = string(data)
	}

	r, err := render.New(src)
	if err != nil {
		return err
	}
	return r.Render(cmd.OutOrStdout(), entries)
}
