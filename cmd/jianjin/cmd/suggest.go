package cmd

import (
	"fmt"
	"strings"

	"github.com/f3rmion/jianjin/internal/pinyin"
	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <hanzi>",
	Short: "Suggest numbered pinyin for Chinese characters",
	Long: `Suggest the numbered pinyin for a word, as you would type it
into a word list, together with its tone marked form.

Example:
  jianjin suggest 你好
  jianjin suggest 中 --all`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSuggest,
}

var suggestAll bool

func init() {
	rootCmd.AddCommand(suggestCmd)
	suggestCmd.Flags().BoolVarP(&suggestAll, "all", "a", false, "Show every reading of each character")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	parser := pinyin.NewParser()
	out := cmd.OutOrStdout()
	input := strings.Join(args, " ")

	numbered := parser.Numbered(input)
	fmt.Fprintf(out, "%s\t%s\t%s\n", input, numbered, pinyin.Transliterate(numbered))

	if !suggestAll {
		return nil
	}

	for _, r := range input {
		readings := parser.Readings(string(r))
		if len(readings) == 0 {
			continue
		}
		marked := make([]string, len(readings))
		for i, reading := range readings {
			marked[i] = pinyin.Transliterate(reading)
		}
		fmt.Fprintf(out, "  %c: %s (%s)\n", r, strings.Join(readings, ", "), strings.Join(marked, ", "))
	}
	return nil
}
