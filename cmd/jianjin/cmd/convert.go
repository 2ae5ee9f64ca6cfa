package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/f3rmion/jianjin/internal/clipboard"
	"github.com/f3rmion/jianjin/internal/pinyin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var convertCmd = &cobra.Command{
	Use:     "convert [text...]",
	Aliases: []string{"c"},
	Short:   "Convert numbered pinyin to tone marks",
	Long: `Convert numbered pinyin to tone marks. Arguments are joined with
spaces; with no arguments, standard input is converted line by line.

Examples:
  jianjin convert ni3hao3
  jianjin convert "Shuai4ge1, ni3 hao3!"
  cat words.txt | jianjin convert`,
	RunE: runConvert,
}

var convertCopy bool

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().BoolVar(&convertCopy, "copy", false, "Copy the result to the clipboard")
}

func runConvert(cmd *cobra.Command, args []string) error {
	_, log, err := loadSettings()
	if err != nil {
		return err
	}
	defer log.Sync()

	var out strings.Builder
	if len(args) > 0 {
		out.WriteString(pinyin.Transliterate(strings.Join(args, " ")))
		out.WriteString("\n")
	} else {
		n, err := convertLines(cmd.InOrStdin(), &out)
		if err != nil {
			return err
		}
		log.Debug("converted input", zap.Int("lines", n))
	}

	fmt.Fprint(cmd.OutOrStdout(), out.String())

	if convertCopy {
		if err := clipboard.Write(strings.TrimSuffix(out.String(), "\n")); err != nil {
			return fmt.Errorf("copying to clipboard: %w", err)
		}
		log.Info("copied to clipboard")
	}
	return nil
}

// convertLines converts r line by line into w and returns the line count.
func convertLines(r io.Reader, w io.Writer) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	n := 0
	for scanner.Scan() {
		n++
		if _, err := fmt.Fprintln(w, pinyin.Transliterate(scanner.Text())); err != nil {
			return n, err
		}
	}
	if err := scanner.Err(); err != nil {
		return n, fmt.Errorf("reading input: %w", err)
	}
	return n, nil
}
