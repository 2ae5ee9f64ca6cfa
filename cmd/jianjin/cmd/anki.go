package cmd

import (
	"fmt"
	"strings"

	"github.com/f3rmion/jianjin/internal/anki"
	"github.com/f3rmion/jianjin/internal/pinyin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var ankiCmd = &cobra.Command{
	Use:   "anki",
	Short: "Work with Anki decks",
	Long:  `Commands for inspecting Anki .apkg files and converting their pinyin fields.`,
}

var ankiInspectCmd = &cobra.Command{
	Use:   "inspect <file.apkg>",
	Short: "Inspect an Anki deck",
	Long: `Inspect an Anki .apkg file to see its decks, note types and fields,
with a preview of each note's pinyin field after conversion.

Example:
  jianjin anki inspect chinese.apkg`,
	Args: cobra.ExactArgs(1),
	RunE: runAnkiInspect,
}

var ankiConvertCmd = &cobra.Command{
	Use:   "convert <file.apkg>",
	Short: "Convert a numbered pinyin field to tone marks",
	Long: `Rewrite a field holding numbered pinyin in every note of a deck and
write the result to a new .apkg file. The input file is not modified.

Examples:
  jianjin anki convert chinese.apkg -o chinese-marked.apkg
  jianjin anki convert chinese.apkg --field Reading -o out.apkg`,
	Args: cobra.ExactArgs(1),
	RunE: runAnkiConvert,
}

var (
	ankiInspectLimit int
	ankiField        string
	ankiOutput       string
)

func init() {
	rootCmd.AddCommand(ankiCmd)
	ankiCmd.AddCommand(ankiInspectCmd)
	ankiCmd.AddCommand(ankiConvertCmd)

	ankiCmd.PersistentFlags().StringVarP(&ankiField, "field", "f", "", "Field holding numbered pinyin (default from config: Pinyin)")
	ankiInspectCmd.Flags().IntVarP(&ankiInspectLimit, "limit", "n", 5, "Number of sample notes to show")
	ankiConvertCmd.Flags().StringVarP(&ankiOutput, "output", "o", "", "Output .apkg file")
	ankiConvertCmd.MarkFlagRequired("output")
}

func ankiFieldName(configured string) string {
	if ankiField != "" {
		return ankiField
	}
	return configured
}

func runAnkiInspect(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadSettings()
	if err != nil {
		return err
	}
	defer log.Sync()

	out := cmd.OutOrStdout()
	path := args[0]
	field := ankiFieldName(cfg.Field)

	pkg, err := anki.OpenPackage(path)
	if err != nil {
		return fmt.Errorf("opening package: %w", err)
	}
	defer pkg.Close()

	fmt.Fprint(out, pkg.Summary())
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Field Details:")
	for _, model := range pkg.Models {
		fmt.Fprintf(out, "  %s:\n", model.Name)
		for _, f := range model.Fields {
			fmt.Fprintf(out, "    [%d] %s\n", f.Ord, f.Name)
		}
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Sample Notes (first %d, field %q):\n", ankiInspectLimit, field)
	for i, note := range pkg.Notes {
		if i >= ankiInspectLimit {
			break
		}
		value := pkg.FieldValue(note, field)
		if value == "" {
			fmt.Fprintf(out, "  %d: (no %s) %s\n", note.ID, field, strings.Join(note.Fields, " | "))
			continue
		}
		fmt.Fprintf(out, "  %d: %s → %s\n", note.ID, value, pinyin.Transliterate(value))
	}

	return nil
}

func runAnkiConvert(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadSettings()
	if err != nil {
		return err
	}
	defer log.Sync()

	path := args[0]
	field := ankiFieldName(cfg.Field)

	pkg, err := anki.OpenPackage(path)
	if err != nil {
		return fmt.Errorf("opening package: %w", err)
	}
	defer pkg.Close()

	changed, err := pkg.ConvertField(field, pinyin.Transliterate)
	if err != nil {
		return fmt.Errorf("converting field: %w", err)
	}
	log.Info("converted notes",
		zap.String("field", field),
		zap.Int("changed", changed),
		zap.Int("notes", len(pkg.Notes)),
	)

	if err := pkg.SaveAs(ankiOutput); err != nil {
		return fmt.Errorf("saving package: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Converted %d of %d notes → %s\n", changed, len(pkg.Notes), ankiOutput)
	return nil
}
