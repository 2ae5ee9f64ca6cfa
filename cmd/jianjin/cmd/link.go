package cmd

import (
	"fmt"

	"github.com/f3rmion/jianjin/internal/dictlink"
	"github.com/spf13/cobra"
)

var linkCmd = &cobra.Command{
	Use:   "link <word>...",
	Short: "Print a dictionary lookup link for a word",
	Long: `Print the online dictionary URL for each word.

Example:
  jianjin link 你好`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, word := range args {
			fmt.Fprintln(cmd.OutOrStdout(), dictlink.Link(word))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(linkCmd)
}
