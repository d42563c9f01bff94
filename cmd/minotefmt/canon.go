package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/acckion/minotefmt/internal/markup"
)

func init() {
	rootCmd.AddCommand(canonCmd)
}

var canonCmd = &cobra.Command{
	Use:   "canon [file]",
	Short: "Print the canonical form of a note's markup",
	Long: `Canon normalizes a note's markup without going through the document
tree: legacy image tags become the modern form, attributes sort
alphabetically, boolean and number spellings are unified, whitespace
collapses. Two notes are textually equivalent when their canonical forms
match.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Println(markup.Canonicalize(string(data)))
	},
}
