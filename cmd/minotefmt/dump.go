package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/acckion/minotefmt/internal/markup"
)

func init() {
	rootCmd.AddCommand(dumpCmd)
}

var dumpCmd = &cobra.Command{
	Use:   "dump [file]",
	Short: "Print a note's document tree as YAML",
	Long:  `Dump parses a note and prints the resulting block/inline tree in a flat YAML outline, mainly for debugging conversions.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		out, err := yaml.Marshal(markup.ToOutline(markup.Parse(string(data))))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Print(string(out))
	},
}
