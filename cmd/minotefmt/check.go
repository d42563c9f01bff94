package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/acckion/minotefmt/internal/markup"
	"github.com/acckion/minotefmt/pkg/text"
)

var checkDiff bool

func init() {
	checkCmd.Flags().BoolVarP(&checkDiff, "diff", "d", false, "print a structural diff for failing notes")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check [files]",
	Short: "Verify that notes survive a parse/generate round trip",
	Long: `Check parses each note, regenerates it and compares the result with the
original, first canonically as strings, then structurally as trees. A note
that fails would lose content or formatting when rewritten by this tool.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		failures := 0
		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			source := string(data)
			regenerated := markup.Generate(markup.Parse(source))
			if markup.Equivalent(source, regenerated) {
				color.Green("ok      %s", path)
				continue
			}
			failures++
			color.Red("broken  %s", path)
			if number, got, want := firstDivergence(markup.Canonicalize(regenerated), markup.Canonicalize(source)); number > 0 {
				fmt.Printf("        canonical line %d: %q, want %q\n", number, got, want)
			}
			if checkDiff {
				fmt.Print(markup.DiffDocuments(markup.Parse(source), markup.Parse(regenerated)))
			}
		}
		if failures > 0 {
			fmt.Printf("%d of %d notes failed\n", failures, len(args))
			os.Exit(1)
		}
	},
}

// firstDivergence locates the first canonical line where the regenerated
// note differs from the source. Zero means the texts match line for line.
func firstDivergence(got, want string) (int, string, string) {
	a := text.NewLineIterator(got)
	b := text.NewLineIterator(want)
	for a.HasNext() || b.HasNext() {
		la, _ := a.Next()
		lb, _ := b.Next()
		if la.Text != lb.Text {
			number := la.Number
			if number == 0 {
				number = lb.Number
			}
			return number, la.Text, lb.Text
		}
	}
	return 0, "", ""
}
