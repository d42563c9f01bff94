package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/acckion/minotefmt/internal/core"
	"github.com/acckion/minotefmt/internal/interop"
	"github.com/acckion/minotefmt/internal/markup"
	"github.com/acckion/minotefmt/pkg/console"
)

var convertTo string
var convertOut string

func init() {
	convertCmd.Flags().StringVarP(&convertTo, "to", "t", "markdown", "target format: markdown or markup")
	convertCmd.Flags().StringVarP(&convertOut, "out", "o", "", "output directory (default: stdout)")
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert [files]",
	Short: "Convert notes between markup and Markdown",
	Long: `Convert reads each file and rewrites it in the target format.
Markup inputs are parsed leniently; Markdown inputs are imported with the
mapping described in the documentation. Without --out the result goes to
stdout.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if convertTo != "markdown" && convertTo != "markup" {
			fmt.Printf("Unknown target format %q\n", convertTo)
			os.Exit(1)
		}

		var progress *console.Progress
		if convertOut != "" && len(args) > 1 {
			progress = console.NewProgress(len(args))
		}
		for _, path := range args {
			if err := convertFile(path); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			if progress != nil {
				progress.Step(path)
			}
		}
		if progress != nil {
			progress.Finish(fmt.Sprintf("Converted %d notes", len(args)))
		}
	},
}

func convertFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var output string
	var ext string
	if convertTo == "markdown" {
		output = interop.ToMarkdown(markup.Parse(string(data))) + "\n"
		ext = ".md"
	} else {
		doc := interop.FromMarkdown(string(data))
		output = markup.Generate(doc)
		ext = ".note"
		if core.CurrentConfig().Convert.Verify && !markup.StructurallyEqual(markup.Parse(output), doc) {
			core.CurrentLogger().Warnf("%s: generated markup does not re-parse to the imported tree", path)
		}
	}

	if convertOut == "" {
		fmt.Print(output)
		return nil
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ext
	return os.WriteFile(filepath.Join(convertOut, name), []byte(output), 0644)
}
