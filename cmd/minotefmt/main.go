package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/acckion/minotefmt/internal/core"
)

var verboseInfo bool
var verboseDebug bool
var verboseTrace bool

var rootCmd = &cobra.Command{
	Use:   "minotefmt",
	Short: "minotefmt converts notes between the MiNote markup dialect and Markdown",
	Long: `minotefmt parses the tag-based markup MiNote clients persist, rebuilds it
canonically, and bridges it to Markdown. It also verifies that a note
survives a parse/generate round trip unchanged.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// The most verbose level wins when multiple flags are passed.
		if verboseInfo {
			core.CurrentLogger().SetVerboseLevel(core.VerboseInfo)
		}
		if verboseDebug {
			core.CurrentLogger().SetVerboseLevel(core.VerboseDebug)
		}
		if verboseTrace {
			core.CurrentLogger().SetVerboseLevel(core.VerboseTrace)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseInfo, "v", "", false, "enable verbose info output")
	rootCmd.PersistentFlags().BoolVarP(&verboseDebug, "vv", "", false, "enable verbose debug output")
	rootCmd.PersistentFlags().BoolVarP(&verboseTrace, "vvv", "", false, "enable verbose trace output")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
