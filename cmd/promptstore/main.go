// Package main is the entry point for the promptstore CLI.
package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/promptstore/internal/cli"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "promptstore",
	Short: "promptstore - manage prompt files for LLM applications",
	Long: `promptstore manages named prompt text kept outside source code.

Prompts live in a folder tree of .txt/.md files or a flat JSON file and are
addressed by name: the file prompts/agents/summarize.txt is the prompt
"agents/summarize". Placeholders like {{topic}} in prompt text are filled
with runtime values.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	// Show help when no subcommand is provided
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.SetVersionTemplate("promptstore version {{.Version}}\n")
}
