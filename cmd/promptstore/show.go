package main

import (
	"fmt"

	"github.com/jacksmith/promptstore"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <folder> <name>",
	Short: "Print a prompt's text",
	Long: `Print the text of one prompt from a folder.

Nested prompts use /-delimited names.

Examples:
  promptstore show ./prompts hello
  promptstore show ./prompts agents/summarize`,
	Args: cobra.ExactArgs(2),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	store, err := promptstore.NewFolderStore(args[0])
	if err != nil {
		return err
	}
	if err := store.Load(); err != nil {
		return err
	}

	text, err := store.Get(args[1])
	if err != nil {
		return err
	}
	fmt.Println(text)
	return nil
}
