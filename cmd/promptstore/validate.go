package main

import (
	"fmt"

	"github.com/jacksmith/promptstore"
	"github.com/jacksmith/promptstore/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file.json>",
	Short: "Validate a JSON prompt file",
	Long: `Check that a JSON prompt file is a flat object mapping non-empty
string names to string prompt text.

Example:
  promptstore validate ./prompts.json`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	if err := promptstore.ValidateJSON(args[0]); err != nil {
		return err
	}
	fmt.Println(cli.Green("ok") + ": " + args[0] + " is a valid prompt file")
	return nil
}
