package main

import (
	"fmt"
	"strings"

	"github.com/jacksmith/promptstore"
	"github.com/jacksmith/promptstore/fill"
	"github.com/spf13/cobra"
)

var fillCmd = &cobra.Command{
	Use:   "fill <folder> <name> [values...]",
	Short: "Fill a prompt's placeholders and print the result",
	Long: `Fill the {{placeholder}} tokens in a prompt.

Positional values are matched to placeholders in order of first appearance.
With --set, values are matched to placeholders by name instead.

Examples:
  promptstore fill ./prompts greeting "Bo"
  promptstore fill ./prompts greeting --set name=Bo
  promptstore fill ./prompts draft --set title=Intro --lenient`,
	Args: cobra.MinimumNArgs(2),
	RunE: runFill,
}

var (
	fillSet     []string
	fillLenient bool
)

func init() {
	fillCmd.Flags().StringArrayVar(&fillSet, "set", nil, "named substitution key=value (can be repeated)")
	fillCmd.Flags().BoolVar(&fillLenient, "lenient", false, "leave unresolved placeholders untouched")
	rootCmd.AddCommand(fillCmd)
}

func runFill(cmd *cobra.Command, args []string) error {
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
	values := args[2:]

	if len(fillSet) > 0 {
		if len(values) > 0 {
			return fmt.Errorf("cannot mix positional values with --set")
		}
		subs := make(map[string]string, len(fillSet))
		for _, pair := range fillSet {
			key, value, ok := strings.Cut(pair, "=")
			if !ok || key == "" {
				return fmt.Errorf("invalid --set %q (want key=value)", pair)
			}
			subs[key] = value
		}

		var result string
		if fillLenient {
			result = fill.FillPromptLenient(text, subs)
		} else {
			result, err = fill.FillPrompt(text, subs)
			if err != nil {
				return err
			}
		}
		fmt.Println(result)
		return nil
	}

	result, err := fill.FillList(text, values)
	if err != nil {
		return err
	}
	fmt.Println(result)
	return nil
}
