package main

import (
	"os"

	"github.com/jacksmith/promptstore"
	"github.com/jacksmith/promptstore/internal/cli"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list <folder>",
	Short: "List the prompts in a folder",
	Long: `List every prompt found in a folder tree.

Examples:
  promptstore list ./prompts
  promptstore list ./prompts --hashes`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

var listHashes bool

func init() {
	listCmd.Flags().BoolVar(&listHashes, "hashes", false, "include content hashes")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	store, err := promptstore.NewFolderStore(args[0])
	if err != nil {
		return err
	}
	if err := store.Load(); err != nil {
		return err
	}

	names, err := store.Names()
	if err != nil {
		return err
	}

	table := cli.NewTable()
	for _, name := range names {
		if listHashes {
			text, err := store.Get(name)
			if err != nil {
				return err
			}
			table.AddRow(name, cli.Gray(promptstore.HashText(text)))
		} else {
			table.AddRow(name)
		}
	}
	table.Render(os.Stdout)
	return nil
}
