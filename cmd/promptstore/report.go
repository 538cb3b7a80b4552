package main

import (
	"errors"
	"fmt"

	"github.com/jacksmith/promptstore"
	"github.com/jacksmith/promptstore/internal/cli"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Save or check prompt integrity reports",
	Long: `A report records the content hash of every prompt in a folder.
Checking a folder against a saved report detects prompts that were added,
removed, or edited since the report was taken.`,
}

var reportSaveCmd = &cobra.Command{
	Use:   "save <folder> <out>",
	Short: "Save a report of a folder's prompts",
	Long: `Save a {name: hash} report for every prompt in the folder.
The .json extension is appended to the output path if missing.

Example:
  promptstore report save ./prompts prompts-v1`,
	Args: cobra.ExactArgs(2),
	RunE: runReportSave,
}

var reportCheckCmd = &cobra.Command{
	Use:   "check <folder> <report>",
	Short: "Check a folder against a saved report",
	Long: `Reload the folder and compare each prompt's hash against the report.

By default mismatches are listed but the command succeeds; with --strict any
mismatch is an error.

Examples:
  promptstore report check ./prompts prompts-v1
  promptstore report check ./prompts prompts-v1 --strict`,
	Args: cobra.ExactArgs(2),
	RunE: runReportCheck,
}

var reportStrict bool

func init() {
	reportCheckCmd.Flags().BoolVar(&reportStrict, "strict", false, "fail on any mismatch")
	reportCmd.AddCommand(reportSaveCmd)
	reportCmd.AddCommand(reportCheckCmd)
	rootCmd.AddCommand(reportCmd)
}

func runReportSave(cmd *cobra.Command, args []string) error {
	store, err := promptstore.NewFolderStore(args[0])
	if err != nil {
		return err
	}
	if err := store.Load(); err != nil {
		return err
	}
	if err := store.SaveReport(args[1]); err != nil {
		return err
	}
	fmt.Printf("saved report for %d prompt(s)\n", len(store.Prompts()))
	return nil
}

func runReportCheck(cmd *cobra.Command, args []string) error {
	store, err := promptstore.NewFolderStore(args[0])
	if err != nil {
		return err
	}

	mismatches, err := store.LoadFromReport(args[1], reportStrict)
	var ierr *promptstore.IntegrityError
	if err != nil && !errors.As(err, &ierr) {
		return err
	}

	if len(mismatches) == 0 {
		fmt.Println(cli.Green("ok") + ": all prompts match the report")
		return nil
	}

	for _, m := range mismatches {
		fmt.Printf("%s: %s\n", cli.Red(string(m.Kind)), m.Name)
	}
	if err != nil {
		// strict mode: surface the IntegrityError after listing
		return err
	}
	fmt.Printf("%d mismatch(es) tolerated\n", len(mismatches))
	return nil
}
