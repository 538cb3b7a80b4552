package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jacksmith/promptstore/preprocess"
	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [text]",
	Short: "Validate and clean filler text",
	Long: `Run the text preprocessor over the given text, or over stdin when
no argument is given. Prints the cleaned text; exits non-zero when a check
rejects the text.

Examples:
  promptstore clean "  some   user input  "
  cat input.txt | promptstore clean
  promptstore clean --config preprocess.yaml "some input"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClean,
}

var cleanConfig string

func init() {
	cleanCmd.Flags().StringVar(&cleanConfig, "config", "", "preprocessor config file (.json or .yaml)")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg := preprocess.DefaultConfig()
	if cleanConfig != "" {
		loaded, err := preprocess.LoadConfig(cleanConfig)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	pre, err := preprocess.New(cfg)
	if err != nil {
		return err
	}

	var text string
	if len(args) == 1 {
		text = args[0]
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		text = string(data)
	}

	ok, cleaned := pre.Preprocess(text)
	if !ok {
		return fmt.Errorf("text rejected by preprocessor (got %q)", cleaned)
	}
	fmt.Println(cleaned)
	return nil
}
