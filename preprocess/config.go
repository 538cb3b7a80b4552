package preprocess

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config selects and tunes the preprocessing steps. Steps always run in a
// fixed order regardless of which are enabled: strip, empty check, letter
// ratio check, whitespace normalization, consecutive-space collapsing,
// ASCII filtering, Unicode normalization, minimum-length check, truncation.
//
// The zero value disables everything; use DefaultConfig for the published
// defaults.
type Config struct {
	// Strip removes leading and trailing whitespace.
	Strip bool `json:"strip" yaml:"strip"`

	// CheckEmpty fails the text if it is empty (after stripping, when
	// Strip is enabled).
	CheckEmpty bool `json:"check_empty" yaml:"check_empty"`

	// CheckLetters fails the text when the ratio of letter characters to
	// total characters falls below PercentageLetters.
	CheckLetters bool `json:"check_letters" yaml:"check_letters"`

	// PercentageLetters is the minimum letter ratio, in (0, 1].
	PercentageLetters float64 `json:"percentage_letters" yaml:"percentage_letters"`

	// SpacesOnly replaces every whitespace character (tabs, newlines, ...)
	// with a single space character.
	SpacesOnly bool `json:"spaces_only" yaml:"spaces_only"`

	// MaxConsecutiveSpaces collapses runs of spaces longer than this down
	// to this many. Zero or negative disables collapsing.
	MaxConsecutiveSpaces int `json:"max_consecutive_spaces" yaml:"max_consecutive_spaces"`

	// ASCIIOnly drops every non-ASCII character.
	ASCIIOnly bool `json:"ascii_only" yaml:"ascii_only"`

	// Normalize applies a Unicode normalization form: "NFC", "NFD",
	// "NFKC" or "NFKD". Empty disables normalization.
	Normalize string `json:"normalize" yaml:"normalize"`

	// MinLength fails the text when it is shorter than this many
	// characters. -1 disables the check.
	MinLength int `json:"min_length" yaml:"min_length"`

	// Truncate clips the text to MaxLength characters.
	Truncate bool `json:"truncate" yaml:"truncate"`

	// MaxLength is the truncation limit. -1 means no limit.
	MaxLength int `json:"max_length" yaml:"max_length"`
}

// DefaultConfig returns the published defaults: strip whitespace, reject
// empty text, normalize all whitespace to spaces and collapse runs longer
// than two. All other checks are off.
func DefaultConfig() Config {
	return Config{
		Strip:                true,
		CheckEmpty:           true,
		CheckLetters:         false,
		PercentageLetters:    0.85,
		SpacesOnly:           true,
		MaxConsecutiveSpaces: 2,
		ASCIIOnly:            false,
		Normalize:            "",
		MinLength:            -1,
		Truncate:             false,
		MaxLength:            -1,
	}
}

// Validate checks the configuration for inconsistent values.
func (c Config) Validate() error {
	if c.CheckLetters && (c.PercentageLetters <= 0 || c.PercentageLetters > 1) {
		return fmt.Errorf("percentage_letters must be in (0, 1], got %v", c.PercentageLetters)
	}
	if c.MaxLength < -1 || c.MaxLength == 0 {
		return fmt.Errorf("max_length must be -1 or a positive integer, got %d", c.MaxLength)
	}
	if c.MinLength < -1 {
		return fmt.Errorf("min_length must be -1 or a non-negative integer, got %d", c.MinLength)
	}
	if c.MinLength > -1 && c.MaxLength > -1 && c.MaxLength < c.MinLength {
		return fmt.Errorf("max_length (%d) must be at least min_length (%d)", c.MaxLength, c.MinLength)
	}
	switch c.Normalize {
	case "", "NFC", "NFD", "NFKC", "NFKD":
	default:
		return fmt.Errorf("invalid normalization form %q: valid forms are NFC, NFD, NFKC, NFKD", c.Normalize)
	}
	return nil
}

// LoadConfig reads a config file in JSON or YAML, chosen by extension
// (.json vs .yaml/.yml). Fields absent from the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read preprocessor config: %w", err)
	}

	switch ext := filepath.Ext(path); ext {
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension %q (want .json, .yaml or .yml)", ext)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
