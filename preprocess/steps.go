package preprocess

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Step is one preprocessing stage. It returns the (possibly transformed)
// text and whether processing may continue; a false result stops the
// pipeline with the text as of this step.
type Step func(text string) (bool, string)

func stripStep(text string) (bool, string) {
	return true, strings.TrimSpace(text)
}

func checkEmptyStep(text string) (bool, string) {
	if text == "" {
		return false, text
	}
	return true, text
}

// checkLettersStep fails text whose letter ratio is below minRatio.
func checkLettersStep(minRatio float64) Step {
	return func(text string) (bool, string) {
		total := 0
		letters := 0
		for _, r := range text {
			total++
			if unicode.IsLetter(r) {
				letters++
			}
		}
		if total == 0 || float64(letters)/float64(total) < minRatio {
			return false, text
		}
		return true, text
	}
}

// spacesOnlyStep replaces each whitespace character with a single space.
func spacesOnlyStep(text string) (bool, string) {
	return true, strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, text)
}

// maxConsecutiveSpacesStep collapses runs of spaces longer than max down to
// max.
func maxConsecutiveSpacesStep(max int) Step {
	return func(text string) (bool, string) {
		var b strings.Builder
		b.Grow(len(text))
		run := 0
		for _, r := range text {
			if r == ' ' {
				run++
				if run > max {
					continue
				}
			} else {
				run = 0
			}
			b.WriteRune(r)
		}
		return true, b.String()
	}
}

func asciiOnlyStep(text string) (bool, string) {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r < utf8.RuneSelf {
			b.WriteRune(r)
		}
	}
	return true, b.String()
}

// normalizeStep applies the named Unicode normalization form. The form has
// been validated by Config.Validate.
func normalizeStep(form string) Step {
	var f norm.Form
	switch form {
	case "NFC":
		f = norm.NFC
	case "NFD":
		f = norm.NFD
	case "NFKC":
		f = norm.NFKC
	case "NFKD":
		f = norm.NFKD
	}
	return func(text string) (bool, string) {
		return true, f.String(text)
	}
}

func minLengthStep(min int) Step {
	return func(text string) (bool, string) {
		if utf8.RuneCountInString(text) < min {
			return false, text
		}
		return true, text
	}
}

func truncateStep(max int) Step {
	return func(text string) (bool, string) {
		if utf8.RuneCountInString(text) <= max {
			return true, text
		}
		runes := []rune(text)
		return true, string(runes[:max])
	}
}
