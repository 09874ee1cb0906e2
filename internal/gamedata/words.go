package gamedata

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// ParseWords reads a newline-delimited word list. Blank lines are ignored
// and every word is normalized with NormalizeWord.
func ParseWords(r io.Reader, source string) ([]string, error) {
	var words []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := NormalizeWord(scanner.Text())
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", source, err)
	}

	if len(words) == 0 {
		return nil, &ConfigError{Source: source, Reason: "dictionary is empty"}
	}
	return words, nil
}

// NormalizeWord trims surrounding whitespace, composes the text to NFC and
// lower-cases it with Russian casing rules. Dictionary entries and grid
// letters share this convention, so a traced word compares byte-for-byte.
func NormalizeWord(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return cases.Lower(language.Russian).String(norm.NFC.String(s))
}
