package gamedata

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Frequency is one row of a letter-frequency table: a letter and its corpus count.
type Frequency struct {
	Char  rune
	Count int64
}

// ParseFrequencies reads tab-separated "<letter>\t<count>" lines.
// Blank lines are skipped. Letters are normalized to lower case, and a
// letter may appear only once. Any malformed row, including a zero or
// negative count, fails the whole table with a *ConfigError.
func ParseFrequencies(r io.Reader, source string) ([]Frequency, error) {
	var (
		table []Frequency
		seen  = make(map[rune]int)
		line  int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}

		fail := func(reason string) error {
			return &ConfigError{Source: source, Line: line, Text: text, Reason: reason}
		}

		letter, countText, ok := strings.Cut(text, "\t")
		if !ok {
			return nil, fail("expected <letter>\\t<count>")
		}

		letter = NormalizeWord(letter)
		if utf8.RuneCountInString(letter) != 1 {
			return nil, fail("letter must be a single character")
		}
		ch, _ := utf8.DecodeRuneInString(letter)

		count, err := strconv.ParseInt(strings.TrimSpace(countText), 10, 64)
		if err != nil {
			return nil, fail("count is not an integer")
		}
		if count <= 0 {
			return nil, fail("count must be positive")
		}

		if prev, dup := seen[ch]; dup {
			return nil, fail(fmt.Sprintf("duplicate letter, first defined on line %d", prev))
		}
		seen[ch] = line

		table = append(table, Frequency{Char: ch, Count: count})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", source, err)
	}

	if len(table) == 0 {
		return nil, &ConfigError{Source: source, Reason: "frequency table is empty"}
	}
	return table, nil
}
