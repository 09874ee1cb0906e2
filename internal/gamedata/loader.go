package gamedata

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// Open returns a reader for a data source. An empty path selects the embedded
// file named fallback; any other path is read from disk.
func Open(path, fallback string) (io.Reader, string, error) {
	if path == "" {
		content, err := dataFS.ReadFile(fallback)
		if err != nil {
			return nil, fallback, fmt.Errorf("failed to read embedded file %s: %w", fallback, err)
		}
		return bytes.NewReader(content), fallback, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return bytes.NewReader(content), path, nil
}

// LoadFrequencies loads a letter-frequency table from path, or the embedded
// Russian table when path is empty.
func LoadFrequencies(path string) ([]Frequency, error) {
	r, name, err := Open(path, DefaultFrequencyFile)
	if err != nil {
		return nil, err
	}
	return ParseFrequencies(r, name)
}

// MustLoadFrequencies loads the embedded letter table, panicking on error.
func MustLoadFrequencies() []Frequency {
	table, err := LoadFrequencies("")
	if err != nil {
		panic(err)
	}
	return table
}

// LoadWords loads a dictionary from path, or the embedded list when path is empty.
func LoadWords(path string) ([]string, error) {
	r, name, err := Open(path, DefaultDictionaryFile)
	if err != nil {
		return nil, err
	}
	return ParseWords(r, name)
}

// MustLoadWords loads the embedded dictionary, panicking on error.
func MustLoadWords() []string {
	words, err := LoadWords("")
	if err != nil {
		panic(err)
	}
	return words
}
