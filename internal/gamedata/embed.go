// Package gamedata provides embedded game data and utilities for loading it.
package gamedata

import "embed"

// dataFS embeds the default letter table and dictionary at build time.
//
//go:embed *.tsv *.txt
var dataFS embed.FS

const (
	// DefaultFrequencyFile is the embedded Russian letter-frequency table.
	DefaultFrequencyFile = "ru_letters.tsv"
	// DefaultDictionaryFile is the embedded Russian word list.
	DefaultDictionaryFile = "ru_words.txt"
)
