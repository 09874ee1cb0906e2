// Package dictionary validates traced words and tracks which ones a session
// has already scored.
package dictionary

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// Checker holds the known word set and the words claimed in the current session.
// Words are compared exactly; callers normalize case before lookup.
type Checker struct {
	words   mapset.Set[string]
	session mapset.Set[string]
}

// New creates a checker from a finite word list. Empty strings are skipped.
func New(words []string) *Checker {
	known := mapset.New[string]()
	for _, w := range words {
		if w != "" {
			known.Put(w)
		}
	}
	return &Checker{
		words:   known,
		session: mapset.New[string](),
	}
}

// WordExists returns true if word is in the dictionary.
func (c *Checker) WordExists(word string) bool {
	return c.words.Has(word)
}

// ResetSession forgets every word claimed so far.
func (c *Checker) ResetSession() {
	c.session = mapset.New[string]()
}

// TryRegister claims word for the current session. It returns false, without
// changing anything, when word is empty, unknown, or already claimed.
// The first claim of a word blocks every later claim of the same word,
// whichever cells spell it.
func (c *Checker) TryRegister(word string) bool {
	if word == "" || !c.WordExists(word) || c.session.Has(word) {
		return false
	}
	c.session.Put(word)
	return true
}

// Registered returns true if word was already claimed this session.
func (c *Checker) Registered(word string) bool {
	return c.session.Has(word)
}

// SessionWords returns the claimed words in sorted order.
func (c *Checker) SessionWords() []string {
	words := make([]string, 0, c.session.Size())
	c.session.Each(func(w string) {
		words = append(words, w)
	})
	sort.Strings(words)
	return words
}

// SessionSize returns the number of claimed words.
func (c *Checker) SessionSize() int {
	return c.session.Size()
}

// Size returns the number of known words.
func (c *Checker) Size() int {
	return c.words.Size()
}
