package dictionary

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/samdwyer/roflwords/internal/gamedata"
)

func TestWordExists(t *testing.T) {
	c := New([]string{"кот", "дом", ""})

	tests := []struct {
		word     string
		expected bool
	}{
		{"кот", true},
		{"дом", true},
		{"ко", false},
		{"коты", false},
		{"Кот", false}, // exact match only
		{"", false},
	}

	for _, tt := range tests {
		if got := c.WordExists(tt.word); got != tt.expected {
			t.Errorf("WordExists(%q) = %v, want %v", tt.word, got, tt.expected)
		}
	}
	if c.Size() != 2 {
		t.Errorf("Size() = %d, want 2", c.Size())
	}
}

func TestTryRegisterOncePerSession(t *testing.T) {
	c := New([]string{"кот"})

	if !c.TryRegister("кот") {
		t.Error("first TryRegister(\"кот\") = false, want true")
	}
	if c.TryRegister("кот") {
		t.Error("second TryRegister(\"кот\") = true, want false")
	}
	if !c.Registered("кот") {
		t.Error("Registered(\"кот\") = false after claim")
	}
	if c.SessionSize() != 1 {
		t.Errorf("SessionSize() = %d, want 1", c.SessionSize())
	}
}

func TestTryRegisterRejects(t *testing.T) {
	c := New([]string{"кот"})

	for _, word := range []string{"", "кит", "ко"} {
		if c.TryRegister(word) {
			t.Errorf("TryRegister(%q) = true, want false", word)
		}
	}
	if c.SessionSize() != 0 {
		t.Errorf("SessionSize() = %d after rejected claims, want 0", c.SessionSize())
	}
}

func TestResetSession(t *testing.T) {
	c := New([]string{"кот", "дом"})
	c.TryRegister("кот")
	c.TryRegister("дом")

	c.ResetSession()
	c.ResetSession() // idempotent

	if c.SessionSize() != 0 {
		t.Errorf("SessionSize() after reset = %d, want 0", c.SessionSize())
	}
	if !c.TryRegister("кот") {
		t.Error("TryRegister(\"кот\") after reset = false, want true")
	}
	if !c.WordExists("дом") {
		t.Error("ResetSession must not touch the dictionary")
	}
}

func TestSessionWordsSorted(t *testing.T) {
	c := New([]string{"лиса", "кот", "дом"})
	c.TryRegister("лиса")
	c.TryRegister("кот")
	c.TryRegister("дом")

	want := []string{"дом", "кот", "лиса"}
	if diff := cmp.Diff(want, c.SessionWords()); diff != "" {
		t.Errorf("SessionWords() mismatch (-want +got):\n%s", diff)
	}
}

func TestEmbeddedDictionary(t *testing.T) {
	c := New(gamedata.MustLoadWords())

	if !c.WordExists("кот") {
		t.Error("embedded dictionary should contain \"кот\"")
	}
	if c.Size() < 100 {
		t.Errorf("Size() = %d, want at least 100 words", c.Size())
	}
}
