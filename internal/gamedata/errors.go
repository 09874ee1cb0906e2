package gamedata

import "fmt"

// ConfigError reports a malformed entry in a data source loaded at startup.
// Line is 1-based; zero means the error concerns the source as a whole.
type ConfigError struct {
	Source string
	Line   int
	Text   string
	Reason string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: %s", e.Source, e.Reason)
	}
	return fmt.Sprintf("%s:%d: %s (%q)", e.Source, e.Line, e.Reason, e.Text)
}
