package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/samdwyer/roflwords/internal/board"
)

// Config holds game configuration options, read from the environment.
type Config struct {
	// Seed for random number generation. Used for reproducible boards.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `env:"SEED"`

	// Board dimensions passed to every reshuffle.
	Rows    int `env:"ROWS" envDefault:"5"`
	Columns int `env:"COLUMNS" envDefault:"5"`

	// Data sources. Empty paths select the embedded Russian data.
	DictionaryFile string `env:"DICTIONARY_FILE"`
	FrequencyFile  string `env:"FREQUENCY_FILE"`

	// Logs go to a file because the terminal belongs to the game screen.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"LOG_FILE" envDefault:"roflwords.log"`
}

// DefaultConfig returns the configuration used when no variables are set.
func DefaultConfig() Config {
	return Config{
		Rows:     board.DefaultRows,
		Columns:  board.DefaultColumns,
		LogLevel: "info",
		LogFile:  "roflwords.log",
	}
}

// LoadConfig parses the configuration from environment variables and validates it.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects board dimensions below 1.
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Columns <= 0 {
		return fmt.Errorf("config %dx%d board: %w", c.Rows, c.Columns, board.ErrInvalidDimension)
	}
	return nil
}

// NewRand returns the random source for board generation.
func (c Config) NewRand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
