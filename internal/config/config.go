package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"jassbot/internal/bot"
	"jassbot/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
	"gopkg.in/yaml.v2"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported config format")
	ErrInvalidConfig     = errors.New("invalid bot config")
)

// SeatConfig configures the bot sitting at one seat.
type SeatConfig struct {
	Name     string `json:"name" yaml:"name"`
	Strategy string `json:"strategy" yaml:"strategy"`
}

// BotConfig configures the bots and the local simulator.
type BotConfig struct {
	// Name and Strategy are used for bots created without explicit settings.
	Name     string `json:"name" yaml:"name"`
	Strategy string `json:"strategy" yaml:"strategy"`
	LogLevel string `json:"log_level" yaml:"log_level"`
	// Games is the number of games per simulated session.
	Games int `json:"games" yaml:"games"`
	// Seed makes simulated shuffling reproducible; 0 means time-seeded.
	Seed int64 `json:"seed" yaml:"seed"`
	// Seats optionally lists all four seats of a simulated table.
	Seats []SeatConfig `json:"seats" yaml:"seats"`
}

var (
	cfg      *BotConfig
	loadOnce sync.Once
	loadErr  error
)

// Default returns the configuration used when no file was loaded.
func Default() *BotConfig {
	return &BotConfig{
		Name:     "flo",
		Strategy: bot.LevelHeuristic.String(),
		LogLevel: "info",
		Games:    1,
	}
}

// LoadBotConfig loads the bot configuration from the given path. The format
// follows the extension: .json, .yaml or .yml.
func LoadBotConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read bot config: %w", err)
			return
		}

		c, err := Parse(data, filepath.Ext(path))
		if err != nil {
			loadErr = fmt.Errorf("failed to parse bot config %s: %w", path, err)
			return
		}
		cfg = c
	})
	return loadErr
}

// GetBotConfig returns the global bot configuration, or the defaults when
// nothing was loaded.
func GetBotConfig() *BotConfig {
	if cfg == nil {
		return Default()
	}
	return cfg
}

// Parse decodes data in the given format (a file extension, with or without
// the dot), fills in defaults and validates the result.
func Parse(data []byte, format string) (*BotConfig, error) {
	c := Default()
	var err error
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "json":
		err = json.Unmarshal(data, c)
	case "yaml", "yml":
		err = yaml.Unmarshal(data, c)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}

	if c.Games <= 0 {
		c.Games = 1
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks strategy names and the seat list.
func (c *BotConfig) Validate() error {
	if _, err := bot.ParseLevel(c.Strategy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if len(c.Seats) != 0 && len(c.Seats) != domain.Seats {
		return fmt.Errorf("%w: %d seats configured, want %d", ErrInvalidConfig, len(c.Seats), domain.Seats)
	}
	for i, s := range c.Seats {
		if _, err := bot.ParseLevel(s.Strategy); err != nil {
			return fmt.Errorf("%w: seat %d: %v", ErrInvalidConfig, i, err)
		}
	}
	return nil
}

// Level returns the parsed default strategy level.
func (c *BotConfig) Level() bot.Level {
	level, err := bot.ParseLevel(c.Strategy)
	if err != nil {
		return bot.LevelHeuristic
	}
	return level
}

// Table returns the four seats to simulate. Without explicit seats every
// seat plays the default strategy.
func (c *BotConfig) Table() []SeatConfig {
	if len(c.Seats) == domain.Seats {
		return append([]SeatConfig(nil), c.Seats...)
	}
	seats := make([]SeatConfig, domain.Seats)
	for i := range seats {
		seats[i] = SeatConfig{Name: fmt.Sprintf("%s-%d", c.Name, i), Strategy: c.Strategy}
	}
	return seats
}

// NewAgents seats one agent per entry of seats.
func NewAgents(seats []SeatConfig, rules domain.Rules, logger runtime.Logger) ([]*bot.Agent, error) {
	if len(seats) != domain.Seats {
		return nil, fmt.Errorf("%w: %d seats configured, want %d", ErrInvalidConfig, len(seats), domain.Seats)
	}
	agents := make([]*bot.Agent, len(seats))
	for i, s := range seats {
		level, err := bot.ParseLevel(s.Strategy)
		if err != nil {
			return nil, fmt.Errorf("seat %d: %w", i, err)
		}
		strategy, err := bot.NewStrategy(level, rules)
		if err != nil {
			return nil, fmt.Errorf("seat %d: %w", i, err)
		}
		agents[i] = bot.NewAgent(i, s.Name, strategy, rules, logger)
	}
	return agents, nil
}
