package bot

import (
	"fmt"
	"strings"

	"jassbot/internal/domain"
)

// Level selects a strategy implementation.
type Level int

const (
	LevelBaseline Level = iota
	LevelHeuristic
)

var levelNames = map[Level]string{
	LevelBaseline:  "baseline",
	LevelHeuristic: "heuristic",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// ParseLevel maps a configured strategy name to a Level.
func ParseLevel(name string) (Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for l, n := range levelNames {
		if n == name {
			return l, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
}

// NewStrategy creates a new strategy for the specified level.
func NewStrategy(level Level, rules domain.Rules) (Strategy, error) {
	switch level {
	case LevelBaseline:
		return &BaselineStrategy{Rules: rules}, nil
	case LevelHeuristic:
		return NewHeuristicStrategy(rules), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownLevel, level)
	}
}
