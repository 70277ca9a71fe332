package bot

import (
	"errors"

	"jassbot/internal/domain"
)

var (
	// ErrHandExhausted is returned when a move is requested from an empty hand.
	ErrHandExhausted = errors.New("cannot play a card without cards in hand")
	// ErrNoLegalCard means the rules accept none of the cards in a non-empty hand.
	ErrNoLegalCard = errors.New("no legal card in a non-empty hand")
	// ErrUnknownLevel is returned by the factory for an unsupported level.
	ErrUnknownLevel = errors.New("unknown bot level")
)

// Strategy is the interface that all bot strategies must implement.
// Lifecycle hooks arrive in play order; OnGameStarted precedes any decision
// of that game.
type Strategy interface {
	Name() string
	ChooseTrumpf(hand []domain.Card, shifted bool) domain.Mode
	ChooseCard(hand []domain.Card, trick *domain.Trick, seat int) (domain.Card, error)

	OnSessionStarted()
	OnGameStarted()
	OnMoveMade(play domain.Play)
	OnGameFinished()
	OnSessionFinished()
}
