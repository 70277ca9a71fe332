package brain

import (
	"jassbot/internal/domain"
)

// trumpsExhausted is the number of trumps that must have been seen before a
// side-suit card can be a Bock under a trump mode.
const trumpsExhausted = 9

// Estimator draws conclusions from memory. Card order comes from Rules.
type Estimator struct {
	Memory *Memory
	Rules  domain.Rules
}

// NewEstimator creates a new reasoning engine.
func NewEstimator(m *Memory, rules domain.Rules) *Estimator {
	return &Estimator{Memory: m, Rules: rules}
}

// IsBock reports whether c wins its trick against every card not yet seen.
// Unseen cards include the bot's own hand, so the answer may be false for a
// card that would in fact win; it is never true for a card that can lose.
func (e *Estimator) IsBock(mode domain.Mode, c domain.Card) bool {
	switch mode.Kind {
	case domain.TopDown:
		return !e.unseenSameSuit(c, func(u domain.Card) bool { return e.Rules.IsHigherThan(mode, u, c) })

	case domain.BottomUp:
		if c.Rank == domain.Six {
			return true
		}
		return !e.unseenSameSuit(c, func(u domain.Card) bool { return e.Rules.IsHigherThan(mode, u, c) })

	case domain.Trump:
		if mode.IsTrump(c) {
			return !e.unseenSameSuit(c, func(u domain.Card) bool { return e.Rules.IsHigherTrumpThan(mode, u, c) })
		}
		if e.Memory.PlayedOfSuit(mode.Suit) < trumpsExhausted {
			return false
		}
		return !e.unseenSameSuit(c, func(u domain.Card) bool { return e.Rules.IsHigherThan(mode, u, c) })
	}
	return false
}

// BockCards returns the cards in hand that are currently unbeatable.
func (e *Estimator) BockCards(mode domain.Mode, hand []domain.Card) []domain.Card {
	var bocks []domain.Card
	for _, c := range hand {
		if e.IsBock(mode, c) {
			bocks = append(bocks, c)
		}
	}
	return bocks
}

// TrumpsRemaining counts trump cards not yet seen; zero for modes without trump.
func (e *Estimator) TrumpsRemaining(mode domain.Mode) int {
	s, ok := mode.TrumpSuit()
	if !ok {
		return 0
	}
	return trumpsExhausted - e.Memory.PlayedOfSuit(s)
}

// unseenSameSuit reports whether any unseen card of c's suit, other than c,
// satisfies threat.
func (e *Estimator) unseenSameSuit(c domain.Card, threat func(domain.Card) bool) bool {
	for r := domain.Six; r <= domain.Ace; r++ {
		u := domain.Card{Suit: c.Suit, Rank: r}
		if u == c || e.Memory.IsPlayed(u) {
			continue
		}
		if threat(u) {
			return true
		}
	}
	return false
}
