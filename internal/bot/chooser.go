package bot

import (
	"jassbot/internal/bot/brain"
	"jassbot/internal/domain"
)

// leadPriority breaks ties between equally long suits when leading.
var leadPriority = [4]domain.Suit{domain.Clubs, domain.Diamonds, domain.Hearts, domain.Spades}

// CardChooser picks a card for the trick in progress.
type CardChooser struct {
	Rules     domain.Rules
	Estimator *brain.Estimator
}

// NewCardChooser creates a chooser reasoning over the given memory.
func NewCardChooser(rules domain.Rules, memory *brain.Memory) *CardChooser {
	return &CardChooser{
		Rules:     rules,
		Estimator: brain.NewEstimator(memory, rules),
	}
}

// Choose returns the card seat should play from hand on trick.
func (cc *CardChooser) Choose(hand []domain.Card, trick *domain.Trick, seat int) (domain.Card, error) {
	mode := trick.Mode
	playable := LegalCards(cc.Rules, trick, hand)
	if len(playable) == 0 {
		if len(hand) == 0 {
			return domain.Card{}, ErrHandExhausted
		}
		return domain.Card{}, ErrNoLegalCard
	}

	// 1. Leading the trick.
	if trick.Empty() {
		return cc.chooseBockOrLongSuit(playable, mode), nil
	}

	// 2. Already winning: save strength.
	if trick.Winner == seat {
		return lowestAvoidingTrump(cc.Rules, mode, playable), nil
	}

	// 3. Win cheaply with the lead suit.
	if top, ok := cc.highestPlayed(trick, func(c domain.Card) bool {
		return c.Suit == trick.LeadSuit && !mode.IsTrump(c)
	}); ok {
		var winners []domain.Card
		for _, c := range playable {
			if c.Suit == trick.LeadSuit && !mode.IsTrump(c) && cc.Rules.IsHigherThan(mode, c, top) {
				winners = append(winners, c)
			}
		}
		if len(winners) > 0 {
			return lowest(cc.Rules, mode, winners), nil
		}
	}

	// 4. Win cheaply with a trump.
	if mode.Kind == domain.Trump {
		topTrump, trumped := cc.highestPlayed(trick, mode.IsTrump)
		var winners []domain.Card
		for _, c := range playable {
			if mode.IsTrump(c) && (!trumped || cc.Rules.IsHigherTrumpThan(mode, c, topTrump)) {
				winners = append(winners, c)
			}
		}
		if len(winners) > 0 {
			return lowest(cc.Rules, mode, winners), nil
		}
	}

	// 5. Cannot win: throw the least valuable card.
	return lowestAvoidingTrump(cc.Rules, mode, playable), nil
}

// chooseBockOrLongSuit leads the first Bock if there is one, else the lowest
// card of the longest suit.
func (cc *CardChooser) chooseBockOrLongSuit(playable []domain.Card, mode domain.Mode) domain.Card {
	for _, c := range playable {
		if cc.Estimator.IsBock(mode, c) {
			return c
		}
	}

	counts := domain.CountBySuit(playable)
	best := leadPriority[0]
	most := 0
	for _, s := range leadPriority {
		if counts[s] > most {
			best = s
			most = counts[s]
		}
	}
	return lowest(cc.Rules, mode, domain.CardsOfSuit(playable, best))
}

// highestPlayed returns the strongest card in the trick among those matching keep.
func (cc *CardChooser) highestPlayed(trick *domain.Trick, keep func(domain.Card) bool) (domain.Card, bool) {
	var top domain.Card
	found := false
	for _, p := range trick.Plays {
		if !keep(p.Card) {
			continue
		}
		if !found || cc.Rules.IsHigherThan(trick.Mode, p.Card, top) {
			top = p.Card
			found = true
		}
	}
	return top, found
}

// LegalCards filters hand down to the cards the rules accept on trick.
func LegalCards(rules domain.Rules, trick *domain.Trick, hand []domain.Card) []domain.Card {
	var out []domain.Card
	for _, c := range hand {
		if rules.CanPlayCard(trick.Mode, c, trick, hand) {
			out = append(out, c)
		}
	}
	return out
}

// LowestLegalCard is the deterministic fallback move: the weakest legal
// non-trump card, ignoring memory. It fails with ErrNoLegalCard when nothing
// is legal.
func LowestLegalCard(rules domain.Rules, trick *domain.Trick, hand []domain.Card) (domain.Card, error) {
	if len(hand) == 0 {
		return domain.Card{}, ErrHandExhausted
	}
	playable := LegalCards(rules, trick, hand)
	if len(playable) == 0 {
		return domain.Card{}, ErrNoLegalCard
	}
	return lowestAvoidingTrump(rules, trick.Mode, playable), nil
}

// lowestAvoidingTrump returns the weakest non-trump card, or the weakest trump
// when only trumps are playable.
func lowestAvoidingTrump(rules domain.Rules, mode domain.Mode, playable []domain.Card) domain.Card {
	var side, trumps []domain.Card
	for _, c := range playable {
		if mode.IsTrump(c) {
			trumps = append(trumps, c)
		} else {
			side = append(side, c)
		}
	}
	if len(side) > 0 {
		return lowest(rules, mode, side)
	}
	return lowest(rules, mode, trumps)
}

// lowest returns the weakest card under mode; the first one wins ties.
// cards must not be empty.
func lowest(rules domain.Rules, mode domain.Mode, cards []domain.Card) domain.Card {
	low := cards[0]
	for _, c := range cards[1:] {
		if rules.IsLowerThan(mode, c, low) {
			low = c
		}
	}
	return low
}
