package domain

// Rules is the rank and legality model of the game engine. Bots never derive
// card order themselves; every comparison goes through a Rules value.
type Rules interface {
	// CanPlayCard reports whether card may be played from hand on trick.
	CanPlayCard(mode Mode, card Card, trick *Trick, hand []Card) bool
	// IsHigherThan reports whether a ranks above b under mode. Suits are not
	// compared; callers decide which cards compete.
	IsHigherThan(mode Mode, a, b Card) bool
	// IsLowerThan reports whether a ranks below b under mode, ignoring suits.
	IsLowerThan(mode Mode, a, b Card) bool
	// IsHigherTrumpThan reports whether a ranks above b, both being trumps.
	IsHigherTrumpThan(mode Mode, a, b Card) bool
}

// StandardRules implements Swiss Jass ranking and card-play obligations.
type StandardRules struct{}

var _ Rules = StandardRules{}

// trumpOrder is the power of each rank inside the trump suit: Jack (Buur)
// first, Nine (Nell) second, then Ace down to Six with Ten between Queen and
// Eight.
var trumpOrder = [9]int{
	Six:   0,
	Seven: 1,
	Eight: 2,
	Ten:   3,
	Queen: 4,
	King:  5,
	Ace:   6,
	Nine:  7,
	Jack:  8,
}

// power is the strength of c within its own suit under m; higher wins.
func power(m Mode, c Card) int {
	switch {
	case m.IsTrump(c):
		return trumpOrder[c.Rank]
	case m.Kind == BottomUp:
		return int(Ace - c.Rank)
	}
	return int(c.Rank)
}

func (StandardRules) IsHigherThan(mode Mode, a, b Card) bool {
	return power(mode, a) > power(mode, b)
}

func (StandardRules) IsLowerThan(mode Mode, a, b Card) bool {
	return power(mode, a) < power(mode, b)
}

func (StandardRules) IsHigherTrumpThan(mode Mode, a, b Card) bool {
	return mode.IsTrump(a) && mode.IsTrump(b) && power(mode, a) > power(mode, b)
}

func (StandardRules) CanPlayCard(mode Mode, card Card, trick *Trick, hand []Card) bool {
	if !ContainsCard(hand, card) {
		return false
	}
	if trick == nil || trick.Empty() {
		return true
	}

	lead := trick.LeadSuit
	if card.Suit == lead {
		return true
	}

	if mode.IsTrump(card) {
		// No under-trumping while holding anything else.
		if top, ok := highestTrump(mode, trick); ok && power(mode, card) < power(mode, top) {
			return onlyTrumps(mode, hand)
		}
		return true
	}

	var leadCards []Card
	for _, c := range hand {
		if c.Suit == lead {
			leadCards = append(leadCards, c)
		}
	}
	if len(leadCards) == 0 {
		return true
	}
	// The trump Jack never has to be played to follow a trump lead.
	if mode.Kind == Trump && lead == mode.Suit && len(leadCards) == 1 && leadCards[0].Rank == Jack {
		return true
	}
	return false
}

func highestTrump(mode Mode, trick *Trick) (Card, bool) {
	var top Card
	found := false
	for _, p := range trick.Plays {
		if !mode.IsTrump(p.Card) {
			continue
		}
		if !found || power(mode, p.Card) > power(mode, top) {
			top = p.Card
			found = true
		}
	}
	return top, found
}

func onlyTrumps(mode Mode, hand []Card) bool {
	for _, c := range hand {
		if !mode.IsTrump(c) {
			return false
		}
	}
	return true
}
