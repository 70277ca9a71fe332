package bot

import (
	"jassbot/internal/domain"
)

// Thresholds of the trump selection passes: a suit qualifies only with
// strictly more cards than the threshold.
const (
	jackNineMinExclusive = 2
	nineAceMinExclusive  = 3
	longSuitMinExclusive = 4

	fixedTricksNeeded    = 4
	shiftedHeadsRequired = 3
)

var (
	topDownChain  = [4]domain.Rank{domain.Ace, domain.King, domain.Queen, domain.Jack}
	bottomUpChain = [4]domain.Rank{domain.Six, domain.Seven, domain.Eight, domain.Nine}
)

// ChooseTrumpf picks the mode to declare. shifted is true when the partner
// already shifted, in which case Shift is never returned. The rules are
// tried in a fixed priority order and the first that applies wins.
func ChooseTrumpf(hand []domain.Card, shifted bool) domain.Mode {
	if qualifiesChain(hand, topDownChain, shifted) {
		return domain.TopDownMode()
	}
	if qualifiesChain(hand, bottomUpChain, shifted) {
		return domain.BottomUpMode()
	}

	counts := domain.CountBySuit(hand)

	// Jack and Nine of the same suit, at least three cards.
	if s, ok := longestSuit(counts, jackNineMinExclusive, func(s domain.Suit) bool {
		return holds(hand, s, domain.Jack) && holds(hand, s, domain.Nine)
	}); ok {
		return domain.TrumpMode(s)
	}

	// Nine and Ace of the same suit, at least four cards.
	if s, ok := longestSuit(counts, nineAceMinExclusive, func(s domain.Suit) bool {
		return holds(hand, s, domain.Nine) && holds(hand, s, domain.Ace)
	}); ok {
		return domain.TrumpMode(s)
	}

	// Any suit with at least five cards.
	if s, ok := longestSuit(counts, longSuitMinExclusive, anySuit); ok {
		return domain.TrumpMode(s)
	}

	if !shifted && suitsHeld(counts) == len(domain.Suits) {
		return domain.ShiftMode()
	}

	// Best effort: the longest suit.
	if s, ok := longestSuit(counts, 0, anySuit); ok {
		return domain.TrumpMode(s)
	}
	return domain.TrumpMode(domain.Suits[0])
}

// qualifiesChain counts, per suit whose chain head is held, the unbroken run
// of chain ranks held. The total must reach fixedTricksNeeded; after a shift
// at least shiftedHeadsRequired chain heads are also required.
func qualifiesChain(hand []domain.Card, chain [4]domain.Rank, shifted bool) bool {
	fixedTricks := 0
	heads := 0
	for _, s := range domain.Suits {
		for i, r := range chain {
			if !holds(hand, s, r) {
				break
			}
			if i == 0 {
				heads++
			}
			fixedTricks++
		}
	}
	return fixedTricks >= fixedTricksNeeded && (!shifted || heads >= shiftedHeadsRequired)
}

// longestSuit returns the eligible suit with strictly the most cards above
// floor. Earlier suits in domain.Suits win ties.
func longestSuit(counts [4]int, floor int, eligible func(domain.Suit) bool) (domain.Suit, bool) {
	var best domain.Suit
	found := false
	most := floor
	for _, s := range domain.Suits {
		if eligible(s) && counts[s] > most {
			best = s
			most = counts[s]
			found = true
		}
	}
	return best, found
}

func anySuit(domain.Suit) bool { return true }

func suitsHeld(counts [4]int) int {
	n := 0
	for _, c := range counts {
		if c > 0 {
			n++
		}
	}
	return n
}

func holds(hand []domain.Card, s domain.Suit, r domain.Rank) bool {
	return domain.ContainsCard(hand, domain.Card{Suit: s, Rank: r})
}
