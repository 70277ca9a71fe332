package domain

// ContainsCard reports whether c is in cards.
func ContainsCard(cards []Card, c Card) bool {
	for _, x := range cards {
		if x == c {
			return true
		}
	}
	return false
}

// RemoveCard returns a copy of hand without c. Order is preserved.
func RemoveCard(hand []Card, c Card) []Card {
	out := make([]Card, 0, len(hand))
	for _, x := range hand {
		if x != c {
			out = append(out, x)
		}
	}
	return out
}

// CardsOfSuit returns the cards of suit s, keeping their order.
func CardsOfSuit(cards []Card, s Suit) []Card {
	var out []Card
	for _, c := range cards {
		if c.Suit == s {
			out = append(out, c)
		}
	}
	return out
}

// CountBySuit counts the cards held per suit.
func CountBySuit(cards []Card) [4]int {
	var counts [4]int
	for _, c := range cards {
		counts[c.Suit]++
	}
	return counts
}

// UniqueCards reports whether cards holds no duplicate.
func UniqueCards(cards []Card) bool {
	var seen [DeckSize]bool
	for _, c := range cards {
		if seen[c.Index()] {
			return false
		}
		seen[c.Index()] = true
	}
	return true
}
