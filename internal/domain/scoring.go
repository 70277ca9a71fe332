package domain

// LastTrickBonus is added to the points of the final trick of a game.
const LastTrickBonus = 5

// GameTotal is the number of points distributed in one game.
const GameTotal = 157

// CardPoints returns the point value of c under mode m.
func CardPoints(m Mode, c Card) int {
	if m.IsTrump(c) {
		switch c.Rank {
		case Jack:
			return 20
		case Nine:
			return 14
		}
	}
	switch c.Rank {
	case Ace:
		if m.Kind == BottomUp {
			return 0
		}
		return 11
	case Six:
		if m.Kind == BottomUp {
			return 11
		}
	case Eight:
		if m.Kind == TopDown || m.Kind == BottomUp {
			return 8
		}
	case Ten:
		return 10
	case King:
		return 4
	case Queen:
		return 3
	case Jack:
		return 2
	}
	return 0
}

// TrickPoints sums the points of every card in the trick.
func TrickPoints(t *Trick) int {
	total := 0
	for _, p := range t.Plays {
		total += CardPoints(t.Mode, p.Card)
	}
	return total
}

// TeamOf maps a seat to its team; partners sit opposite each other.
func TeamOf(seat int) int {
	return seat % 2
}

// PartnerOf returns the seat across the table.
func PartnerOf(seat int) int {
	return (seat + 2) % Seats
}
