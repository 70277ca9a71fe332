package domain

// NoSeat marks the absence of a seat, e.g. the winner of an empty trick.
const NoSeat = -1

// Seats is the number of players at a Jass table.
const Seats = 4

// Play is one card played by one seat.
type Play struct {
	Seat int  `json:"seat"`
	Card Card `json:"card"`
}

// Trick is the state of the trick in progress. The engine mutates it through
// Add; bots only read it.
type Trick struct {
	Mode     Mode   `json:"mode"`
	Plays    []Play `json:"plays"`
	LeadSuit Suit   `json:"lead_suit"`
	Winner   int    `json:"winner"` // provisional winner seat, NoSeat while empty
}

// NewTrick creates an empty trick under the given mode.
func NewTrick(mode Mode) *Trick {
	return &Trick{
		Mode:   mode,
		Plays:  make([]Play, 0, Seats),
		Winner: NoSeat,
	}
}

// Add records a play, setting the lead suit on the first card and updating
// the provisional winner.
func (t *Trick) Add(seat int, c Card) {
	if len(t.Plays) == 0 {
		t.LeadSuit = c.Suit
		t.Winner = seat
		t.Plays = append(t.Plays, Play{Seat: seat, Card: c})
		return
	}
	if beats(t.Mode, c, t.winningCard()) {
		t.Winner = seat
	}
	t.Plays = append(t.Plays, Play{Seat: seat, Card: c})
}

// Cards returns the cards played so far, in play order.
func (t *Trick) Cards() []Card {
	out := make([]Card, len(t.Plays))
	for i, p := range t.Plays {
		out[i] = p.Card
	}
	return out
}

// Empty reports whether no card has been played yet.
func (t *Trick) Empty() bool {
	return len(t.Plays) == 0
}

// Complete reports whether every seat has played.
func (t *Trick) Complete() bool {
	return len(t.Plays) >= Seats
}

func (t *Trick) winningCard() Card {
	for _, p := range t.Plays {
		if p.Seat == t.Winner {
			return p.Card
		}
	}
	return t.Plays[0].Card
}

// beats reports whether challenger takes the trick from the current winner.
func beats(m Mode, challenger, winner Card) bool {
	switch {
	case m.IsTrump(challenger) && !m.IsTrump(winner):
		return true
	case challenger.Suit != winner.Suit:
		return false
	}
	return power(m, challenger) > power(m, winner)
}
