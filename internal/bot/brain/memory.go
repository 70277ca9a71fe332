package brain

import (
	"jassbot/internal/domain"
)

// CardStatus represents what the bot knows about a specific card.
type CardStatus int

const (
	StatusUnseen CardStatus = iota // Not observed on the table this game
	StatusPlayed                   // Observed played by some seat
)

// Memory records every card played by any seat since the current game began.
type Memory struct {
	// DeckStatus tracks all 36 cards. Index = Suit*9 + Rank.
	DeckStatus [domain.DeckSize]CardStatus
	played     int
}

// NewMemory initializes an empty memory.
func NewMemory() *Memory {
	return &Memory{}
}

// Reset forgets everything; called at every game start.
func (m *Memory) Reset() {
	for i := range m.DeckStatus {
		m.DeckStatus[i] = StatusUnseen
	}
	m.played = 0
}

// MarkPlayed records cards that have been played on the table.
func (m *Memory) MarkPlayed(cards ...domain.Card) {
	for _, c := range cards {
		if !c.Valid() {
			continue
		}
		idx := c.Index()
		if m.DeckStatus[idx] == StatusPlayed {
			continue
		}
		m.DeckStatus[idx] = StatusPlayed
		m.played++
	}
}

// IsPlayed returns true if the card is already out of the game.
func (m *Memory) IsPlayed(c domain.Card) bool {
	return c.Valid() && m.DeckStatus[c.Index()] == StatusPlayed
}

// PlayedCount returns how many distinct cards have been observed.
func (m *Memory) PlayedCount() int {
	return m.played
}

// PlayedOfSuit counts the observed cards of suit s.
func (m *Memory) PlayedOfSuit(s domain.Suit) int {
	n := 0
	for r := domain.Six; r <= domain.Ace; r++ {
		if m.DeckStatus[domain.Card{Suit: s, Rank: r}.Index()] == StatusPlayed {
			n++
		}
	}
	return n
}

// Played lists the observed cards in canonical order.
func (m *Memory) Played() []domain.Card {
	return m.collect(StatusPlayed)
}

// Unseen lists every card not yet observed, in canonical order. Cards in the
// bot's own hand are unseen too.
func (m *Memory) Unseen() []domain.Card {
	return m.collect(StatusUnseen)
}

func (m *Memory) collect(status CardStatus) []domain.Card {
	var out []domain.Card
	for i, s := range m.DeckStatus {
		if s == status {
			out = append(out, domain.CardFromIndex(i))
		}
	}
	return out
}
