package domain

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
)

// DeckSize is the number of cards in a Jass deck.
const DeckSize = 36

// Suit is one of the four Jass suits.
type Suit int

const (
	Clubs Suit = iota
	Spades
	Hearts
	Diamonds
)

// Suits lists the suits in canonical order. Trump selection breaks ties by
// this order, so it must not be reordered.
var Suits = [4]Suit{Clubs, Spades, Hearts, Diamonds}

var suitNames = [4]string{"clubs", "spades", "hearts", "diamonds"}

func (s Suit) String() string {
	if s < Clubs || s > Diamonds {
		return fmt.Sprintf("suit(%d)", int(s))
	}
	return suitNames[s]
}

// MarshalText encodes the suit by name.
func (s Suit) MarshalText() ([]byte, error) {
	if s < Clubs || s > Diamonds {
		return nil, fmt.Errorf("invalid suit %d", int(s))
	}
	return []byte(suitNames[s]), nil
}

// UnmarshalText decodes a suit name, case-insensitively.
func (s *Suit) UnmarshalText(text []byte) error {
	name := strings.ToLower(string(text))
	for i, n := range suitNames {
		if n == name {
			*s = Suit(i)
			return nil
		}
	}
	return fmt.Errorf("unknown suit %q", string(text))
}

// Rank is the face value of a card. Ranks are declared in natural order with
// Six lowest; how they compare in play depends on the Mode.
type Rank int

const (
	Six Rank = iota
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var rankNames = [9]string{"six", "seven", "eight", "nine", "ten", "jack", "queen", "king", "ace"}

func (r Rank) String() string {
	if r < Six || r > Ace {
		return fmt.Sprintf("rank(%d)", int(r))
	}
	return rankNames[r]
}

// MarshalText encodes the rank by name.
func (r Rank) MarshalText() ([]byte, error) {
	if r < Six || r > Ace {
		return nil, fmt.Errorf("invalid rank %d", int(r))
	}
	return []byte(rankNames[r]), nil
}

// UnmarshalText decodes a rank name, case-insensitively.
func (r *Rank) UnmarshalText(text []byte) error {
	name := strings.ToLower(string(text))
	for i, n := range rankNames {
		if n == name {
			*r = Rank(i)
			return nil
		}
	}
	return fmt.Errorf("unknown rank %q", string(text))
}

// Card is a single playing card in the Jass deck.
type Card struct {
	Suit Suit `json:"suit" yaml:"suit"`
	Rank Rank `json:"rank" yaml:"rank"`
}

// Index maps the card to 0..35 (suit*9 + rank).
func (c Card) Index() int {
	return int(c.Suit)*9 + int(c.Rank)
}

// Valid reports whether the card is one of the 36 deck cards.
func (c Card) Valid() bool {
	return c.Suit >= Clubs && c.Suit <= Diamonds && c.Rank >= Six && c.Rank <= Ace
}

func (c Card) String() string {
	return c.Suit.String() + "-" + c.Rank.String()
}

// ParseCard parses the String form, e.g. "clubs-ace".
func ParseCard(s string) (Card, error) {
	suit, rank, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return Card{}, fmt.Errorf("invalid card %q", s)
	}
	var c Card
	if err := c.Suit.UnmarshalText([]byte(suit)); err != nil {
		return Card{}, err
	}
	if err := c.Rank.UnmarshalText([]byte(rank)); err != nil {
		return Card{}, err
	}
	return c, nil
}

// CardFromIndex is the inverse of Card.Index.
func CardFromIndex(i int) Card {
	return Card{Suit: Suit(i / 9), Rank: Rank(i % 9)}
}

// NewDeck returns the 36-card deck in canonical order.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for _, s := range Suits {
		for r := Six; r <= Ace; r++ {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}

// ShuffleDeck returns a shuffled copy of the given deck.
func ShuffleDeck(rng *rand.Rand, deck []Card) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// SortCards orders cards canonically: by suit, then by natural rank.
func SortCards(cards []Card) {
	sort.Slice(cards, func(i, j int) bool {
		return cards[i].Index() < cards[j].Index()
	})
}
