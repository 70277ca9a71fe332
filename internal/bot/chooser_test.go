package bot

import (
	"errors"
	"testing"

	"jassbot/internal/bot/brain"
	"jassbot/internal/domain"
)

const self = 0

// trickOf builds a trick from (seat, card) pairs played in order.
func trickOf(mode domain.Mode, plays ...domain.Play) *domain.Trick {
	tr := domain.NewTrick(mode)
	for _, p := range plays {
		tr.Add(p.Seat, p.Card)
	}
	return tr
}

func play(seat int, c domain.Card) domain.Play {
	return domain.Play{Seat: seat, Card: c}
}

func TestCardChooser_Choose(t *testing.T) {
	tests := []struct {
		name   string
		trick  *domain.Trick
		hand   []domain.Card
		played []domain.Card
		want   domain.Card
	}{
		{
			name:  "leading plays a TopDown ace",
			trick: trickOf(domain.TopDownMode()),
			hand:  []domain.Card{card(clubs, domain.Ace), card(hearts, domain.Eight), card(clubs, domain.Ten)},
			want:  card(clubs, domain.Ace),
		},
		{
			name:   "leading plays a king once the ace is gone",
			trick:  trickOf(domain.TopDownMode()),
			hand:   []domain.Card{card(clubs, domain.Six), card(hearts, domain.King), card(clubs, domain.Ten)},
			played: []domain.Card{card(hearts, domain.Ace)},
			want:   card(hearts, domain.King),
		},
		{
			name:  "leading without Bock plays lowest of longest suit",
			trick: trickOf(domain.TopDownMode()),
			hand:  []domain.Card{card(hearts, domain.Ten), card(hearts, domain.Seven), card(spades, domain.Six), card(hearts, domain.Queen)},
			want:  card(hearts, domain.Seven),
		},
		{
			name:  "leading tie prefers diamonds over hearts",
			trick: trickOf(domain.TopDownMode()),
			hand:  []domain.Card{card(hearts, domain.Ten), card(hearts, domain.Seven), card(diamonds, domain.Queen), card(diamonds, domain.Eight)},
			want:  card(diamonds, domain.Eight),
		},
		{
			name:  "leading tie prefers clubs first",
			trick: trickOf(domain.TopDownMode()),
			hand:  []domain.Card{card(spades, domain.Ten), card(clubs, domain.Seven)},
			want:  card(clubs, domain.Seven),
		},
		{
			name:  "leading BottomUp plays a six",
			trick: trickOf(domain.BottomUpMode()),
			hand:  []domain.Card{card(hearts, domain.Ten), card(spades, domain.Six)},
			want:  card(spades, domain.Six),
		},
		{
			name:  "leading BottomUp lowest is the weakest card",
			trick: trickOf(domain.BottomUpMode()),
			hand:  []domain.Card{card(hearts, domain.Ten), card(hearts, domain.Ace), card(spades, domain.Seven)},
			want:  card(hearts, domain.Ace),
		},
		{
			name:  "winning TopDown plays lowest legal",
			trick: trickOf(domain.TopDownMode(), play(self, card(clubs, domain.Ace)), play(1, card(clubs, domain.Eight))),
			hand:  []domain.Card{card(clubs, domain.Jack), card(hearts, domain.Eight), card(clubs, domain.Ten)},
			want:  card(clubs, domain.Ten),
		},
		{
			name:  "winning with only trumps plays lowest trump",
			trick: trickOf(domain.TrumpMode(clubs), play(self, card(clubs, domain.Ace)), play(1, card(clubs, domain.Eight))),
			hand:  []domain.Card{card(clubs, domain.Jack), card(clubs, domain.Ten)},
			want:  card(clubs, domain.Ten),
		},
		{
			name:  "winning keeps trumps",
			trick: trickOf(domain.TrumpMode(hearts), play(2, card(spades, domain.King)), play(3, card(spades, domain.Six)), play(self, card(spades, domain.Ace))),
			hand:  []domain.Card{card(hearts, domain.Six), card(diamonds, domain.Ace), card(clubs, domain.Seven)},
			want:  card(clubs, domain.Seven),
		},
		{
			name:  "losing and cannot beat discards lowest",
			trick: trickOf(domain.TopDownMode(), play(self, card(clubs, domain.Eight)), play(1, card(clubs, domain.Ace))),
			hand:  []domain.Card{card(clubs, domain.Jack), card(hearts, domain.Eight), card(clubs, domain.Ten)},
			want:  card(clubs, domain.Ten),
		},
		{
			name:  "losing beats with the cheapest lead-suit card",
			trick: trickOf(domain.TopDownMode(), play(1, card(clubs, domain.Ten))),
			hand:  []domain.Card{card(clubs, domain.Ace), card(clubs, domain.Queen), card(clubs, domain.Six)},
			want:  card(clubs, domain.Queen),
		},
		{
			name:  "losing in BottomUp beats with a lower card",
			trick: trickOf(domain.BottomUpMode(), play(1, card(hearts, domain.Ten))),
			hand:  []domain.Card{card(hearts, domain.Six), card(hearts, domain.Eight), card(hearts, domain.King)},
			want:  card(hearts, domain.Eight),
		},
		{
			name:  "losing with only trumps trumps in",
			trick: trickOf(domain.TrumpMode(clubs), play(1, card(diamonds, domain.Eight)), play(2, card(diamonds, domain.Ace))),
			hand:  []domain.Card{card(clubs, domain.Jack), card(clubs, domain.Ten)},
			want:  card(clubs, domain.Ten),
		},
		{
			name: "losing over-trumps cheaply",
			trick: trickOf(domain.TrumpMode(clubs),
				play(1, card(diamonds, domain.Eight)), play(2, card(clubs, domain.Queen))),
			hand: []domain.Card{card(clubs, domain.Jack), card(clubs, domain.Ace), card(clubs, domain.Six), card(hearts, domain.Seven)},
			want: card(clubs, domain.Ace),
		},
		{
			name: "losing and unable to over-trump discards side card",
			trick: trickOf(domain.TrumpMode(clubs),
				play(1, card(diamonds, domain.Eight)), play(2, card(clubs, domain.Jack))),
			hand: []domain.Card{card(clubs, domain.Ace), card(hearts, domain.Seven), card(spades, domain.King)},
			want: card(hearts, domain.Seven),
		},
		{
			name:  "lead suit beats before trumping",
			trick: trickOf(domain.TrumpMode(spades), play(1, card(hearts, domain.Ten))),
			hand:  []domain.Card{card(hearts, domain.King), card(spades, domain.Six), card(hearts, domain.Seven)},
			want:  card(hearts, domain.King),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := brain.NewMemory()
			m.MarkPlayed(tt.played...)
			cc := NewCardChooser(domain.StandardRules{}, m)

			got, err := cc.Choose(tt.hand, tt.trick, self)
			if err != nil {
				t.Fatalf("Choose failed: %v", err)
			}
			if got != tt.want {
				t.Fatalf("Choose = %v, want %v", got, tt.want)
			}
		})
	}
}

// refusingRules accepts nothing, mimicking a broken engine.
type refusingRules struct{ domain.StandardRules }

func (refusingRules) CanPlayCard(domain.Mode, domain.Card, *domain.Trick, []domain.Card) bool {
	return false
}

func TestCardChooser_NoLegalCard(t *testing.T) {
	cc := NewCardChooser(refusingRules{}, brain.NewMemory())
	_, err := cc.Choose([]domain.Card{card(clubs, domain.Six)}, trickOf(domain.TopDownMode()), self)
	if !errors.Is(err, ErrNoLegalCard) {
		t.Fatalf("err = %v, want ErrNoLegalCard", err)
	}

	_, err = cc.Choose(nil, trickOf(domain.TopDownMode()), self)
	if !errors.Is(err, ErrHandExhausted) {
		t.Fatalf("err = %v, want ErrHandExhausted", err)
	}
}

func TestLowestLegalCard(t *testing.T) {
	rules := domain.StandardRules{}
	tr := trickOf(domain.TrumpMode(hearts), play(1, card(spades, domain.Ace)))
	hand := []domain.Card{card(spades, domain.Queen), card(spades, domain.Seven), card(clubs, domain.Six), card(hearts, domain.Six)}

	got, err := LowestLegalCard(rules, tr, hand)
	if err != nil {
		t.Fatalf("LowestLegalCard failed: %v", err)
	}
	// clubs-six is illegal while spades are held and the trump is kept back.
	if got != card(spades, domain.Seven) {
		t.Fatalf("LowestLegalCard = %v, want spades-seven", got)
	}

	if _, err := LowestLegalCard(rules, tr, nil); !errors.Is(err, ErrHandExhausted) {
		t.Fatalf("err = %v, want ErrHandExhausted", err)
	}
}
