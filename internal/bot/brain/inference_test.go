package brain

import (
	"testing"

	"jassbot/internal/domain"
)

func card(s domain.Suit, r domain.Rank) domain.Card {
	return domain.Card{Suit: s, Rank: r}
}

func TestEstimator_IsBock(t *testing.T) {
	allTrumps := func(s domain.Suit, except ...domain.Rank) []domain.Card {
		var out []domain.Card
	next:
		for r := domain.Six; r <= domain.Ace; r++ {
			for _, x := range except {
				if r == x {
					continue next
				}
			}
			out = append(out, card(s, r))
		}
		return out
	}

	tests := []struct {
		name   string
		mode   domain.Mode
		played []domain.Card
		card   domain.Card
		want   bool
	}{
		{
			name: "TopDown ace is always a Bock",
			mode: domain.TopDownMode(),
			card: card(domain.Clubs, domain.Ace),
			want: true,
		},
		{
			name: "TopDown king with ace unseen",
			mode: domain.TopDownMode(),
			card: card(domain.Clubs, domain.King),
			want: false,
		},
		{
			name:   "TopDown king after ace played",
			mode:   domain.TopDownMode(),
			played: []domain.Card{card(domain.Clubs, domain.Ace)},
			card:   card(domain.Clubs, domain.King),
			want:   true,
		},
		{
			name:   "TopDown other suit ace does not help",
			mode:   domain.TopDownMode(),
			played: []domain.Card{card(domain.Hearts, domain.Ace)},
			card:   card(domain.Clubs, domain.King),
			want:   false,
		},
		{
			name: "BottomUp six is always a Bock",
			mode: domain.BottomUpMode(),
			card: card(domain.Spades, domain.Six),
			want: true,
		},
		{
			name: "BottomUp seven with six unseen",
			mode: domain.BottomUpMode(),
			card: card(domain.Spades, domain.Seven),
			want: false,
		},
		{
			name:   "BottomUp seven after six played",
			mode:   domain.BottomUpMode(),
			played: []domain.Card{card(domain.Spades, domain.Six)},
			card:   card(domain.Spades, domain.Seven),
			want:   true,
		},
		{
			name: "trump jack is always a Bock",
			mode: domain.TrumpMode(domain.Hearts),
			card: card(domain.Hearts, domain.Jack),
			want: true,
		},
		{
			name: "trump ace loses to unseen jack and nine",
			mode: domain.TrumpMode(domain.Hearts),
			card: card(domain.Hearts, domain.Ace),
			want: false,
		},
		{
			name:   "trump ace after jack and nine played",
			mode:   domain.TrumpMode(domain.Hearts),
			played: []domain.Card{card(domain.Hearts, domain.Jack), card(domain.Hearts, domain.Nine)},
			card:   card(domain.Hearts, domain.Ace),
			want:   true,
		},
		{
			name: "side ace while trumps remain",
			mode: domain.TrumpMode(domain.Hearts),
			card: card(domain.Clubs, domain.Ace),
			want: false,
		},
		{
			name:   "side ace with eight trumps seen",
			mode:   domain.TrumpMode(domain.Hearts),
			played: allTrumps(domain.Hearts, domain.Six),
			card:   card(domain.Clubs, domain.Ace),
			want:   false,
		},
		{
			name:   "side ace once trumps are exhausted",
			mode:   domain.TrumpMode(domain.Hearts),
			played: allTrumps(domain.Hearts),
			card:   card(domain.Clubs, domain.Ace),
			want:   true,
		},
		{
			name:   "side king once trumps are exhausted but ace unseen",
			mode:   domain.TrumpMode(domain.Hearts),
			played: allTrumps(domain.Hearts),
			card:   card(domain.Clubs, domain.King),
			want:   false,
		},
		{
			name: "shift is never a Bock",
			mode: domain.ShiftMode(),
			card: card(domain.Clubs, domain.Ace),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMemory()
			m.MarkPlayed(tt.played...)
			e := NewEstimator(m, domain.StandardRules{})
			if got := e.IsBock(tt.mode, tt.card); got != tt.want {
				t.Fatalf("IsBock(%v, %v) = %v, want %v", tt.mode, tt.card, got, tt.want)
			}
		})
	}
}

func TestEstimator_BockCards(t *testing.T) {
	e := NewEstimator(NewMemory(), domain.StandardRules{})
	hand := []domain.Card{
		card(domain.Clubs, domain.Ace),
		card(domain.Hearts, domain.Eight),
		card(domain.Clubs, domain.Ten),
		card(domain.Spades, domain.Ace),
	}

	bocks := e.BockCards(domain.TopDownMode(), hand)
	if len(bocks) != 2 || bocks[0] != hand[0] || bocks[1] != hand[3] {
		t.Fatalf("BockCards = %v, want both aces", bocks)
	}
}

func TestEstimator_TrumpsRemaining(t *testing.T) {
	m := NewMemory()
	e := NewEstimator(m, domain.StandardRules{})
	mode := domain.TrumpMode(domain.Diamonds)

	if got := e.TrumpsRemaining(mode); got != 9 {
		t.Fatalf("TrumpsRemaining = %d, want 9", got)
	}
	m.MarkPlayed(card(domain.Diamonds, domain.Jack), card(domain.Clubs, domain.Jack))
	if got := e.TrumpsRemaining(mode); got != 8 {
		t.Fatalf("TrumpsRemaining = %d, want 8", got)
	}
	if got := e.TrumpsRemaining(domain.TopDownMode()); got != 0 {
		t.Fatalf("TopDown TrumpsRemaining = %d, want 0", got)
	}
}
