package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ModeKind tags the variants of Mode.
type ModeKind int

const (
	// TopDown ranks Ace highest, no trump suit ("Obenabe").
	TopDown ModeKind = iota
	// BottomUp ranks Six highest, no trump suit ("Undenufe").
	BottomUp
	// Trump makes one suit outrank all others.
	Trump
	// Shift declines to choose and defers to the partner ("Schiebe").
	Shift
)

var modeKindNames = [4]string{"top_down", "bottom_up", "trump", "shift"}

func (k ModeKind) String() string {
	if k < TopDown || k > Shift {
		return fmt.Sprintf("mode(%d)", int(k))
	}
	return modeKindNames[k]
}

// Mode is the game mode declared for one game. Suit is only meaningful when
// Kind is Trump.
type Mode struct {
	Kind ModeKind
	Suit Suit
}

func TopDownMode() Mode  { return Mode{Kind: TopDown} }
func BottomUpMode() Mode { return Mode{Kind: BottomUp} }
func ShiftMode() Mode    { return Mode{Kind: Shift} }

// TrumpMode declares s as the trump suit.
func TrumpMode(s Suit) Mode { return Mode{Kind: Trump, Suit: s} }

// TrumpSuit returns the trump suit, if the mode has one.
func (m Mode) TrumpSuit() (Suit, bool) {
	if m.Kind != Trump {
		return 0, false
	}
	return m.Suit, true
}

// IsTrump reports whether c belongs to the trump suit of m.
func (m Mode) IsTrump(c Card) bool {
	return m.Kind == Trump && c.Suit == m.Suit
}

// Valid reports whether cards can be played under m.
func (m Mode) Valid() bool {
	switch m.Kind {
	case TopDown, BottomUp:
		return true
	case Trump:
		return m.Suit >= Clubs && m.Suit <= Diamonds
	}
	return false
}

func (m Mode) String() string {
	if m.Kind == Trump {
		return "trump-" + m.Suit.String()
	}
	return m.Kind.String()
}

type modeJSON struct {
	Kind string `json:"kind"`
	Suit *Suit  `json:"suit,omitempty"`
}

// MarshalJSON encodes the mode as {"kind":"trump","suit":"clubs"}.
func (m Mode) MarshalJSON() ([]byte, error) {
	out := modeJSON{Kind: m.Kind.String()}
	if m.Kind == Trump {
		s := m.Suit
		out.Suit = &s
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the form produced by MarshalJSON.
func (m *Mode) UnmarshalJSON(data []byte) error {
	var in modeJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	kind := strings.ToLower(in.Kind)
	for i, n := range modeKindNames {
		if n != kind {
			continue
		}
		*m = Mode{Kind: ModeKind(i)}
		if m.Kind == Trump {
			if in.Suit == nil {
				return fmt.Errorf("trump mode without suit")
			}
			m.Suit = *in.Suit
		}
		return nil
	}
	return fmt.Errorf("unknown mode %q", in.Kind)
}
