package app

import (
	"jassbot/internal/domain"

	"github.com/google/uuid"
)

// EventKind identifies emitted game events for dispatch and logging.
type EventKind string

const (
	EventGameStarted  EventKind = "game_started"
	EventHandDealt    EventKind = "hand_dealt"
	EventTrumpfChosen EventKind = "trumpf_chosen"
	EventCardPlayed   EventKind = "card_played"
	EventTrickWon     EventKind = "trick_won"
	EventGameEnded    EventKind = "game_ended"
)

// Event is a game event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []int // seats; empty means broadcast
}

type GameStartedPayload struct {
	GameID uuid.UUID `json:"game_id"`
	Dealer int       `json:"dealer"`
}

type HandDealtPayload struct {
	Seat int           `json:"seat"`
	Hand []domain.Card `json:"hand"`
}

type TrumpfChosenPayload struct {
	Seat    int         `json:"seat"`
	Mode    domain.Mode `json:"mode"`
	Shifted bool        `json:"shifted"`
}

type CardPlayedPayload struct {
	Seat     int         `json:"seat"`
	Card     domain.Card `json:"card"`
	NextSeat int         `json:"next_seat"` // domain.NoSeat once the trick is complete
}

type TrickWonPayload struct {
	Seat   int           `json:"seat"`
	Points int           `json:"points"`
	Cards  []domain.Card `json:"cards"`
}

type GameEndedPayload struct {
	GameID uuid.UUID `json:"game_id"`
	Points [2]int    `json:"points"`
}
