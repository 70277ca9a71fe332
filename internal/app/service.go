package app

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"jassbot/internal/domain"

	"github.com/google/uuid"
	"github.com/heroiclabs/nakama-common/runtime"
)

// HandSize is the number of cards dealt to every seat; it is also the number
// of tricks in a game.
const HandSize = domain.DeckSize / domain.Seats

var (
	ErrNotEnoughPlayers = errors.New("a jass table needs exactly four players")
	ErrInvalidMode      = errors.New("invalid trumpf declaration")
	ErrIllegalMove      = errors.New("illegal move")
)

// Player is a seat at the table. bot.Agent satisfies it.
type Player interface {
	SetHand(cards []domain.Card)
	ChooseTrumpf(shifted bool) domain.Mode
	MakeMove(trick *domain.Trick) (domain.Card, error)

	OnSessionStarted()
	OnGameStarted()
	OnMoveMade(play domain.Play)
	OnGameFinished()
	OnSessionFinished()
}

// Game is the record of one dealt hand played out to the end.
type Game struct {
	ID       uuid.UUID
	Dealer   int
	Declarer int
	Shifted  bool
	Mode     domain.Mode
	Tricks   []*domain.Trick
	Points   [2]int // by team, see domain.TeamOf

	hands [domain.Seats][]domain.Card
}

// Hand returns the cards seat still holds according to the table.
func (g *Game) Hand(seat int) []domain.Card {
	return append([]domain.Card(nil), g.hands[seat]...)
}

// SessionResult sums the games of one session.
type SessionResult struct {
	Games  []*Game
	Points [2]int
}

// Service runs Jass games between players, validating every move.
type Service struct {
	rng    *rand.Rand
	rules  domain.Rules
	logger runtime.Logger
}

// NewService constructs a Service with provided rng or a time-seeded default.
func NewService(rng *rand.Rand, rules domain.Rules, logger runtime.Logger) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng, rules: rules, logger: logger}
}

// PlaySession plays games consecutive games, rotating the dealer.
func (s *Service) PlaySession(players []Player, games int) (*SessionResult, error) {
	if len(players) != domain.Seats {
		return nil, ErrNotEnoughPlayers
	}

	for _, p := range players {
		p.OnSessionStarted()
	}

	result := &SessionResult{}
	for i := 0; i < games; i++ {
		game, _, err := s.PlayGame(players, i%domain.Seats)
		if err != nil {
			return result, fmt.Errorf("game %d: %w", i+1, err)
		}
		result.Games = append(result.Games, game)
		result.Points[0] += game.Points[0]
		result.Points[1] += game.Points[1]
	}

	for _, p := range players {
		p.OnSessionFinished()
	}
	s.logger.Info("PlaySession: %d games played, points %v", games, result.Points)
	return result, nil
}

// PlayGame deals, lets the seat after the dealer declare (or shift to its
// partner) and plays all tricks. The returned events are in play order; on
// error the game is aborted and the events up to the failure are returned.
func (s *Service) PlayGame(players []Player, dealer int) (*Game, []Event, error) {
	if len(players) != domain.Seats {
		return nil, nil, ErrNotEnoughPlayers
	}

	game := &Game{ID: uuid.New(), Dealer: dealer % domain.Seats}
	events := make([]Event, 0, 2+domain.Seats+domain.DeckSize+2*HandSize)
	events = append(events, Event{
		Kind:    EventGameStarted,
		Payload: GameStartedPayload{GameID: game.ID, Dealer: game.Dealer},
	})

	for _, p := range players {
		p.OnGameStarted()
	}

	deck := domain.ShuffleDeck(s.rng, domain.NewDeck())
	for seat, p := range players {
		hand := append([]domain.Card(nil), deck[seat*HandSize:(seat+1)*HandSize]...)
		domain.SortCards(hand)
		game.hands[seat] = hand
		p.SetHand(hand)

		events = append(events, Event{
			Kind:       EventHandDealt,
			Payload:    HandDealtPayload{Seat: seat, Hand: hand},
			Recipients: []int{seat},
		})
	}

	if err := s.declare(game, players); err != nil {
		s.logger.Warn("PlayGame: %v", err)
		return game, events, err
	}
	events = append(events, Event{
		Kind:    EventTrumpfChosen,
		Payload: TrumpfChosenPayload{Seat: game.Declarer, Mode: game.Mode, Shifted: game.Shifted},
	})

	// The forehand leads the first trick even when it shifted.
	leader := (game.Dealer + 1) % domain.Seats
	for i := 0; i < HandSize; i++ {
		trick, trickEvents, err := s.playTrick(game, players, leader)
		events = append(events, trickEvents...)
		if err != nil {
			s.logger.Error("PlayGame: game %s aborted in trick %d: %v", game.ID, i+1, err)
			return game, events, err
		}

		points := domain.TrickPoints(trick)
		if i == HandSize-1 {
			points += domain.LastTrickBonus
		}
		game.Points[domain.TeamOf(trick.Winner)] += points
		game.Tricks = append(game.Tricks, trick)
		events = append(events, Event{
			Kind:    EventTrickWon,
			Payload: TrickWonPayload{Seat: trick.Winner, Points: points, Cards: trick.Cards()},
		})
		leader = trick.Winner
	}

	for _, p := range players {
		p.OnGameFinished()
	}
	events = append(events, Event{
		Kind:    EventGameEnded,
		Payload: GameEndedPayload{GameID: game.ID, Points: game.Points},
	})
	s.logger.Debug("PlayGame: game %s in %v by seat %d, points %v", game.ID, game.Mode, game.Declarer, game.Points)
	return game, events, nil
}

func (s *Service) declare(game *Game, players []Player) error {
	seat := (game.Dealer + 1) % domain.Seats
	mode := players[seat].ChooseTrumpf(false)
	if mode.Kind == domain.Shift {
		seat = domain.PartnerOf(seat)
		game.Shifted = true
		mode = players[seat].ChooseTrumpf(true)
	}
	if !mode.Valid() {
		return fmt.Errorf("%w: seat %d declared %v (shifted=%v)", ErrInvalidMode, seat, mode, game.Shifted)
	}
	game.Declarer = seat
	game.Mode = mode
	return nil
}

func (s *Service) playTrick(game *Game, players []Player, leader int) (*domain.Trick, []Event, error) {
	trick := domain.NewTrick(game.Mode)
	events := make([]Event, 0, domain.Seats)

	for k := 0; k < domain.Seats; k++ {
		seat := (leader + k) % domain.Seats
		card, err := players[seat].MakeMove(trick)
		if err != nil {
			return trick, events, fmt.Errorf("seat %d: %w", seat, err)
		}
		if !s.rules.CanPlayCard(game.Mode, card, trick, game.hands[seat]) {
			return trick, events, fmt.Errorf("%w: seat %d played %v on %v", ErrIllegalMove, seat, card, trick.Cards())
		}

		game.hands[seat] = domain.RemoveCard(game.hands[seat], card)
		trick.Add(seat, card)

		play := domain.Play{Seat: seat, Card: card}
		for _, p := range players {
			p.OnMoveMade(play)
		}

		next := domain.NoSeat
		if !trick.Complete() {
			next = (seat + 1) % domain.Seats
		}
		events = append(events, Event{
			Kind:    EventCardPlayed,
			Payload: CardPlayedPayload{Seat: seat, Card: card, NextSeat: next},
		})
	}
	return trick, events, nil
}
