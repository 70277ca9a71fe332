package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"jassbot/internal/bot"
	"jassbot/internal/config"
	"jassbot/internal/domain"

	"github.com/google/uuid"
	"github.com/heroiclabs/nakama-common/runtime"
)

// Bot event names accepted by RpcNotifyBot.
const (
	BotEventGameStarted  = "game_started"
	BotEventHandDealt    = "hand_dealt"
	BotEventMoveMade     = "move_made"
	BotEventGameFinished = "game_finished"
)

type CreateBotRequest struct {
	Name     string `json:"name"`
	Strategy string `json:"strategy"`
	Seat     int    `json:"seat"`
}

type CreateBotResponse struct {
	SessionID string `json:"session_id"`
	Name      string `json:"name"`
	Strategy  string `json:"strategy"`
	Seat      int    `json:"seat"`
}

type BotEventRequest struct {
	SessionID string        `json:"session_id"`
	Event     string        `json:"event"`
	Hand      []domain.Card `json:"hand,omitempty"`
	Play      *domain.Play  `json:"play,omitempty"`
}

type TrumpfRequest struct {
	SessionID string `json:"session_id"`
	Shifted   bool   `json:"shifted"`
}

type TrumpfResponse struct {
	Mode domain.Mode `json:"mode"`
}

// CardRequest carries the trick so far; lead suit and winner are derived
// server side from the plays.
type CardRequest struct {
	SessionID string        `json:"session_id"`
	Mode      domain.Mode   `json:"mode"`
	Plays     []domain.Play `json:"plays"`
}

type CardResponse struct {
	Card domain.Card   `json:"card"`
	Hand []domain.Card `json:"hand"`
}

type SessionRequest struct {
	SessionID string `json:"session_id"`
}

type AckResponse struct {
	OK bool `json:"ok"`
}

// RpcCreateBot starts a bot session and returns its id. Name and strategy
// default to the loaded bot config.
func RpcCreateBot(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	defaults := config.GetBotConfig()
	req := CreateBotRequest{Name: defaults.Name, Strategy: defaults.Strategy}
	if payload != "" {
		if err := decodePayload(payload, &req); err != nil {
			return "", err
		}
	}
	if req.Seat < 0 || req.Seat >= domain.Seats {
		return "", runtime.NewError("seat out of range", codeInvalidArgument)
	}

	level, err := bot.ParseLevel(req.Strategy)
	if err != nil {
		return "", runtime.NewError(err.Error(), codeInvalidArgument)
	}
	rules := domain.StandardRules{}
	strategy, err := bot.NewStrategy(level, rules)
	if err != nil {
		logger.Error("RpcCreateBot: %v", err)
		return "", runtime.NewError("failed to create strategy", codeInternal)
	}

	agent := bot.NewAgent(req.Seat, req.Name, strategy, rules, logger)
	agent.OnSessionStarted()
	id := sessions.add(agent)
	logger.Info("RpcCreateBot: session %s for %s (%s) at seat %d", id, req.Name, strategy.Name(), req.Seat)

	return encodeResponse(CreateBotResponse{
		SessionID: id.String(),
		Name:      req.Name,
		Strategy:  strategy.Name(),
		Seat:      req.Seat,
	})
}

// RpcNotifyBot forwards a game event to the bot.
func RpcNotifyBot(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req BotEventRequest
	if err := decodePayload(payload, &req); err != nil {
		return "", err
	}
	s, err := lookupSession(req.SessionID)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch req.Event {
	case BotEventGameStarted:
		s.agent.OnGameStarted()
	case BotEventHandDealt:
		if err := validateCards(req.Hand); err != nil {
			return "", err
		}
		s.agent.SetHand(req.Hand)
	case BotEventMoveMade:
		if req.Play == nil || !req.Play.Card.Valid() || req.Play.Seat < 0 || req.Play.Seat >= domain.Seats {
			return "", runtime.NewError("move_made needs a valid play", codeInvalidArgument)
		}
		s.agent.OnMoveMade(*req.Play)
	case BotEventGameFinished:
		s.agent.OnGameFinished()
	default:
		return "", runtime.NewError("unknown event "+req.Event, codeInvalidArgument)
	}
	return encodeResponse(AckResponse{OK: true})
}

// RpcChooseTrumpf asks the bot for its declaration.
func RpcChooseTrumpf(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req TrumpfRequest
	if err := decodePayload(payload, &req); err != nil {
		return "", err
	}
	s, err := lookupSession(req.SessionID)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	mode := s.agent.ChooseTrumpf(req.Shifted)
	s.mu.Unlock()
	return encodeResponse(TrumpfResponse{Mode: mode})
}

// RpcChooseCard asks the bot for its next card. The card is removed from the
// bot's hand; the caller still reports it back through a move_made event.
func RpcChooseCard(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req CardRequest
	if err := decodePayload(payload, &req); err != nil {
		return "", err
	}
	if !req.Mode.Valid() {
		return "", runtime.NewError("mode must be top_down, bottom_up or trump", codeInvalidArgument)
	}
	if len(req.Plays) >= domain.Seats {
		return "", runtime.NewError("trick is already complete", codeInvalidArgument)
	}
	trick := domain.NewTrick(req.Mode)
	for _, p := range req.Plays {
		if !p.Card.Valid() || p.Seat < 0 || p.Seat >= domain.Seats {
			return "", runtime.NewError("invalid play in trick", codeInvalidArgument)
		}
		trick.Add(p.Seat, p.Card)
	}

	s, err := lookupSession(req.SessionID)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	card, err := s.agent.MakeMove(trick)
	if err != nil {
		logger.Warn("RpcChooseCard: session %s: %v", req.SessionID, err)
		if errors.Is(err, bot.ErrHandExhausted) || errors.Is(err, bot.ErrNoLegalCard) {
			return "", runtime.NewError(err.Error(), codeFailedPrecondition)
		}
		return "", runtime.NewError("failed to choose card", codeInternal)
	}
	return encodeResponse(CardResponse{Card: card, Hand: s.agent.Hand()})
}

// RpcReleaseBot ends the session.
func RpcReleaseBot(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req SessionRequest
	if err := decodePayload(payload, &req); err != nil {
		return "", err
	}
	id, err := uuid.Parse(req.SessionID)
	if err != nil {
		return "", runtime.NewError("invalid session_id", codeInvalidArgument)
	}
	s, err := sessions.remove(id)
	if err != nil {
		return "", runtime.NewError(err.Error(), codeNotFound)
	}

	s.mu.Lock()
	s.agent.OnSessionFinished()
	s.mu.Unlock()
	logger.Info("RpcReleaseBot: session %s released", id)
	return encodeResponse(AckResponse{OK: true})
}

func lookupSession(raw string) (*botSession, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, runtime.NewError("invalid session_id", codeInvalidArgument)
	}
	s, err := sessions.get(id)
	if err != nil {
		return nil, runtime.NewError(err.Error(), codeNotFound)
	}
	return s, nil
}

func validateCards(cards []domain.Card) error {
	for _, c := range cards {
		if !c.Valid() {
			return runtime.NewError("invalid card in hand", codeInvalidArgument)
		}
	}
	if !domain.UniqueCards(cards) {
		return runtime.NewError("duplicate card in hand", codeInvalidArgument)
	}
	return nil
}

func decodePayload(payload string, v interface{}) error {
	if err := json.Unmarshal([]byte(payload), v); err != nil {
		return runtime.NewError("invalid payload: "+err.Error(), codeInvalidArgument)
	}
	return nil
}

func encodeResponse(v interface{}) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", runtime.NewError("failed to encode response", codeInternal)
	}
	return string(b), nil
}
