package nakama

import (
	"context"
	"database/sql"
	"math/rand"

	"jassbot/internal/app"
	"jassbot/internal/bot"
	"jassbot/internal/config"
	"jassbot/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
)

const (
	tableTickRate = 1
	// maxIdleTicks closes a table nobody watches.
	maxIdleTicks = 60
)

// TableState is the state of a bot table: four bots playing a session of
// games, one game per tick, while spectators receive the events.
type TableState struct {
	Presences   map[string]runtime.Presence
	Service     *app.Service
	Agents      []*bot.Agent
	GamesLeft   int
	GamesPlayed int
	Points      [2]int
	IdleTicks   int
}

func (ts *TableState) players() []app.Player {
	players := make([]app.Player, len(ts.Agents))
	for i, a := range ts.Agents {
		players[i] = a
	}
	return players
}

func NewMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule) (runtime.Match, error) {
	return &matchHandler{}, nil
}

type matchHandler struct{}

// MatchInit seats four bots from the bot config. Params may override the
// number of games ("games") and the strategy of every seat ("strategy").
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	cfg := config.GetBotConfig()
	games := cfg.Games
	if n, ok := intParam(params, "games"); ok && n > 0 {
		games = n
	}
	seats := cfg.Table()
	if s, ok := params["strategy"].(string); ok && s != "" {
		for i := range seats {
			seats[i].Strategy = s
		}
	}

	agents, err := config.NewAgents(seats, domain.StandardRules{}, logger)
	if err != nil {
		logger.Error("MatchInit: Failed to seat bots: %v", err)
		return nil, 0, ""
	}

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}
	state := &TableState{
		Presences: make(map[string]runtime.Presence),
		Service:   app.NewService(rng, domain.StandardRules{}, logger),
		Agents:    agents,
		GamesLeft: games,
	}
	for _, a := range agents {
		a.OnSessionStarted()
	}

	label, err := encodeLabel(tableLabel(state))
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}
	logger.Debug("MatchInit: Bot table with %d games.", games)
	return state, tableTickRate, label
}

// MatchJoinAttempt admits every spectator; seats are always taken by bots.
func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	if _, ok := state.(*TableState); !ok {
		return state, false, "invalid match state"
	}
	return state, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	tableState, ok := state.(*TableState)
	if !ok {
		return state
	}
	for _, p := range presences {
		tableState.Presences[p.GetSessionId()] = p
		logger.Info("MatchJoin: Spectator %s joined.", p.GetUserId())
	}
	mh.updateLabel(tableState, dispatcher, logger)
	return tableState
}

func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	tableState, ok := state.(*TableState)
	if !ok {
		return state
	}
	for _, p := range presences {
		delete(tableState.Presences, p.GetSessionId())
	}
	mh.updateLabel(tableState, dispatcher, logger)
	return tableState
}

// MatchLoop plays one game per tick while someone watches. Returning nil
// ends the match.
func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	tableState, ok := state.(*TableState)
	if !ok {
		return state
	}

	for _, msg := range messages {
		logger.Warn("MatchLoop: Spectators cannot send op code %d.", msg.GetOpCode())
	}

	if len(tableState.Presences) == 0 {
		tableState.IdleTicks++
		if tableState.IdleTicks >= maxIdleTicks {
			logger.Info("MatchLoop: Closing idle bot table.")
			mh.closeTable(tableState, dispatcher, logger)
			return nil
		}
		return tableState
	}
	tableState.IdleTicks = 0

	if tableState.GamesLeft <= 0 {
		mh.closeTable(tableState, dispatcher, logger)
		return nil
	}

	dealer := tableState.GamesPlayed % domain.Seats
	game, events, err := tableState.Service.PlayGame(tableState.players(), dealer)
	for _, ev := range events {
		mh.broadcastEvent(tableState, dispatcher, logger, ev)
	}
	if err != nil {
		logger.Error("MatchLoop: Game aborted: %v", err)
		mh.closeTable(tableState, dispatcher, logger)
		return nil
	}

	tableState.GamesPlayed++
	tableState.GamesLeft--
	tableState.Points[0] += game.Points[0]
	tableState.Points[1] += game.Points[1]
	mh.updateLabel(tableState, dispatcher, logger)
	return tableState
}

func (mh *matchHandler) broadcastEvent(state *TableState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, ev app.Event) {
	if len(ev.Recipients) > 0 {
		return
	}
	op, data, err := encodeEvent(ev)
	if err != nil {
		logger.Error("BroadcastEvent: %v", err)
		return
	}
	if err := dispatcher.BroadcastMessage(op, data, nil, nil, true); err != nil {
		logger.Error("BroadcastEvent: Failed to broadcast %s: %v", ev.Kind, err)
	}
}

// closeTable finishes the bots' session and tells spectators the result.
func (mh *matchHandler) closeTable(state *TableState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	for _, a := range state.Agents {
		a.OnSessionFinished()
	}
	data, err := encodeLabel(map[string]interface{}{
		"games_played": state.GamesPlayed,
		"points":       []interface{}{state.Points[0], state.Points[1]},
	})
	if err != nil {
		logger.Error("CloseTable: Failed to marshal result: %v", err)
		return
	}
	if err := dispatcher.BroadcastMessage(OpTableClosed, []byte(data), nil, nil, true); err != nil {
		logger.Error("CloseTable: Failed to broadcast: %v", err)
	}
}

func tableLabel(state *TableState) map[string]interface{} {
	return map[string]interface{}{
		"game":       "jass",
		"spectators": len(state.Presences),
		"games_left": state.GamesLeft,
	}
}

func (mh *matchHandler) updateLabel(state *TableState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	label, err := encodeLabel(tableLabel(state))
	if err != nil {
		logger.Error("UpdateLabel: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(label); err != nil {
		logger.Error("UpdateLabel: Failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, graceSeconds int) interface{} {
	logger.Debug("MatchTerminate: Bot table terminated with %d seconds grace.", graceSeconds)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}

// intParam reads a numeric match param; JSON-decoded params arrive as float64.
func intParam(params map[string]interface{}, key string) (int, bool) {
	switch v := params[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	}
	return 0, false
}
