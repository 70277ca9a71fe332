package nakama

import (
	"context"
	"encoding/json"
	"testing"

	"jassbot/internal/config"

	"github.com/heroiclabs/nakama-common/runtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockDispatcher records match dispatcher calls for assertions.
type mockDispatcher struct {
	opCodes      []int64
	messages     [][]byte
	labelUpdates int
	lastLabel    string
}

func (md *mockDispatcher) BroadcastMessage(opCode int64, data []byte, presences []runtime.Presence, sender runtime.Presence, reliable bool) error {
	md.opCodes = append(md.opCodes, opCode)
	md.messages = append(md.messages, append([]byte(nil), data...))
	return nil
}

func (md *mockDispatcher) BroadcastMessageDeferred(opCode int64, data []byte, presences []runtime.Presence, sender runtime.Presence, reliable bool) error {
	return nil
}

func (md *mockDispatcher) MatchKick(presences []runtime.Presence) error {
	return nil
}

func (md *mockDispatcher) MatchLabelUpdate(label string) error {
	md.labelUpdates++
	md.lastLabel = label
	return nil
}

func (md *mockDispatcher) count(op int64) int {
	n := 0
	for _, o := range md.opCodes {
		if o == op {
			n++
		}
	}
	return n
}

// testPresence only answers the ids the handler reads.
type testPresence struct {
	runtime.Presence
	userID    string
	sessionID string
}

func (p testPresence) GetUserId() string    { return p.userID }
func (p testPresence) GetSessionId() string { return p.sessionID }

func initTable(t *testing.T, params map[string]interface{}) (*matchHandler, *TableState) {
	t.Helper()
	mh := &matchHandler{}
	state, tickRate, label := mh.MatchInit(context.Background(), noopLogger{}, nil, nil, params)
	require.NotNil(t, state)
	assert.Equal(t, tableTickRate, tickRate)
	assert.Equal(t, "jass", decodeLabel(t, label)["game"])
	return mh, state.(*TableState)
}

// decodeLabel parses a label; protojson output is not byte-stable.
func decodeLabel(t *testing.T, label string) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(label), &out))
	return out
}

func TestMatchInit_Params(t *testing.T) {
	_, state := initTable(t, map[string]interface{}{"games": float64(3), "strategy": "baseline"})
	assert.Equal(t, 3, state.GamesLeft)
	require.Len(t, state.Agents, 4)
	for _, a := range state.Agents {
		assert.Equal(t, "baseline", a.Strategy.Name())
	}

	_, state = initTable(t, nil)
	assert.Equal(t, config.GetBotConfig().Games, state.GamesLeft)
	assert.Equal(t, "heuristic", state.Agents[0].Strategy.Name())
}

func TestMatchInit_UnknownStrategy(t *testing.T) {
	mh := &matchHandler{}
	state, _, _ := mh.MatchInit(context.Background(), noopLogger{}, nil, nil, map[string]interface{}{"strategy": "god"})
	assert.Nil(t, state)
}

func TestMatchLoop_PlaysGamesForSpectators(t *testing.T) {
	mh, state := initTable(t, map[string]interface{}{"games": 2})
	md := &mockDispatcher{}
	ctx := context.Background()

	// Nobody watches: nothing is played.
	got := mh.MatchLoop(ctx, noopLogger{}, nil, nil, md, 1, state, nil)
	require.NotNil(t, got)
	assert.Empty(t, md.opCodes)

	mh.MatchJoin(ctx, noopLogger{}, nil, nil, md, 2, state, []runtime.Presence{testPresence{userID: "u1", sessionID: "s1"}})
	assert.Equal(t, float64(1), decodeLabel(t, md.lastLabel)["spectators"])

	for tick := int64(3); tick <= 4; tick++ {
		got = mh.MatchLoop(ctx, noopLogger{}, nil, nil, md, tick, state, nil)
		require.NotNil(t, got)
	}
	assert.Equal(t, 2, state.GamesPlayed)
	assert.Equal(t, 2*157, state.Points[0]+state.Points[1])
	assert.Equal(t, 2, md.count(OpGameStarted))
	assert.Equal(t, 2, md.count(OpTrumpfChosen))
	assert.Equal(t, 2*36, md.count(OpCardPlayed))
	assert.Equal(t, 2*9, md.count(OpTrickWon))
	assert.Equal(t, 2, md.count(OpGameEnded))

	// The session is over: the table closes.
	got = mh.MatchLoop(ctx, noopLogger{}, nil, nil, md, 5, state, nil)
	assert.Nil(t, got)
	require.Equal(t, OpTableClosed, md.opCodes[len(md.opCodes)-1])

	var closed map[string]interface{}
	require.NoError(t, json.Unmarshal(md.messages[len(md.messages)-1], &closed))
	assert.Equal(t, float64(2), closed["games_played"])
}

func TestMatchLoop_ClosesIdleTable(t *testing.T) {
	mh, state := initTable(t, nil)
	md := &mockDispatcher{}
	ctx := context.Background()

	mh.MatchJoin(ctx, noopLogger{}, nil, nil, md, 1, state, []runtime.Presence{testPresence{userID: "u1", sessionID: "s1"}})
	mh.MatchLeave(ctx, noopLogger{}, nil, nil, md, 2, state, []runtime.Presence{testPresence{userID: "u1", sessionID: "s1"}})
	assert.Empty(t, state.Presences)

	var got interface{} = state
	for tick := int64(0); tick < maxIdleTicks; tick++ {
		got = mh.MatchLoop(ctx, noopLogger{}, nil, nil, md, tick, state, nil)
	}
	assert.Nil(t, got)
	assert.Equal(t, 0, state.GamesPlayed)
}

func TestEncodeEvent_CardPlayed(t *testing.T) {
	_, state := initTable(t, nil)
	game, events, err := state.Service.PlayGame(state.players(), 0)
	require.NoError(t, err)
	require.NotNil(t, game)

	for _, ev := range events {
		op, data, err := encodeEvent(ev)
		if len(ev.Recipients) > 0 {
			assert.Error(t, err, "dealt hands are never encoded")
			continue
		}
		require.NoError(t, err)
		var msg map[string]interface{}
		require.NoError(t, json.Unmarshal(data, &msg))
		assert.Equal(t, string(ev.Kind), msg["kind"])
		if op == OpCardPlayed {
			card := msg["card"].(map[string]interface{})
			assert.NotEmpty(t, card["suit"])
			assert.NotEmpty(t, card["rank"])
		}
	}
}

// mockNakama records MatchCreate calls.
type mockNakama struct {
	runtime.NakamaModule
	module string
	params map[string]interface{}
}

func (m *mockNakama) MatchCreate(ctx context.Context, module string, params map[string]interface{}) (string, error) {
	m.module = module
	m.params = params
	return "match-1.nakama", nil
}

func TestRpcCreateTable(t *testing.T) {
	nk := &mockNakama{}
	out, err := RpcCreateTable(context.Background(), noopLogger{}, nil, nk, `{"games":5,"strategy":"baseline"}`)
	require.NoError(t, err)

	var resp CreateTableResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "match-1.nakama", resp.MatchID)
	assert.Equal(t, MatchNameBotTable, nk.module)
	assert.Equal(t, map[string]interface{}{"games": 5, "strategy": "baseline"}, nk.params)

	_, err = RpcCreateTable(context.Background(), noopLogger{}, nil, nk, `{"strategy":"god"}`)
	assert.Error(t, err)
}
