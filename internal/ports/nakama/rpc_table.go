package nakama

import (
	"context"
	"database/sql"

	"jassbot/internal/bot"

	"github.com/heroiclabs/nakama-common/runtime"
)

type CreateTableRequest struct {
	Games    int    `json:"games"`
	Strategy string `json:"strategy"`
}

// CreateTableResponse is the payload returned to clients creating a bot table.
type CreateTableResponse struct {
	MatchID string `json:"match_id"`
}

// RpcCreateTable creates a bot table match that the caller can join to watch.
func RpcCreateTable(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req CreateTableRequest
	if payload != "" {
		if err := decodePayload(payload, &req); err != nil {
			return "", err
		}
	}
	if req.Games < 0 {
		return "", runtime.NewError("games must not be negative", codeInvalidArgument)
	}

	params := map[string]interface{}{}
	if req.Games > 0 {
		params["games"] = req.Games
	}
	if req.Strategy != "" {
		if _, err := bot.ParseLevel(req.Strategy); err != nil {
			return "", runtime.NewError(err.Error(), codeInvalidArgument)
		}
		params["strategy"] = req.Strategy
	}

	matchID, err := nk.MatchCreate(ctx, MatchNameBotTable, params)
	if err != nil {
		logger.Error("RpcCreateTable: MatchCreate error: %v", err)
		return "", err
	}

	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	logger.Info("RpcCreateTable [User:%s]: Created bot table %s", userID, matchID)
	return encodeResponse(CreateTableResponse{MatchID: matchID})
}
