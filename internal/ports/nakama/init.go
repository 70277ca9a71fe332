package nakama

import (
	"context"
	"database/sql"

	"jassbot/internal/config"

	"github.com/heroiclabs/nakama-common/runtime"
)

// InitModule wires RPCs and the bot table match handler for Nakama runtime.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	if env, ok := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string); ok {
		if path := env[EnvConfigPath]; path != "" {
			if err := config.LoadBotConfig(path); err != nil {
				logger.Warn("InitModule: Could not load bot config, using defaults: %v", err)
			}
		}
	}

	if err := RegisterRPCs(initializer); err != nil {
		return err
	}

	if err := initializer.RegisterMatch(MatchNameBotTable, NewMatch); err != nil {
		return err
	}

	logger.Info("Jass bot Go module loaded.")
	return nil
}

// RegisterRPCs registers Nakama RPC endpoints.
func RegisterRPCs(initializer runtime.Initializer) error {
	rpcs := []struct {
		id string
		fn func(context.Context, runtime.Logger, *sql.DB, runtime.NakamaModule, string) (string, error)
	}{
		{RpcBotCreate, RpcCreateBot},
		{RpcBotEvent, RpcNotifyBot},
		{RpcBotTrumpf, RpcChooseTrumpf},
		{RpcBotCard, RpcChooseCard},
		{RpcBotRelease, RpcReleaseBot},
		{RpcBotTable, RpcCreateTable},
	}
	for _, r := range rpcs {
		if err := initializer.RegisterRpc(r.id, r.fn); err != nil {
			return err
		}
	}
	return nil
}
