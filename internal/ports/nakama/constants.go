package nakama

const (
	// RPC ids for remote-controlled bot sessions.
	RpcBotCreate  = "jass_bot_create"
	RpcBotEvent   = "jass_bot_event"
	RpcBotTrumpf  = "jass_bot_trumpf"
	RpcBotCard    = "jass_bot_card"
	RpcBotRelease = "jass_bot_release"

	// RpcBotTable creates a match where four bots play while clients watch.
	RpcBotTable = "jass_bot_table"

	// MatchNameBotTable is the authoritative match handler name registered with Nakama.
	MatchNameBotTable = "jass_bot_table"

	// EnvConfigPath is the runtime env key holding the bot config file path.
	EnvConfigPath = "jassbot_config"
)

// Op codes for server events broadcast to spectators of a bot table.
const (
	OpGameStarted  int64 = 101
	OpTrumpfChosen int64 = 102
	OpCardPlayed   int64 = 103
	OpTrickWon     int64 = 104
	OpGameEnded    int64 = 105
	OpTableClosed  int64 = 106
)

// gRPC status codes used with runtime.NewError.
const (
	codeInvalidArgument    = 3
	codeNotFound           = 5
	codeFailedPrecondition = 9
	codeInternal           = 13
)
