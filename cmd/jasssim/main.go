// Command jasssim plays Jass sessions between bots outside Nakama and
// explains single trumpf decisions.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"jassbot/internal/app"
	"jassbot/internal/bot"
	"jassbot/internal/config"
	"jassbot/internal/domain"
	"jassbot/internal/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	logLevel   string
	strategy   string
	games      int
	seed       int64
}

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "jasssim",
		Short:        "Play Jass sessions between bots",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return runSession(cfg)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", os.Getenv("JASS_CONFIG"), "bot config file (.json, .yaml)")
	flags.StringVar(&opts.logLevel, "log-level", os.Getenv("JASS_LOG_LEVEL"), "debug, info, warn or error")
	root.Flags().StringVar(&opts.strategy, "strategy", "", "strategy for every seat (baseline, heuristic)")
	root.Flags().IntVar(&opts.games, "games", 0, "number of games to play")
	root.Flags().Int64Var(&opts.seed, "seed", 0, "shuffle seed, 0 for time-seeded")

	root.AddCommand(newTrumpfCmd(opts))
	return root
}

func newTrumpfCmd(opts *options) *cobra.Command {
	var shifted bool
	var strategy string
	cmd := &cobra.Command{
		Use:   "trumpf CARD...",
		Short: "Show the mode a strategy declares for a hand, e.g. trumpf clubs-jack clubs-nine",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hand := make([]domain.Card, 0, len(args))
			for _, a := range args {
				c, err := domain.ParseCard(a)
				if err != nil {
					return err
				}
				hand = append(hand, c)
			}
			if !domain.UniqueCards(hand) {
				return fmt.Errorf("hand contains duplicate cards")
			}

			level, err := bot.ParseLevel(strategy)
			if err != nil {
				return err
			}
			s, err := bot.NewStrategy(level, domain.StandardRules{})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s.ChooseTrumpf(hand, shifted))
			return nil
		},
	}
	cmd.Flags().BoolVar(&shifted, "shifted", false, "the partner shifted to us")
	cmd.Flags().StringVar(&strategy, "strategy", bot.LevelHeuristic.String(), "strategy to ask")
	return cmd
}

// loadConfig reads the config file when given and applies flag overrides.
func loadConfig(cmd *cobra.Command, opts *options) (*config.BotConfig, error) {
	if opts.configPath != "" {
		if err := config.LoadBotConfig(opts.configPath); err != nil {
			return nil, err
		}
	}
	cfg := *config.GetBotConfig()

	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if cmd.Flags().Changed("strategy") {
		cfg.Strategy = opts.strategy
		cfg.Seats = nil
	}
	if opts.games > 0 {
		cfg.Games = opts.games
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = opts.seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func runSession(cfg *config.BotConfig) error {
	log := logger.New(cfg.LogLevel)

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}
	rules := domain.StandardRules{}

	agents, err := config.NewAgents(cfg.Table(), rules, log)
	if err != nil {
		return err
	}
	players := make([]app.Player, len(agents))
	for i, a := range agents {
		players[i] = a
	}

	svc := app.NewService(rng, rules, log)
	result, err := svc.PlaySession(players, cfg.Games)
	if err != nil {
		log.Error("jasssim: %v", err)
		return err
	}

	for i, g := range result.Games {
		log.WithFields(map[string]interface{}{
			"game":     i + 1,
			"mode":     g.Mode.String(),
			"declarer": g.Declarer,
			"shifted":  g.Shifted,
		}).Info("team 0: %d, team 1: %d", g.Points[0], g.Points[1])
	}
	log.Info("jasssim: final score %d : %d after %d games", result.Points[0], result.Points[1], len(result.Games))
	return nil
}
