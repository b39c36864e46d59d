package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/banana-grove/internal/config"
	"github.com/vovakirdan/banana-grove/internal/core"
	"github.com/vovakirdan/banana-grove/internal/games/banana"
	"github.com/vovakirdan/banana-grove/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
	flagFairServer string
	flagFairClient string
	flagFairNonce  uint64
	flagStrict     bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play without the main menu",
	Long: `Start a round straight away.

Controls:
  Arrows/hjkl  - Move the selection between trees
  Enter/Space  - Send the monkey to the selected tree
  Mouse click  - Send the monkey to the clicked tree
  P            - Pause
  R            - Restart from level 1
  M/Esc        - Main menu
  Ctrl+S       - Save a screenshot to ~/.grove/screenshots
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Fewer snakes, smaller groves
  normal - The default balance
  hard   - More snakes, bigger groves
  fixed  - Use the config file values unchanged

Fair boards:
  With --fair-server-seed the boards are drawn from HMAC-SHA256 of the
  server seed over "client:nonce:round", so anyone holding the seeds can
  regenerate them. --seed is ignored in that mode.

Examples:
  grove play
  grove play --difficulty easy
  grove play --config ./my-grove.yaml
  grove play --fair-server-seed s3cret --fair-client-seed me --fair-nonce 7`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagFairServer, "fair-server-seed", "", "Server seed for HMAC-generated boards")
	rootCmd.PersistentFlags().StringVar(&flagFairClient, "fair-client-seed", "", "Client seed for HMAC-generated boards")
	rootCmd.PersistentFlags().Uint64Var(&flagFairNonce, "fair-nonce", 0, "Nonce for HMAC-generated boards")
	playCmd.Flags().BoolVar(&flagStrict, "strict", false, "Panic on session contract violations")
}

func runPlay(cmd *cobra.Command, args []string) {
	runSession(tui.WithoutMenu())
}

func runMenu(cmd *cobra.Command, args []string) {
	runSession()
}

// runSession loads the configuration, builds the game and hands it to the
// terminal host.
func runSession(opts ...tui.SessionOption) {
	logger, closer, err := newLogger()
	if err != nil {
		fail("%v", err)
	}
	defer closer.Close()

	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	rc := core.DefaultConfig()
	rc.TickRate = flagFPS
	rc.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	game := banana.New(cfg, gameOptions(logger)...)

	logger.Info("starting", "difficulty", cfg.Difficulty, "nodes", cfg.Board.BaseNodeCount,
		"reward_probability", cfg.Board.RewardProbability, "seed", rc.Seed, "fair", flagFairServer != "")

	opts = append(opts, tui.WithSessionLogger(logger))
	runErr := tui.Run(game, rc, opts...)
	if gameErr := game.Err(); gameErr != nil {
		logger.Error("session setup failed", "err", gameErr)
	}
	if runErr != nil {
		closer.Close()
		fail("running game: %v", runErr)
	}
}

// loadConfig resolves the configuration file and applies the difficulty
// preset. An empty --difficulty keeps the preset named in the file.
func loadConfig() (config.GroveConfig, error) {
	cfg, err := config.LoadGrove(flagConfig)
	if err != nil {
		return cfg, err
	}

	name := flagDifficulty
	if name == "" {
		name = string(cfg.Difficulty)
	}
	preset, err := config.ParseDifficulty(name)
	if err != nil {
		return cfg, err
	}
	config.ApplyGrovePreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// gameOptions turns command line flags into game options.
func gameOptions(logger *log.Logger) []banana.Option {
	opts := []banana.Option{banana.WithLogger(logger)}
	if flagFairServer != "" {
		opts = append(opts, banana.WithFairSeeds(banana.FairSeeds{
			Server: flagFairServer,
			Client: flagFairClient,
			Nonce:  flagFairNonce,
		}))
	}
	if flagStrict {
		opts = append(opts, banana.WithStrictContracts())
	}
	return opts
}
