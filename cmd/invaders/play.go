package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var (
	flagDebug bool
	flagMute  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Space Invaders",
	Long: `Start the game on the welcome screen.

Controls:
  Left/A, Right/D   - Move the ship
  Space             - Start / fire / play again
  Mouse             - Click to fire, drag to steer
  P/Esc             - Pause and resume
  M                 - Mute
  Ctrl+D            - Toggle play area outlines
  ?                 - Show all keys
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - More lives, slower level scaling, fewer bombs
  normal - Default settings
  hard   - Fewer lives, faster scaling, more bombs
  fixed  - Every level plays like level 1

Examples:
  invaders play
  invaders play --difficulty easy
  invaders play --seed 7 --mute
  invaders play --log-file invaders.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// The root command plays too, so it takes the same flags
	for _, c := range []*cobra.Command{rootCmd, playCmd} {
		c.Flags().BoolVar(&flagDebug, "debug", false, "Draw play area outlines")
		c.Flags().BoolVar(&flagMute, "mute", false, "Start with sound muted")
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(flagConfig, flagDifficulty, flagFPS)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the game, so logs are dropped unless a file is given
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Arena.TickRate,
		Seed:     flagSeed,
		Debug:    flagDebug,
	}

	player := audio.NewPlayer(cfg.Audio, logger)
	sched := tui.NewTeaScheduler()
	game, err := invaders.New(cfg,
		invaders.WithLogger(logger),
		invaders.WithAudio(player),
		invaders.WithScheduler(sched),
		invaders.WithSeed(rc.Seed),
		invaders.WithDebug(rc.Debug),
	)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagMute {
		game.Mute(invaders.MuteOn)
	}

	holdWindow := time.Duration(cfg.Input.ReleaseAfterMs) * time.Millisecond
	runErr := tui.Run(game, sched, rc, holdWindow)

	logger.Info("session ended", "score", game.Score(), "level", game.Level(), "ticks", game.Ticks())
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
