package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

var flagMaxLevel int

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Print the per-level difficulty table",
	Long: `Print the invader speed, bomb settings, rocket fire rate and grid size
for each level under the current config and difficulty preset.

Examples:
  invaders levels
  invaders levels --difficulty hard --max 40`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func init() {
	levelsCmd.Flags().IntVar(&flagMaxLevel, "max", 10, "Last level to print")
}

func runLevels(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(flagConfig, flagDifficulty, flagFPS)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagMaxLevel < 1 {
		fmt.Fprintln(os.Stderr, "Error: --max must be at least 1")
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	logger.Debug("printing levels", "max", flagMaxLevel, "difficulty", flagDifficulty)

	writeLevels(cmd.OutOrStdout(), cfg, flagMaxLevel)
}

// writeLevels prints one row of level parameters per level.
func writeLevels(w io.Writer, cfg config.Config, maxLevel int) {
	fmt.Fprintf(w, "%5s  %8s  %9s  %14s  %9s  %5s  %5s\n",
		"Level", "Invader", "BombRate", "BombVelocity", "FireRate", "Ranks", "Files")
	fmt.Fprintf(w, "%5s  %8s  %9s  %14s  %9s  %5s  %5s\n",
		"-----", "-------", "--------", "------------", "--------", "-----", "-----")

	for level := 1; level <= maxLevel; level++ {
		p := cfg.ForLevel(level)
		fmt.Fprintf(w, "%5d  %8.1f  %9.3f  %6.1f-%-7.1f  %9.2f  %5d  %5d\n",
			p.Level, p.InvaderVelocity, p.BombRate,
			p.BombMinVelocity, p.BombMaxVelocity,
			p.RocketMaxFireRate, p.Ranks, p.Files)
	}
}
