// Command ls-skymatch is a star-matching game: rotate a simulated sky
// until it lines up with a hidden target attitude.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/litescript/ls-skymatch/internal/config"
	"github.com/litescript/ls-skymatch/internal/game"
	"github.com/litescript/ls-skymatch/internal/logging"
	"github.com/litescript/ls-skymatch/internal/sky"
	"github.com/litescript/ls-skymatch/internal/ui"
	"github.com/litescript/ls-skymatch/internal/version"
)

// Global flags. Per-run flags layer on top of the config file.
var (
	configPath string
	logLevel   string

	catalogFlag string
	starsFlag   int
	fovXFlag    float64
	fovYFlag    float64

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:           "ls-skymatch",
	Short:         "Guess your attitude from the stars",
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `ls-skymatch shows two star fields: yours and a target. Pitch, yaw and
roll your view until they match, bank the round with space, and chase a
low score. Skies come from a random generator, an embedded bright-star
table, or a converted Yale Bright Star Catalog file.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("catalog") {
			cfg.Catalog = catalogFlag
		}
		if cmd.Flags().Changed("stars") {
			cfg.Stars = starsFlag
		}
		if cmd.Flags().Changed("fov-x") {
			cfg.FovX = fovXFlag
		}
		if cmd.Flags().Changed("fov-y") {
			cfg.FovY = fovYFlag
		}
		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay()
	},
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the game (the default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay()
	},
}

func runPlay() error {
	logFile := cfg.Logging.File
	if logFile == "" {
		logFile = config.DefaultLogPath()
	}
	if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	if err := logging.Init(cfg.Logging.Level, logFile); err != nil {
		return err
	}

	session, err := newSession()
	if err != nil {
		// The session fell back to a random sky; tell the player and
		// keep going.
		fmt.Fprintf(os.Stderr, "catalog unavailable, using a random sky: %v\n", err)
	}

	logging.L().Infow("starting game",
		"catalog", cfg.Catalog, "stars", session.Options().StarCount)

	p := tea.NewProgram(ui.New(session), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	snap := session.Snapshot()
	fmt.Printf("Final score: %.6f over %d games (%d moves)\n",
		snap.Score, snap.Games, snap.Moves)
	return nil
}

func newSession() (*game.Session, error) {
	opts := game.Options{
		CatalogSource: cfg.Catalog,
		StarCount:     cfg.Stars,
		ShowDistance:  cfg.ShowDistance,
		ShowStarNames: cfg.ShowStarNames,
		SinglePane:    cfg.SinglePane,
	}
	return game.NewSession(opts, sky.NewFoV(cfg.FovX, cfg.FovY))
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&catalogFlag, "catalog", "", `sky source: "builtin", a converted catalog file, or empty for random`)
	rootCmd.PersistentFlags().IntVar(&starsFlag, "stars", 0, "number of stars (0: source default)")
	rootCmd.PersistentFlags().Float64Var(&fovXFlag, "fov-x", 2.0, "horizontal half-FoV factor")
	rootCmd.PersistentFlags().Float64Var(&fovYFlag, "fov-y", 1.0, "vertical half-FoV factor")

	rootCmd.AddCommand(playCmd, convertCmd, snapshotCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
