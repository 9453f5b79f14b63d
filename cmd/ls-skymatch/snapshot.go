package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/litescript/ls-skymatch/internal/astro"
	"github.com/litescript/ls-skymatch/internal/catalog"
	"github.com/litescript/ls-skymatch/internal/game"
	"github.com/litescript/ls-skymatch/internal/logging"
	"github.com/litescript/ls-skymatch/internal/sky"
)

var (
	snapWidth    int
	snapHeight   int
	snapAttitude string
	snapNames    bool
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Render one sky view to stdout and exit",
	Long: `Renders the configured sky under a fixed attitude as plain text. Useful
for checking a converted catalog or piping a view somewhere.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Init(cfg.Logging.Level, ""); err != nil {
			return err
		}

		roll, pitch, yaw, err := parseAttitude(snapAttitude)
		if err != nil {
			return err
		}

		field, err := buildSnapshotSky()
		if err != nil {
			return err
		}

		width, height := snapWidth, snapHeight
		if width == 0 || height == 0 {
			tw, th, err := term.GetSize(int(os.Stdout.Fd()))
			if err != nil {
				tw, th = 80, 24
			}
			if width == 0 {
				width = tw
			}
			if height == 0 {
				height = th - 1
			}
		}

		fov := sky.NewFoV(cfg.FovX, cfg.FovY)
		q := astro.EulerAttitude(roll, pitch, yaw)
		return game.WriteSkyText(os.Stdout, field, fov, q, width, height, snapNames)
	},
}

func buildSnapshotSky() (sky.Sky, error) {
	opts := game.Options{CatalogSource: cfg.Catalog, StarCount: cfg.Stars}
	n := opts.DefaultStarCount()

	switch cfg.Catalog {
	case "":
		return sky.Random(n), nil
	case game.SourceBuiltin:
		return sky.FromEntries(catalog.Builtin(n)), nil
	default:
		return sky.FromCatalog(catalog.FormatConverted, cfg.Catalog, n)
	}
}

// parseAttitude reads "roll,pitch,yaw" in radians.
func parseAttitude(s string) (roll, pitch, yaw float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("attitude %q: want roll,pitch,yaw", s)
	}
	vals := make([]float64, 3)
	for i, p := range parts {
		vals[i], err = strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("attitude %q: %w", s, err)
		}
	}
	return vals[0], vals[1], vals[2], nil
}

func init() {
	snapshotCmd.Flags().IntVar(&snapWidth, "width", 0, "columns (0: terminal width)")
	snapshotCmd.Flags().IntVar(&snapHeight, "height", 0, "rows (0: terminal height)")
	snapshotCmd.Flags().StringVar(&snapAttitude, "attitude", "0,0,0", "view attitude as roll,pitch,yaw radians")
	snapshotCmd.Flags().BoolVar(&snapNames, "names", false, "label stars with their names")
}
