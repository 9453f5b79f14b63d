package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/litescript/ls-skymatch/internal/catalog"
	"github.com/litescript/ls-skymatch/internal/logging"
)

var (
	convertOut    string
	convertMaxMag float64
)

var convertCmd = &cobra.Command{
	Use:   "convert <bsc-file>",
	Short: "Convert a Yale Bright Star Catalog file to the compact CSV format",
	Long: `Reads a raw Bright Star Catalog file (the fixed-width bsc5 format),
drops stars fainter than the magnitude cutoff, and writes the compact
CSV layout the game loads. Greek Bayer abbreviations in star names are
replaced with their glyphs.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Init(cfg.Logging.Level, ""); err != nil {
			return err
		}
		n, err := catalog.Convert(args[0], convertOut, convertMaxMag)
		if err != nil {
			return fmt.Errorf("convert catalog: %w", err)
		}
		fmt.Printf("Wrote %d stars to %s (magnitude <= %.2f)\n", n, convertOut, convertMaxMag)
		return nil
	},
}

func init() {
	convertCmd.Flags().StringVarP(&convertOut, "out", "o", "catalog.csv", "output file")
	convertCmd.Flags().Float64Var(&convertMaxMag, "max-mag", 6.0, "keep stars at or brighter than this magnitude")
}
