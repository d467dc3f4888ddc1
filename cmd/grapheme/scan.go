package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"grapheme/internal/assets"
)

func newScanCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Report how many sounds each letter has",
		Long:  `Scan the sounds directory the way the game does at startup and print the clip count per letter. Exits non-zero if any letter has no sounds.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}

			dir := cfg.SoundsDir()
			paths, err := assets.Scan(dir)
			if err != nil {
				return err
			}

			report := assets.Summarize(paths)
			fmt.Fprintf(cmd.OutOrStdout(), "Sounds: %s\n\n", dir)
			if err := report.Print(cmd.OutOrStdout()); err != nil {
				return err
			}
			if !report.Complete() {
				return fmt.Errorf("%d letters have no sounds", len(report.Missing))
			}
			return nil
		},
	}
}
