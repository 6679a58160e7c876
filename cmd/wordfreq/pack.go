package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/example/go-wordfreq-builder/internal/cbpack"
	"github.com/spf13/cobra"
)

func newPackCmd() *cobra.Command {
	var inPath string
	var outPath string

	cmd := &cobra.Command{
		Use:   "pack",
		Short: "Encode a CSV word list as a cBpack",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			if strings.TrimSpace(inPath) == "" {
				return errors.New("--in is required")
			}

			if strings.TrimSpace(outPath) == "" {
				return errors.New("--out is required")
			}

			// The pack cutoff is the only one applied; a read cutoff would
			// shrink the normalization total.
			if cfg.Read.Cutoff != 0 {
				return errors.New("pack reads the full word list; unset --read-cutoff and use --pack-cutoff")
			}

			stats, err := cbpack.FreqsToCBPack(inPath, outPath, cbpack.Options{
				Cutoff: cfg.Pack.Cutoff,
				Lang:   cfg.Read.Lang,
			})
			if err != nil {
				return err
			}

			slog.Info("pack completed",
				"in", inPath,
				"out", outPath,
				"cutoff_cb", cfg.Pack.Cutoff,
				"buckets", stats.Buckets,
				"tokens", stats.Tokens,
			)
			_, _ = fmt.Fprintln(os.Stdout, "pack completed")

			return nil
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "", "Input CSV word list")
	cmd.Flags().StringVar(&outPath, "out", "", "Output cBpack file (gzip)")

	return cmd
}
