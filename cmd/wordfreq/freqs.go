package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/example/go-wordfreq-builder/internal/config"
	"github.com/example/go-wordfreq-builder/internal/wordfreq"
	"github.com/spf13/cobra"
)

func readOptions(cfg config.Config) wordfreq.ReadOptions {
	return wordfreq.ReadOptions{
		Cutoff: cfg.Read.Cutoff,
		Lang:   cfg.Read.Lang,
	}
}

func newFreqsCmd() *cobra.Command {
	var inPath string
	var outPath string

	cmd := &cobra.Command{
		Use:   "freqs",
		Short: "Normalize a CSV word list into frequencies",
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

			freqs, err := wordfreq.ReadFreqs(inPath, readOptions(cfg))
			if err != nil {
				return err
			}

			if err := wordfreq.WriteWordlist(freqs, outPath, cfg.Wordlist.Cutoff); err != nil {
				return err
			}

			slog.Info("freqs completed", "in", inPath, "out", outPath, "tokens", len(freqs))
			_, _ = fmt.Fprintln(os.Stdout, "freqs completed")

			return nil
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "", "Input CSV word list")
	cmd.Flags().StringVar(&outPath, "out", "", "Output CSV frequency list")

	return cmd
}
