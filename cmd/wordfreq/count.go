package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/example/go-wordfreq-builder/internal/wordfreq"
	"github.com/spf13/cobra"
)

func newCountCmd() *cobra.Command {
	var inPath string
	var outPath string

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count tokens in a text file and write them as a word list",
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

			counts, err := wordfreq.CountTokens(inPath, nil)
			if err != nil {
				return err
			}

			if err := wordfreq.WriteWordlist(counts, outPath, cfg.Wordlist.Cutoff); err != nil {
				return err
			}

			slog.Info("count completed", "in", inPath, "out", outPath, "tokens", len(counts))
			_, _ = fmt.Fprintln(os.Stdout, "count completed")

			return nil
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "", "Input text file")
	cmd.Flags().StringVar(&outPath, "out", "", "Output CSV word list")

	return cmd
}
