package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/example/go-wordfreq-builder/internal/cbpack"
	"github.com/example/go-wordfreq-builder/internal/wordfreq"
	"github.com/spf13/cobra"
)

func newMergeCmd() *cobra.Command {
	var inPaths []string
	var outPath string
	var packPath string

	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Average several CSV word lists into one",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			if len(inPaths) == 0 {
				return errors.New("at least one --in is required")
			}

			if strings.TrimSpace(outPath) == "" && strings.TrimSpace(packPath) == "" {
				return errors.New("--out or --pack is required")
			}

			if packPath != "" && cfg.Read.Cutoff != 0 {
				return errors.New("--pack cannot be combined with a nonzero read cutoff")
			}

			for _, p := range inPaths {
				slog.Debug("reading source", "path", p)
			}

			merged, err := wordfreq.ReadAndMerge(inPaths, readOptions(cfg))
			if err != nil {
				return err
			}

			if outPath != "" {
				if err := wordfreq.WriteWordlist(merged, outPath, cfg.Wordlist.Cutoff); err != nil {
					return err
				}
			}

			if packPath != "" {
				p, err := cbpack.Build(merged, cfg.Pack.Cutoff)
				if err != nil {
					return err
				}

				if err := cbpack.WriteFile(packPath, p); err != nil {
					return err
				}

				stats := p.Stats()
				slog.Info("merged pack written", "out", packPath, "buckets", stats.Buckets, "tokens", stats.Tokens)
			}

			slog.Info("merge completed", "sources", len(inPaths), "tokens", len(merged))
			_, _ = fmt.Fprintln(os.Stdout, "merge completed")

			return nil
		},
	}

	cmd.Flags().StringArrayVar(&inPaths, "in", nil, "Input CSV word list (repeatable)")
	cmd.Flags().StringVar(&outPath, "out", "", "Output CSV word list")
	cmd.Flags().StringVar(&packPath, "pack", "", "Also write the merged frequencies as a cBpack")

	return cmd
}
