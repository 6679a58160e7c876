package main

import (
	"errors"
	"fmt"

	"github.com/example/go-wordfreq-builder/internal/doctor"
	"github.com/spf13/cobra"
)

func newDoctorCmd() *cobra.Command {
	var inPaths []string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check word lists and settings before a build",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "read cutoff: %g, lang: %q\n", cfg.Read.Cutoff, cfg.Read.Lang)

			result := doctor.Run(doctor.Config{
				Wordlists:     inPaths,
				RequireSorted: cfg.Read.Cutoff > 0,
				PackCutoff:    cfg.Pack.Cutoff,
			}, out)

			if len(inPaths) == 0 {
				result.AddFailure("no word lists given")
				_, _ = fmt.Fprintf(out, "%s word lists: none given (use --in)\n", doctor.FailMark)
			}

			if result.Failed() {
				return errors.New("doctor checks failed")
			}

			_, _ = fmt.Fprintln(out, "doctor checks passed")

			return nil
		},
	}

	cmd.Flags().StringArrayVar(&inPaths, "in", nil, "CSV word list to check (repeatable)")

	return cmd
}
