package main

import (
	"fmt"

	"github.com/example/go-wordfreq-builder/internal/cbpack"
	"github.com/spf13/cobra"
)

var version = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the tool version and cBpack format version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "wordfreq %s (cBpack format %s v%d)\n", version, cbpack.Format, cbpack.Version)
			return err
		},
	}
}
