package cmd

import (
	"fmt"

	"github.com/fintrack-app/backend/internal/controllers/version"
	"github.com/spf13/cobra"
)

// This is set at build time with -ldflags "-X github.com/fintrack-app/backend/cmd.release=1.2.3"
var release = "0.0.0"

func newVersionCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.Of(release)
			if !verbose {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), info.Version)
				return err
			}

			revision := info.Revision
			if revision == "" {
				revision = "unknown"
			} else if info.Modified {
				revision += " (modified)"
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "version:  %s\ngo:       %s\nrevision: %s\n", info.Version, info.GoVersion, revision)
			return err
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Also print the Go version and the VCS revision")
	return cmd
}
