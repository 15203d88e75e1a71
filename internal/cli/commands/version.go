package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version, buildDate, gitCommit string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "datagaze v%s\n", version)
			_, _ = fmt.Fprintf(w, "Build date: %s\n", buildDate)
			_, _ = fmt.Fprintf(w, "Git commit: %s\n", gitCommit)
		},
	}
}
