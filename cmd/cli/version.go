package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pibuilder/pibuilder/internal/version"
)

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("pibuilder %s (commit %s, built %s)\n", version.Version, version.Commit, version.BuildDate)
		},
	}
}
