package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/stencil/display"
	"github.com/teranos/stencil/version"
)

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show stencil version information",
		Long:  `Display version, build time, commit hash, and platform information for the stencil binary.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			out := cmd.OutOrStdout()

			if display.ShouldOutputJSON(cmd) {
				return display.WriteJSON(out, info)
			}

			fmt.Fprintln(out, info.String())
			fmt.Fprintf(out, "Platform: %s\n", info.Platform)
			fmt.Fprintf(out, "Go: %s\n", info.GoVersion)
			return nil
		},
	}

	cmd.Flags().BoolP("json", "j", false, "Output version info as JSON")
	return cmd
}
