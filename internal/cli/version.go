package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pixel2html/p2h/pkg/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "p2h %s\n", version.GetFullVersion())
			return err
		},
	}
}
