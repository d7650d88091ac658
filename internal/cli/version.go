package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomblancdev/ruddr-go"
)

func newVersionCmd(a *app) *cobra.Command {
	var check string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if check != "" {
				if !ruddr.IsCompatible(check) {
					return fmt.Errorf("ruddr-go %s does not satisfy %q", ruddr.Version, check)
				}
				a.logger.Debug().Str("constraint", check).Msg("SDK version compatible")
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "ruddr %s (built %s)\n", a.build.Version, a.build.BuildTime)
			fmt.Fprintf(w, "ruddr-go %s\n", ruddr.Version)
			return nil
		},
	}

	cmd.Flags().StringVar(&check, "check", "", "fail unless the SDK version satisfies this semver constraint")
	return cmd
}
