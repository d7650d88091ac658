package cli

import (
	"github.com/spf13/cobra"

	"github.com/tomblancdev/ruddr-go"
)

func newRawCmd(a *app) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "raw <endpoint>",
		Short: "GET any endpoint and print the decoded body",
		Long: `GET any workspace endpoint, for example "members" or "projects/<id>",
and print the decoded body. --query is passed through as is.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.newClient(cmd)
			if err != nil {
				return err
			}

			body, err := ruddr.Read[any](cmd.Context(), client, args[0], query)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), body)
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "query string, e.g. limit=10&memberId=<id>")
	return cmd
}
