package cli

import (
	"github.com/spf13/cobra"

	"github.com/tomblancdev/ruddr-go"
)

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <resource> <id>",
		Short: "Fetch a single record by id",
		Long:  "Fetch a single record by id. Resources: " + joinNames() + ".",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := lookupResource(args[0])
			if err != nil {
				return err
			}
			id, err := ruddr.ParseIdentifier(args[1])
			if err != nil {
				return err
			}

			client, err := a.newClient(cmd)
			if err != nil {
				return err
			}

			a.logger.Debug().Str("resource", r.name).Str("id", id.String()).Msg("Fetching record")
			record, err := r.get(cmd.Context(), client, id)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), record)
		},
	}
}
