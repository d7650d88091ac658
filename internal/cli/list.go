package cli

import (
	"fmt"
	"strings"

	"github.com/go-openapi/swag/stringutils"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	var f listFlags

	cmd := &cobra.Command{
		Use:   "list <resource>",
		Short: "List one page of records",
		Long:  "List one page of records. Filters by resource:\n\n" + filterHelp(),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := lookupResource(args[0])
			if err != nil {
				return err
			}
			if err := checkFilters(cmd, r); err != nil {
				return err
			}

			client, err := a.newClient(cmd)
			if err != nil {
				return err
			}

			a.logger.Debug().Str("resource", r.name).Msg("Listing records")
			page, err := r.list(cmd.Context(), client, &f)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), page)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&f.limit, "limit", 0, "page size, 1 to 100 (default 100)")
	flags.StringVar(&f.startingAfter, "starting-after", "", "id of the last record of the previous page")
	flags.StringVar(&f.member, "member", "", "member id")
	flags.StringVar(&f.project, "project", "", "project id")
	flags.StringVar(&f.client, "client", "", "client id")
	flags.StringVar(&f.projectType, "project-type", "", "project type id")
	flags.StringVar(&f.expenseReport, "expense-report", "", "expense report id")
	flags.StringVar(&f.status, "status", "", "project status, e.g. in_progress")
	flags.StringVar(&f.assignmentType, "assignment-type", "", "allocation assignment type: project or time_off")
	flags.StringVar(&f.nameContains, "name-contains", "", "project name substring")
	flags.StringVar(&f.code, "code", "", "client code")
	flags.StringVar(&f.date, "date", "", "exact date, YYYY-MM-DD")
	flags.StringVar(&f.dateOnAfter, "date-on-after", "", "earliest date, YYYY-MM-DD")
	flags.StringVar(&f.dateOnBefore, "date-on-before", "", "latest date, YYYY-MM-DD")
	flags.StringVar(&f.startOnBefore, "start-on-before", "", "allocations starting on or before, YYYY-MM-DD")
	flags.StringVar(&f.endOnAfter, "end-on-after", "", "allocations ending on or after, YYYY-MM-DD")

	return cmd
}

// filterFlags are the list flags that only some resources accept.
var filterFlags = []string{
	"member", "project", "client", "project-type", "expense-report",
	"status", "assignment-type", "name-contains", "code",
	"date", "date-on-after", "date-on-before", "start-on-before", "end-on-after",
}

// checkFilters rejects filter flags the resource's endpoint does not take.
func checkFilters(cmd *cobra.Command, r resource) error {
	for _, name := range filterFlags {
		if cmd.Flags().Changed(name) && !stringutils.ContainsStrings(r.filters, name) {
			return fmt.Errorf("--%s does not apply to %s", name, r.name)
		}
	}
	return nil
}

func filterHelp() string {
	var b strings.Builder
	for _, r := range resources {
		filters := "none"
		if len(r.filters) > 0 {
			filters = "--" + strings.Join(r.filters, ", --")
		}
		fmt.Fprintf(&b, "  %-28s %s\n", r.name, filters)
	}
	return b.String()
}

func joinNames() string {
	return strings.Join(resourceNames(), ", ")
}
