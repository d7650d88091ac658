package cli

import (
	"context"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/tomblancdev/ruddr-go"
)

// summaryConcurrency caps parallel list calls to stay clear of rate limits.
const summaryConcurrency = 4

// pageSummary is the size of the first page of one resource.
type pageSummary struct {
	Resource string `json:"resource"`
	Count    int    `json:"count"`
	HasMore  bool   `json:"hasMore"`
}

func newSummaryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Count the first page of every resource",
		Long: `Fetch the first page of every list endpoint in parallel and print how
many records each returned and whether more pages exist.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.newClient(cmd)
			if err != nil {
				return err
			}

			summaries, err := summarize(cmd.Context(), client)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), summaries)
		},
	}
}

// summarize lists the first page of each resource. Results keep the
// resource order; the first failure cancels the rest.
func summarize(ctx context.Context, client *ruddr.Client) ([]pageSummary, error) {
	out := make([]pageSummary, len(summaryCounters))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(summaryConcurrency)

	for i, sc := range summaryCounters {
		g.Go(func() error {
			count, more, err := sc.count(ctx, client)
			if err != nil {
				return err
			}
			out[i] = pageSummary{Resource: sc.name, Count: count, HasMore: more}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

type summaryCounter struct {
	name  string
	count func(ctx context.Context, c *ruddr.Client) (int, bool, error)
}

func counter[T any](name string, list func(ctx context.Context, c *ruddr.Client) (*ruddr.List[T], error)) summaryCounter {
	return summaryCounter{
		name: name,
		count: func(ctx context.Context, c *ruddr.Client) (int, bool, error) {
			page, err := list(ctx, c)
			if err != nil {
				return 0, false, err
			}
			return len(page.Results), page.HasMore, nil
		},
	}
}

var summaryCounters = []summaryCounter{
	counter("members", func(ctx context.Context, c *ruddr.Client) (*ruddr.List[ruddr.Member], error) {
		return c.Members(ctx, ruddr.ListOptions{})
	}),
	counter("projects", func(ctx context.Context, c *ruddr.Client) (*ruddr.List[ruddr.Project], error) {
		return c.Projects(ctx, ruddr.ProjectFilter{})
	}),
	counter("clients", func(ctx context.Context, c *ruddr.Client) (*ruddr.List[ruddr.Customer], error) {
		return c.Customers(ctx, ruddr.CustomerFilter{})
	}),
	counter("time-entries", func(ctx context.Context, c *ruddr.Client) (*ruddr.List[ruddr.TimeEntry], error) {
		return c.TimeEntries(ctx, ruddr.TimeEntryFilter{})
	}),
	counter("allocations", func(ctx context.Context, c *ruddr.Client) (*ruddr.List[ruddr.Allocation], error) {
		return c.Allocations(ctx, ruddr.AllocationFilter{})
	}),
	counter("project-roles", func(ctx context.Context, c *ruddr.Client) (*ruddr.List[ruddr.Role], error) {
		return c.Roles(ctx, ruddr.RoleFilter{})
	}),
	counter("cost-periods", func(ctx context.Context, c *ruddr.Client) (*ruddr.List[ruddr.Cost], error) {
		return c.Costs(ctx, ruddr.CostFilter{})
	}),
	counter("utilization-target-periods", func(ctx context.Context, c *ruddr.Client) (*ruddr.List[ruddr.Utilization], error) {
		return c.Utilizations(ctx, ruddr.UtilizationFilter{})
	}),
	counter("expense-reports", func(ctx context.Context, c *ruddr.Client) (*ruddr.List[ruddr.ExpenseReport], error) {
		return c.ExpenseReports(ctx, ruddr.ListOptions{})
	}),
	counter("expense-items", func(ctx context.Context, c *ruddr.Client) (*ruddr.List[ruddr.ExpenseItem], error) {
		return c.ExpenseItems(ctx, ruddr.ExpenseItemFilter{})
	}),
}
