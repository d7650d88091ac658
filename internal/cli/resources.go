package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/go-openapi/swag/stringutils"

	"github.com/tomblancdev/ruddr-go"
)

// listFlags holds every list filter flag. Each resource reads the subset
// its endpoint accepts.
type listFlags struct {
	limit         int
	startingAfter string

	member        string
	project       string
	client        string
	projectType   string
	expenseReport string

	status         string
	assignmentType string
	nameContains   string
	code           string

	date          string
	dateOnAfter   string
	dateOnBefore  string
	startOnBefore string
	endOnAfter    string
}

// resource binds a CLI resource name to its get and list calls.
type resource struct {
	name    string
	aliases []string
	filters []string
	get     func(ctx context.Context, c *ruddr.Client, id ruddr.Identifier) (any, error)
	list    func(ctx context.Context, c *ruddr.Client, f *listFlags) (any, error)
}

var resources = []resource{
	{
		name:    "members",
		aliases: []string{"member"},
		get: func(ctx context.Context, c *ruddr.Client, id ruddr.Identifier) (any, error) {
			return c.Member(ctx, id)
		},
		list: func(ctx context.Context, c *ruddr.Client, f *listFlags) (any, error) {
			page, err := f.page()
			if err != nil {
				return nil, err
			}
			return c.Members(ctx, page)
		},
	},
	{
		name:    "projects",
		aliases: []string{"project"},
		filters: []string{"client", "project-type", "status", "name-contains"},
		get: func(ctx context.Context, c *ruddr.Client, id ruddr.Identifier) (any, error) {
			return c.Project(ctx, id)
		},
		list: func(ctx context.Context, c *ruddr.Client, f *listFlags) (any, error) {
			var filter ruddr.ProjectFilter
			var err error
			if filter.ListOptions, err = f.page(); err != nil {
				return nil, err
			}
			if filter.ClientID, err = optionalID(f.client); err != nil {
				return nil, err
			}
			if filter.ProjectTypeID, err = optionalID(f.projectType); err != nil {
				return nil, err
			}
			filter.StatusID = ruddr.ProjectStatus(f.status)
			filter.NameContains = f.nameContains
			return c.Projects(ctx, filter)
		},
	},
	{
		name:    "clients",
		aliases: []string{"client", "customers", "customer"},
		filters: []string{"code"},
		get: func(ctx context.Context, c *ruddr.Client, id ruddr.Identifier) (any, error) {
			return c.Customer(ctx, id)
		},
		list: func(ctx context.Context, c *ruddr.Client, f *listFlags) (any, error) {
			page, err := f.page()
			if err != nil {
				return nil, err
			}
			return c.Customers(ctx, ruddr.CustomerFilter{ListOptions: page, Code: f.code})
		},
	},
	{
		name:    "time-entries",
		aliases: []string{"time-entry", "time"},
		filters: []string{"member", "project", "date", "date-on-after", "date-on-before"},
		get: func(ctx context.Context, c *ruddr.Client, id ruddr.Identifier) (any, error) {
			return c.TimeEntry(ctx, id)
		},
		list: func(ctx context.Context, c *ruddr.Client, f *listFlags) (any, error) {
			var filter ruddr.TimeEntryFilter
			var err error
			if filter.ListOptions, err = f.page(); err != nil {
				return nil, err
			}
			if filter.MemberID, err = optionalID(f.member); err != nil {
				return nil, err
			}
			if filter.ProjectID, err = optionalID(f.project); err != nil {
				return nil, err
			}
			if filter.Date, err = optionalDate(f.date); err != nil {
				return nil, err
			}
			if filter.DateOnAfter, err = optionalDate(f.dateOnAfter); err != nil {
				return nil, err
			}
			if filter.DateOnBefore, err = optionalDate(f.dateOnBefore); err != nil {
				return nil, err
			}
			return c.TimeEntries(ctx, filter)
		},
	},
	{
		name:    "allocations",
		aliases: []string{"allocation"},
		filters: []string{"assignment-type", "member", "start-on-before", "end-on-after"},
		get: func(ctx context.Context, c *ruddr.Client, id ruddr.Identifier) (any, error) {
			return c.Allocation(ctx, id)
		},
		list: func(ctx context.Context, c *ruddr.Client, f *listFlags) (any, error) {
			var filter ruddr.AllocationFilter
			var err error
			if filter.ListOptions, err = f.page(); err != nil {
				return nil, err
			}
			filter.AssignmentTypeID = ruddr.AssignmentType(f.assignmentType)
			if filter.MemberID, err = optionalID(f.member); err != nil {
				return nil, err
			}
			if filter.StartOnBefore, err = optionalDate(f.startOnBefore); err != nil {
				return nil, err
			}
			if filter.EndOnAfter, err = optionalDate(f.endOnAfter); err != nil {
				return nil, err
			}
			return c.Allocations(ctx, filter)
		},
	},
	{
		name:    "project-roles",
		aliases: []string{"roles", "role"},
		filters: []string{"project"},
		get: func(ctx context.Context, c *ruddr.Client, id ruddr.Identifier) (any, error) {
			return c.Role(ctx, id)
		},
		list: func(ctx context.Context, c *ruddr.Client, f *listFlags) (any, error) {
			var filter ruddr.RoleFilter
			var err error
			if filter.ListOptions, err = f.page(); err != nil {
				return nil, err
			}
			if filter.ProjectID, err = optionalID(f.project); err != nil {
				return nil, err
			}
			return c.Roles(ctx, filter)
		},
	},
	{
		name:    "cost-periods",
		aliases: []string{"costs", "cost"},
		filters: []string{"member"},
		get: func(ctx context.Context, c *ruddr.Client, id ruddr.Identifier) (any, error) {
			return c.Cost(ctx, id)
		},
		list: func(ctx context.Context, c *ruddr.Client, f *listFlags) (any, error) {
			var filter ruddr.CostFilter
			var err error
			if filter.ListOptions, err = f.page(); err != nil {
				return nil, err
			}
			if filter.MemberID, err = optionalID(f.member); err != nil {
				return nil, err
			}
			return c.Costs(ctx, filter)
		},
	},
	{
		name:    "utilization-target-periods",
		aliases: []string{"utilizations", "utilization"},
		filters: []string{"member"},
		get: func(ctx context.Context, c *ruddr.Client, id ruddr.Identifier) (any, error) {
			return c.Utilization(ctx, id)
		},
		list: func(ctx context.Context, c *ruddr.Client, f *listFlags) (any, error) {
			var filter ruddr.UtilizationFilter
			var err error
			if filter.ListOptions, err = f.page(); err != nil {
				return nil, err
			}
			if filter.MemberID, err = optionalID(f.member); err != nil {
				return nil, err
			}
			return c.Utilizations(ctx, filter)
		},
	},
	{
		name:    "expense-reports",
		aliases: []string{"expense-report"},
		get: func(ctx context.Context, c *ruddr.Client, id ruddr.Identifier) (any, error) {
			return c.ExpenseReport(ctx, id)
		},
		list: func(ctx context.Context, c *ruddr.Client, f *listFlags) (any, error) {
			page, err := f.page()
			if err != nil {
				return nil, err
			}
			return c.ExpenseReports(ctx, page)
		},
	},
	{
		name:    "expense-items",
		aliases: []string{"expense-item", "expenses"},
		filters: []string{"expense-report"},
		get: func(ctx context.Context, c *ruddr.Client, id ruddr.Identifier) (any, error) {
			return c.ExpenseItem(ctx, id)
		},
		list: func(ctx context.Context, c *ruddr.Client, f *listFlags) (any, error) {
			var filter ruddr.ExpenseItemFilter
			var err error
			if filter.ListOptions, err = f.page(); err != nil {
				return nil, err
			}
			if filter.ExpenseReportID, err = optionalID(f.expenseReport); err != nil {
				return nil, err
			}
			return c.ExpenseItems(ctx, filter)
		},
	},
}

func lookupResource(name string) (resource, error) {
	for _, r := range resources {
		if strings.EqualFold(r.name, name) || stringutils.ContainsStringsCI(r.aliases, name) {
			return r, nil
		}
	}
	return resource{}, fmt.Errorf("unknown resource %q (valid: %s)", name, strings.Join(resourceNames(), ", "))
}

func resourceNames() []string {
	names := make([]string, 0, len(resources))
	for _, r := range resources {
		names = append(names, r.name)
	}
	sort.Strings(names)
	return names
}

func (f *listFlags) page() (ruddr.ListOptions, error) {
	after, err := optionalID(f.startingAfter)
	if err != nil {
		return ruddr.ListOptions{}, err
	}
	return ruddr.ListOptions{Limit: f.limit, StartingAfter: after}, nil
}

func optionalID(s string) (ruddr.Identifier, error) {
	if s == "" {
		return ruddr.Identifier{}, nil
	}
	return ruddr.ParseIdentifier(s)
}

func optionalDate(s string) (ruddr.Date, error) {
	if s == "" {
		return ruddr.Date{}, nil
	}
	return ruddr.ParseDate(s)
}
