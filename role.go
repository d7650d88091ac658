package ruddr

import "context"

const projectRolesEndpoint = "project-roles"

// Role is a billable role on a project.
type Role struct {
	ID            Identifier  `json:"id"`
	Name          string      `json:"name"`
	IsActive      bool        `json:"isActive"`
	IsBillable    bool        `json:"isBillable"`
	Rate          *float64    `json:"rate"`
	CreatedAt     Timestamp   `json:"createdAt"`
	Project       ProjectRef  `json:"project"`
	Discipline    *Ref        `json:"discipline"`
	Budget        *RoleBudget `json:"budget"`
	MonthlyBudget *RoleBudget `json:"monthlyBudget"`
}

// RoleBudget is the hours budgeted for a role.
type RoleBudget struct {
	BillableHours    *float64 `json:"billableHours"`
	NonBillableHours *float64 `json:"nonBillableHours"`
}

// RoleFilter narrows a project role listing.
type RoleFilter struct {
	ListOptions
	ProjectID Identifier
}

// Role fetches a single project role.
func (c *Client) Role(ctx context.Context, id Identifier) (*Role, error) {
	return fetchOne[Role](ctx, c, projectRolesEndpoint, id)
}

// Roles lists one page of project roles.
func (c *Client) Roles(ctx context.Context, filter RoleFilter) (*List[Role], error) {
	q, err := newListQuery(filter.ListOptions)
	if err != nil {
		return nil, err
	}
	q.id("projectId", filter.ProjectID)
	return fetchList[Role](ctx, c, projectRolesEndpoint, q)
}
