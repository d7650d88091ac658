package ruddr

import "context"

const utilizationEndpoint = "utilization-target-periods"

// Utilization is a member's billable utilization target over a period.
type Utilization struct {
	ID               Identifier `json:"id"`
	Start            Date       `json:"start"`
	End              Date       `json:"end"`
	TargetPercentage float64    `json:"targetPercentage"`
	IsDefault        bool       `json:"isDefault"`
	CreatedAt        Timestamp  `json:"createdAt"`
}

// UtilizationFilter narrows a utilization target listing.
type UtilizationFilter struct {
	ListOptions
	MemberID Identifier
}

// Utilization fetches a single utilization target period.
func (c *Client) Utilization(ctx context.Context, id Identifier) (*Utilization, error) {
	return fetchOne[Utilization](ctx, c, utilizationEndpoint, id)
}

// Utilizations lists one page of utilization target periods.
func (c *Client) Utilizations(ctx context.Context, filter UtilizationFilter) (*List[Utilization], error) {
	q, err := newListQuery(filter.ListOptions)
	if err != nil {
		return nil, err
	}
	q.id("memberId", filter.MemberID)
	return fetchList[Utilization](ctx, c, utilizationEndpoint, q)
}
