package ruddr

import "context"

const costPeriodsEndpoint = "cost-periods"

// Cost is a member's cost rate over a period.
type Cost struct {
	ID                  Identifier `json:"id"`
	Start               Date       `json:"start"`
	End                 Date       `json:"end"`
	Currency            string     `json:"currency"`
	CostPerHour         float64    `json:"costPerHour"`
	OverheadCostPerHour float64    `json:"overheadCostPerHour"`
	TotalCostPerHour    float64    `json:"totalCostPerHour"`
	IsDefault           bool       `json:"isDefault"`
	CreatedAt           Timestamp  `json:"createdAt"`
}

// CostFilter narrows a cost period listing.
type CostFilter struct {
	ListOptions
	MemberID Identifier
}

// Cost fetches a single cost period.
func (c *Client) Cost(ctx context.Context, id Identifier) (*Cost, error) {
	return fetchOne[Cost](ctx, c, costPeriodsEndpoint, id)
}

// Costs lists one page of cost periods.
func (c *Client) Costs(ctx context.Context, filter CostFilter) (*List[Cost], error) {
	q, err := newListQuery(filter.ListOptions)
	if err != nil {
		return nil, err
	}
	q.id("memberId", filter.MemberID)
	return fetchList[Cost](ctx, c, costPeriodsEndpoint, q)
}
