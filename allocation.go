package ruddr

import "context"

const allocationsEndpoint = "allocations"

// ResourceType is who an allocation books.
type ResourceType string

const (
	ResourceTypeMember      ResourceType = "member"
	ResourceTypePlaceholder ResourceType = "placeholder"
)

// AssignmentType is what an allocation books time against.
type AssignmentType string

const (
	AssignmentTypeProject AssignmentType = "project"
	AssignmentTypeTimeOff AssignmentType = "time_off"
)

// AllocationUnit is the granularity the allocated hours are expressed in.
type AllocationUnit string

const (
	AllocationUnitDay   AllocationUnit = "day"
	AllocationUnitWeek  AllocationUnit = "week"
	AllocationUnitMonth AllocationUnit = "month"
)

// AllocationEntity is the record type backing an allocation.
type AllocationEntity string

const (
	AllocationEntityAllocation AllocationEntity = "allocation"
	AllocationEntityTimeEntry  AllocationEntity = "time_entry"
	AllocationEntityHoliday    AllocationEntity = "holiday"
)

// Allocation books a member or placeholder over a date range.
type Allocation struct {
	ID               Identifier       `json:"id"`
	ResourceTypeID   ResourceType     `json:"resourceTypeId"`
	AssignmentTypeID AssignmentType   `json:"assignmentTypeId"`
	Start            Date             `json:"start"`
	End              Date             `json:"end"`
	Unit             AllocationUnit   `json:"unit"`
	HoursPerDay      *float64         `json:"hoursPerDay"`
	HoursPerWeek     *float64         `json:"hoursPerWeek"`
	HoursPerMonth    *float64         `json:"hoursPerMonth"`
	TotalHours       *float64         `json:"totalHours"`
	IsBillable       bool             `json:"isBillable"`
	Notes            string           `json:"notes"`
	ReadOnly         bool             `json:"readOnly"`
	Entity           AllocationEntity `json:"entity"`
	CreatedAt        Timestamp        `json:"createdAt"`
	Member           *Ref             `json:"member"`
	Placeholder      *Ref             `json:"placeholder"`
	Project          *ProjectRef      `json:"project"`
	Role             *Ref             `json:"role"`
	Task             *Ref             `json:"task"`
	TimeOffType      *Ref             `json:"timeOffType"`
}

// AllocationFilter narrows an allocation listing. StartOnBefore and
// EndOnAfter select allocations overlapping a window.
type AllocationFilter struct {
	ListOptions
	AssignmentTypeID AssignmentType
	MemberID         Identifier
	StartOnBefore    Date
	EndOnAfter       Date
}

// Allocation fetches a single allocation.
func (c *Client) Allocation(ctx context.Context, id Identifier) (*Allocation, error) {
	return fetchOne[Allocation](ctx, c, allocationsEndpoint, id)
}

// Allocations lists one page of allocations.
func (c *Client) Allocations(ctx context.Context, filter AllocationFilter) (*List[Allocation], error) {
	q, err := newListQuery(filter.ListOptions)
	if err != nil {
		return nil, err
	}
	q.set("assignmentTypeId", string(filter.AssignmentTypeID))
	q.id("memberId", filter.MemberID)
	q.date("startOnBefore", filter.StartOnBefore)
	q.date("endOnAfter", filter.EndOnAfter)
	return fetchList[Allocation](ctx, c, allocationsEndpoint, q)
}
