package ruddr

import "context"

const timeEntriesEndpoint = "time-entries"

// TimeEntryType distinguishes project work from time off.
type TimeEntryType string

const (
	TimeEntryTypeProjectTime TimeEntryType = "project_time"
	TimeEntryTypeTimeOff     TimeEntryType = "time_off"
)

// TimeEntry is time logged by a member on one day.
type TimeEntry struct {
	ID             Identifier     `json:"id"`
	TypeID         TimeEntryType  `json:"typeId"`
	StatusID       ApprovalStatus `json:"statusId"`
	Date           Date           `json:"date"`
	Minutes        int64          `json:"minutes"`
	TimerStartedAt Timestamp      `json:"timerStartedAt"`
	Notes          string         `json:"notes"`
	IsBillable     bool           `json:"isBillable"`
	Invoiced       bool           `json:"invoiced"`
	CreatedAt      Timestamp      `json:"createdAt"`
	Member         Ref            `json:"member"`
	Project        *ProjectRef    `json:"project"`
	Role           *Ref           `json:"role"`
	Task           *Ref           `json:"task"`
	TimeOffType    *Ref           `json:"timeOffType"`
	Invoice        *InvoiceRef    `json:"invoice"`
}

// InvoiceRef is a reference to the invoice a time entry was billed on.
type InvoiceRef struct {
	ID     Identifier `json:"id"`
	Number string     `json:"number"`
}

// TimeEntryFilter narrows a time entry listing. Date matches one day;
// DateOnAfter and DateOnBefore bound a range, both inclusive.
type TimeEntryFilter struct {
	ListOptions
	MemberID     Identifier
	ProjectID    Identifier
	Date         Date
	DateOnAfter  Date
	DateOnBefore Date
}

// TimeEntry fetches a single time entry.
func (c *Client) TimeEntry(ctx context.Context, id Identifier) (*TimeEntry, error) {
	return fetchOne[TimeEntry](ctx, c, timeEntriesEndpoint, id)
}

// TimeEntries lists one page of time entries.
func (c *Client) TimeEntries(ctx context.Context, filter TimeEntryFilter) (*List[TimeEntry], error) {
	q, err := newListQuery(filter.ListOptions)
	if err != nil {
		return nil, err
	}
	q.id("memberId", filter.MemberID)
	q.id("projectId", filter.ProjectID)
	q.date("date", filter.Date)
	q.date("dateOnAfter", filter.DateOnAfter)
	q.date("dateOnBefore", filter.DateOnBefore)
	return fetchList[TimeEntry](ctx, c, timeEntriesEndpoint, q)
}
