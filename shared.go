package ruddr

// Ref is a reference to another record by id and display name, as embedded
// in most responses (member, practice, role, task, and so on).
type Ref struct {
	ID   Identifier `json:"id"`
	Name string     `json:"name"`
}

// ProjectRef is a reference to a project together with its client.
type ProjectRef struct {
	ID     Identifier `json:"id"`
	Name   string     `json:"name"`
	Client Ref        `json:"client"`
}

// List is one page of a list endpoint.
type List[T any] struct {
	Results []T  `json:"results"`
	HasMore bool `json:"hasMore"`
}

// Next returns the options for the page after l, and false when l is the
// last page. It does not fetch anything.
func (l *List[T]) Next(opts ListOptions, id func(T) Identifier) (ListOptions, bool) {
	if l == nil || !l.HasMore || len(l.Results) == 0 {
		return opts, false
	}
	opts.StartingAfter = id(l.Results[len(l.Results)-1])
	return opts, true
}

// RecordStatus is the archive state of a project or client.
type RecordStatus string

const (
	RecordStatusActive   RecordStatus = "active"
	RecordStatusArchived RecordStatus = "archived"
)

// ApprovalStatus is the workflow state of time entries and expense items.
type ApprovalStatus string

const (
	ApprovalStatusNotSubmitted    ApprovalStatus = "not_submitted"
	ApprovalStatusPendingApproval ApprovalStatus = "pending_approval"
	ApprovalStatusApproved        ApprovalStatus = "approved"
	ApprovalStatusRejected        ApprovalStatus = "rejected"
)
