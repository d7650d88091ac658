package ruddr

import "context"

const membersEndpoint = "members"

// InvitationStatus tracks a member's workspace invitation.
type InvitationStatus string

const (
	InvitationStatusNotInvited InvitationStatus = "not_invited"
	InvitationStatusInvited    InvitationStatus = "invited"
	InvitationStatusAccepted   InvitationStatus = "accepted"
)

// EmploymentType is how a member is engaged.
type EmploymentType string

const (
	EmploymentTypeEmployee   EmploymentType = "employee"
	EmploymentTypeContractor EmploymentType = "contractor"
	EmploymentTypeOther      EmploymentType = "other"
)

// CostMethod is how a member's cost is computed.
type CostMethod string

const (
	CostMethodHourly CostMethod = "hourly"
	CostMethodFixed  CostMethod = "fixed"
)

// TimeOffApprovalMode selects who approves a member's time off.
type TimeOffApprovalMode string

const (
	TimeOffApprovalModeAuto    TimeOffApprovalMode = "auto"
	TimeOffApprovalModeManager TimeOffApprovalMode = "manager"
	TimeOffApprovalModeMember  TimeOffApprovalMode = "member"
)

// Member is a person in the workspace.
type Member struct {
	ID                                         Identifier           `json:"id"`
	Name                                       string               `json:"name"`
	Email                                      string               `json:"email"`
	IsActive                                   bool                 `json:"isActive"`
	IsBillable                                 bool                 `json:"isBillable"`
	LoginEnabled                               bool                 `json:"loginEnabled"`
	InvitationStatusID                         InvitationStatus     `json:"invitationStatusId"`
	EmploymentTypeID                           EmploymentType       `json:"employmentTypeId"`
	CostMethodID                               CostMethod           `json:"costMethodId"`
	DefaultRate                                *float64             `json:"defaultRate"`
	DefaultRateCurrency                        string               `json:"defaultRateCurrency"`
	ActiveStartDate                            Date                 `json:"activeStartDate"`
	ActiveEndDate                              Date                 `json:"activeEndDate"`
	TimeOffAllowed                             bool                 `json:"timeOffAllowed"`
	TimeOffApprovalMode                        TimeOffApprovalMode  `json:"timeOffApprovalMode"`
	ReceiveMissingTimeReminders                bool                 `json:"receiveMissingTimeReminders"`
	UnsubmittedTimesheetReminders              bool                 `json:"unsubmittedTimesheetReminders"`
	ForbidTimesheetSubmissionWhenBelowCapacity bool                 `json:"forbidTimesheetSubmissionWhenBelowCapacity"`
	InternalID                                 string               `json:"internalId"`
	InternalNotes                              string               `json:"internalNotes"`
	CreatedAt                                  Timestamp            `json:"createdAt"`
	SecurityRole                               *Ref                 `json:"securityRole"`
	JobTitle                                   *Ref                 `json:"jobTitle"`
	Discipline                                 *Ref                 `json:"discipline"`
	Practice                                   *Ref                 `json:"practice"`
	Location                                   *Ref                 `json:"location"`
	Manager                                    *Ref                 `json:"manager"`
	TimeOffApprover                            *Ref                 `json:"timeOffApprover"`
	HolidaySchedule                            *Ref                 `json:"holidaySchedule"`
	Tags                                       []Ref                `json:"tags"`
	Skills                                     []Ref                `json:"skills"`
	AvailabilityPeriods                        []AvailabilityPeriod `json:"availabilityPeriods"`
	CostPeriods                                []Cost               `json:"costPeriods"`
	UtilizationTargetPeriods                   []Utilization        `json:"utilizationTargetPeriods"`
}

// AvailabilityPeriod is a span during which a member works the given hours
// on each weekday, Sunday first.
type AvailabilityPeriod struct {
	ID          Identifier `json:"id"`
	Start       Date       `json:"start"`
	End         Date       `json:"end"`
	HoursPerDay []float64  `json:"hoursPerDay"`
}

// Member fetches a single member.
func (c *Client) Member(ctx context.Context, id Identifier) (*Member, error) {
	return fetchOne[Member](ctx, c, membersEndpoint, id)
}

// Members lists one page of workspace members.
func (c *Client) Members(ctx context.Context, opts ListOptions) (*List[Member], error) {
	q, err := newListQuery(opts)
	if err != nil {
		return nil, err
	}
	return fetchList[Member](ctx, c, membersEndpoint, q)
}
