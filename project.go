package ruddr

import "context"

const projectsEndpoint = "projects"

// ProjectStatus is the delivery state of a project.
type ProjectStatus string

const (
	ProjectStatusTentative  ProjectStatus = "tentative"
	ProjectStatusNotStarted ProjectStatus = "not_started"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusPaused     ProjectStatus = "paused"
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusCancelled  ProjectStatus = "cancelled"
)

// BillingType is how a project is invoiced.
type BillingType string

const (
	BillingTypeTimeAndMaterials BillingType = "time_and_materials"
	BillingTypeFixed            BillingType = "fixed"
	BillingTypeFixedRecurring   BillingType = "fixed_recurring"
	BillingTypeNonBillable      BillingType = "non_billable"
)

// RevenueRecognitionMethod is how fixed-fee revenue is recognized.
type RevenueRecognitionMethod string

const (
	RevenueRecognitionInvoiced RevenueRecognitionMethod = "invoiced"
	RevenueRecognitionManual   RevenueRecognitionMethod = "manual"
)

// BudgetMode is the level of detail of a project budget.
type BudgetMode string

const (
	BudgetModeSummary    BudgetMode = "summary"
	BudgetModeDetailed   BudgetMode = "detailed"
	BudgetModeAggregated BudgetMode = "aggregated"
)

// Project is a client engagement.
type Project struct {
	ID                       Identifier               `json:"id"`
	Key                      Slug                     `json:"key"`
	Name                     string                   `json:"name"`
	Notes                    string                   `json:"notes"`
	StatusID                 ProjectStatus            `json:"statusId"`
	Start                    Date                     `json:"start"`
	End                      Date                     `json:"end"`
	Code                     string                   `json:"code"`
	PONumber                 string                   `json:"poNumber"`
	BillingTypeID            BillingType              `json:"billingTypeId"`
	IsBillable               bool                     `json:"isBillable"`
	Currency                 string                   `json:"currency"`
	RevenueRecognitionMethod RevenueRecognitionMethod `json:"revenueRecognitionMethod"`
	FixedFee                 *float64                 `json:"fixedFee"`
	FixedRecurringFee        *float64                 `json:"fixedRecurringFee"`
	FixedRecurringStart      Date                     `json:"fixedRecurringStart"`
	FixedRecurringEnd        Date                     `json:"fixedRecurringEnd"`
	UseRoles                 bool                     `json:"useRoles"`
	UseBudget                bool                     `json:"useBudget"`
	BudgetMode               BudgetMode               `json:"budgetMode"`
	UseMonthlyBudget         bool                     `json:"useMonthlyBudget"`
	MonthlyBudgetMode        BudgetMode               `json:"monthlyBudgetMode"`
	RequiresNotes            bool                     `json:"requiresNotes"`
	RequiresTasks            bool                     `json:"requiresTasks"`
	RecordStatusID           RecordStatus             `json:"recordStatusId"`
	IsProductive             *bool                    `json:"isProductive"`
	CreatedAt                Timestamp                `json:"createdAt"`
	Client                   Ref                      `json:"client"`
	Practice                 *Ref                     `json:"practice"`
	ProjectType              *Ref                     `json:"projectType"`
	Tags                     []Ref                    `json:"tags"`
	Budget                   *ProjectBudget           `json:"budget"`
	MonthlyBudget            *ProjectBudget           `json:"monthlyBudget"`
}

// ProjectBudget is a project's budgeted revenue, expenses and hours.
type ProjectBudget struct {
	Revenue             float64 `json:"revenue"`
	ServicesRevenue     float64 `json:"servicesRevenue"`
	OtherRevenue        float64 `json:"otherRevenue"`
	BillableExpenses    float64 `json:"billableExpenses"`
	NonBillableExpenses float64 `json:"nonBillableExpenses"`
	BillableHours       float64 `json:"billableHours"`
	NonBillableHours    float64 `json:"nonBillableHours"`
}

// ProjectFilter narrows a project listing. NameContains is a
// case-insensitive substring match.
type ProjectFilter struct {
	ListOptions
	ClientID      Identifier
	ProjectTypeID Identifier
	StatusID      ProjectStatus
	NameContains  string
}

// Project fetches a single project.
func (c *Client) Project(ctx context.Context, id Identifier) (*Project, error) {
	return fetchOne[Project](ctx, c, projectsEndpoint, id)
}

// Projects lists one page of projects.
func (c *Client) Projects(ctx context.Context, filter ProjectFilter) (*List[Project], error) {
	q, err := newListQuery(filter.ListOptions)
	if err != nil {
		return nil, err
	}
	q.id("clientId", filter.ClientID)
	q.id("projectTypeId", filter.ProjectTypeID)
	q.set("statusId", string(filter.StatusID))
	q.text("nameContains", filter.NameContains)
	return fetchList[Project](ctx, c, projectsEndpoint, q)
}
