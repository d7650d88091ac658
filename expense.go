package ruddr

import "context"

const (
	expenseReportsEndpoint = "expense-reports"
	expenseItemsEndpoint   = "expense-items"
)

// ExpenseReport groups a member's expense items.
type ExpenseReport struct {
	ID        Identifier `json:"id"`
	Number    int64      `json:"number"`
	Title     string     `json:"title"`
	Notes     string     `json:"notes"`
	Date      Date       `json:"date"`
	CreatedAt Timestamp  `json:"createdAt"`
	Member    Ref        `json:"member"`
}

// ExpenseItem is a single expense on a report.
type ExpenseItem struct {
	ID              Identifier       `json:"id"`
	StatusID        ApprovalStatus   `json:"statusId"`
	Vendor          string           `json:"vendor"`
	Notes           string           `json:"notes"`
	Date            Date             `json:"date"`
	Currency        string           `json:"currency"`
	Amount          float64          `json:"amount"`
	UnitCount       *float64         `json:"unitCount"`
	UnitAmount      *float64         `json:"unitAmount"`
	IsReimbursable  bool             `json:"isReimbursable"`
	IsBillable      bool             `json:"isBillable"`
	Invoiced        bool             `json:"invoiced"`
	CreatedAt       Timestamp        `json:"createdAt"`
	ExpenseReport   ExpenseReportRef `json:"expenseReport"`
	ExpenseCategory ExpenseCategory  `json:"expenseCategory"`
	Member          Ref              `json:"member"`
	Project         *ProjectRef      `json:"project"`
}

// ExpenseReportRef is a reference to the report an item belongs to.
type ExpenseReportRef struct {
	ID    Identifier `json:"id"`
	Title string     `json:"title"`
}

// ExpenseCategory classifies an expense item. UnitName is set for
// unit-priced categories such as mileage.
type ExpenseCategory struct {
	ID       Identifier `json:"id"`
	Name     string     `json:"name"`
	UnitName string     `json:"unitName"`
}

// ExpenseItemFilter narrows an expense item listing.
type ExpenseItemFilter struct {
	ListOptions
	ExpenseReportID Identifier
}

// ExpenseReport fetches a single expense report.
func (c *Client) ExpenseReport(ctx context.Context, id Identifier) (*ExpenseReport, error) {
	return fetchOne[ExpenseReport](ctx, c, expenseReportsEndpoint, id)
}

// ExpenseReports lists one page of expense reports.
func (c *Client) ExpenseReports(ctx context.Context, opts ListOptions) (*List[ExpenseReport], error) {
	q, err := newListQuery(opts)
	if err != nil {
		return nil, err
	}
	return fetchList[ExpenseReport](ctx, c, expenseReportsEndpoint, q)
}

// ExpenseItem fetches a single expense item.
func (c *Client) ExpenseItem(ctx context.Context, id Identifier) (*ExpenseItem, error) {
	return fetchOne[ExpenseItem](ctx, c, expenseItemsEndpoint, id)
}

// ExpenseItems lists one page of expense items.
func (c *Client) ExpenseItems(ctx context.Context, filter ExpenseItemFilter) (*List[ExpenseItem], error) {
	q, err := newListQuery(filter.ListOptions)
	if err != nil {
		return nil, err
	}
	q.id("expenseReportId", filter.ExpenseReportID)
	return fetchList[ExpenseItem](ctx, c, expenseItemsEndpoint, q)
}
