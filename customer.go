package ruddr

import "context"

// Customers are called clients by the API; the Go name avoids a clash
// with [Client].
const clientsEndpoint = "clients"

// PaymentTerms is the default due date of a customer's invoices.
type PaymentTerms string

const (
	PaymentTermsDueOnReceipt PaymentTerms = "due_on_receipt"
	PaymentTermsNet10        PaymentTerms = "net_10"
	PaymentTermsNet15        PaymentTerms = "net_15"
	PaymentTermsNet30        PaymentTerms = "net_30"
	PaymentTermsNet45        PaymentTerms = "net_45"
	PaymentTermsNet60        PaymentTerms = "net_60"
	PaymentTermsNet90        PaymentTerms = "net_90"
)

// Customer is a Ruddr client: the organization projects are delivered to.
type Customer struct {
	ID                         Identifier   `json:"id"`
	Key                        Slug         `json:"key"`
	Name                       string       `json:"name"`
	Code                       string       `json:"code"`
	Currency                   string       `json:"currency"`
	Notes                      string       `json:"notes"`
	Emails                     []string     `json:"emails"`
	StreetAddress              string       `json:"streetAddress"`
	UseWorkspaceInvoiceDetails bool         `json:"useWorkspaceInvoiceDetails"`
	PaymentTermsID             PaymentTerms `json:"paymentTermsId"`
	InvoiceNotes               string       `json:"invoiceNotes"`
	IsInternal                 bool         `json:"isInternal"`
	RecordStatusID             RecordStatus `json:"recordStatusId"`
	CreatedAt                  Timestamp    `json:"createdAt"`
	Practice                   *Ref         `json:"practice"`
	Owner                      *Ref         `json:"owner"`
	Tags                       []Ref        `json:"tags"`
}

// CustomerFilter narrows a client listing.
type CustomerFilter struct {
	ListOptions
	Code string
}

// Customer fetches a single client.
func (c *Client) Customer(ctx context.Context, id Identifier) (*Customer, error) {
	return fetchOne[Customer](ctx, c, clientsEndpoint, id)
}

// Customers lists one page of clients.
func (c *Client) Customers(ctx context.Context, filter CustomerFilter) (*List[Customer], error) {
	q, err := newListQuery(filter.ListOptions)
	if err != nil {
		return nil, err
	}
	q.text("code", filter.Code)
	return fetchList[Customer](ctx, c, clientsEndpoint, q)
}
