package ruddr

import (
	"context"
	"net/url"
	"strings"

	"github.com/go-openapi/swag/conv"
	"github.com/go-openapi/validate"
)

// Page size bounds accepted by list endpoints.
const (
	DefaultLimit = 100
	MaxLimit     = 100
)

// ListOptions selects a single page of a list endpoint.
type ListOptions struct {
	// Limit is the page size, 1 to [MaxLimit]. Zero means [DefaultLimit].
	Limit int

	// StartingAfter is the cursor: the id of the last record of the
	// previous page. Zero means the first page.
	StartingAfter Identifier
}

// query assembles a key=value&... string in insertion order. Scalar values
// are written as is; free text is escaped.
type query struct {
	parts []string
}

func (q *query) set(key, value string) {
	if value == "" {
		return
	}
	q.parts = append(q.parts, key+"="+value)
}

func (q *query) text(key, value string) {
	q.set(key, url.QueryEscape(value))
}

func (q *query) int(key string, value int64) {
	q.set(key, conv.FormatInteger(value))
}

func (q *query) id(key string, id Identifier) {
	q.set(key, id.String())
}

func (q *query) date(key string, d Date) {
	q.set(key, d.String())
}

func (q *query) String() string {
	return strings.Join(q.parts, "&")
}

// page writes the paging keys shared by every list endpoint.
func (q *query) page(opts ListOptions) error {
	limit := opts.Limit
	if limit == 0 {
		limit = DefaultLimit
	}
	if verr := validate.MinimumInt("limit", "query", int64(limit), 1, false); verr != nil {
		return validationError(codeInvalidInput, "invalid limit", verr)
	}
	if verr := validate.MaximumInt("limit", "query", int64(limit), MaxLimit, false); verr != nil {
		return validationError(codeInvalidInput, "invalid limit", verr)
	}
	q.int("limit", int64(limit))
	q.id("startingAfter", opts.StartingAfter)
	return nil
}

// newListQuery starts a query with the paging keys of opts.
func newListQuery(opts ListOptions) (*query, error) {
	q := &query{}
	if err := q.page(opts); err != nil {
		return nil, err
	}
	return q, nil
}

// fetchOne reads endpoint/id into a T.
func fetchOne[T any](ctx context.Context, c *Client, endpoint string, id Identifier) (*T, error) {
	if id.IsZero() {
		return nil, validationError(codeInvalidInput, endpoint+": identifier is required", nil)
	}
	out, err := Read[T](ctx, c, endpoint+"/"+id.String(), "")
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// fetchList reads one page of endpoint filtered by q.
func fetchList[T any](ctx context.Context, c *Client, endpoint string, q *query) (*List[T], error) {
	out, err := Read[List[T]](ctx, c, endpoint, q.String())
	if err != nil {
		return nil, err
	}
	return &out, nil
}
