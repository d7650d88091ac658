package ruddr

import (
	"strings"

	"github.com/go-openapi/validate"
)

// Request is a single GET against the workspace API.
type Request struct {
	url string
}

// URL returns the fully formed request URL.
func (r *Request) URL() string {
	return r.url
}

func (r *Request) String() string {
	return r.url
}

// NewRequest builds a request against [DefaultBaseURL].
//
// The result is <base>/<endpoint> when query is empty and
// <base>/<endpoint>?<query> otherwise. query is a bare key=value&... string;
// leading '?' characters are tolerated and dropped. Its contents are not
// validated. An empty endpoint is a [KindValidation] error.
func NewRequest(endpoint, query string) (*Request, error) {
	return buildRequest(DefaultBaseURL, endpoint, query)
}

// NewRequest builds a request against the client's base URL. See the
// package-level [NewRequest] for the URL rules.
func (c *Client) NewRequest(endpoint, query string) (*Request, error) {
	if c == nil {
		return nil, configError(codeNilClient, "client is nil", nil)
	}
	return buildRequest(c.baseURL, endpoint, query)
}

func buildRequest(base, endpoint, query string) (*Request, error) {
	if verr := validate.RequiredString("endpoint", "path", endpoint); verr != nil {
		return nil, validationError(codeEmptyEndpoint, "endpoint must not be empty", verr)
	}

	var b strings.Builder
	b.Grow(len(base) + len(endpoint) + len(query) + 2)
	b.WriteString(base)
	b.WriteByte('/')
	b.WriteString(endpoint)

	query = strings.TrimLeft(query, "?")
	if query != "" {
		b.WriteByte('?')
		b.WriteString(query)
	}
	return &Request{url: b.String()}, nil
}
