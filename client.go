package ruddr

import (
	"fmt"
	"os"
	"time"

	"github.com/go-openapi/runtime"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"golang.org/x/net/http/httpguts"
)

const (
	// DefaultBaseURL is the Ruddr workspace API root.
	DefaultBaseURL = "https://www.ruddr.io/api/workspace"

	defaultTimeout = 30 * time.Second

	headerAuthorization = "Authorization"
	headerUserAgent     = "User-Agent"
)

// Client is the Ruddr API client.
//
// A Client is immutable once built and safe for concurrent use by multiple
// goroutines.
type Client struct {
	baseURL       string
	rc            *resty.Client
	decoder       runtime.Consumer
	logger        zerolog.Logger
	authorization secret
}

// New creates a new Ruddr client.
//
// The API token comes from [WithToken], or failing that from the lookup
// installed with [WithTokenLookup]. New itself never reads the process
// environment; see [NewFromEnv].
func New(opts ...Option) (*Client, error) {
	o := newOptions()
	for _, opt := range opts {
		opt(o)
	}

	token, err := ResolveToken(o.token, o.lookup)
	if err != nil {
		return nil, err
	}

	authorization := secret("Bearer " + token)
	if !httpguts.ValidHeaderFieldValue(authorization.reveal()) {
		return nil, configError(codeInvalidHeader, "api token is not a valid header value", nil)
	}
	if !httpguts.ValidHeaderFieldValue(o.userAgent) {
		return nil, configError(codeInvalidHeader, fmt.Sprintf("user agent %q is not a valid header value", o.userAgent), nil)
	}

	var rc *resty.Client
	if o.httpClient != nil {
		// resty writes Timeout on the client it wraps; the caller's stays as is.
		hc := *o.httpClient
		rc = resty.NewWithClient(&hc)
	} else {
		// resty.New installs a cookie jar, which would carry state between
		// requests.
		rc = resty.New().SetCookieJar(nil)
	}
	rc.SetTimeout(o.timeout).
		SetRetryCount(0).
		SetLogger(restyLogger{logger: o.logger}).
		SetHeader(runtime.HeaderAccept, runtime.JSONMime).
		SetHeader(headerAuthorization, authorization.reveal()).
		SetHeader(headerUserAgent, o.userAgent)

	c := &Client{
		baseURL:       o.baseURL,
		rc:            rc,
		decoder:       o.decoder,
		logger:        o.logger,
		authorization: authorization,
	}

	c.logger.Debug().
		Str("base_url", c.baseURL).
		Dur("timeout", o.timeout).
		Msg("ruddr client built")

	return c, nil
}

// NewFromEnv creates a client whose token falls back to the RUDDR_TOKEN
// environment variable. Call it once at program start; an explicit
// [WithToken] in opts still wins.
func NewFromEnv(opts ...Option) (*Client, error) {
	return New(append([]Option{WithTokenLookup(os.LookupEnv)}, opts...)...)
}

// BaseURL returns the API root requests are built against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) String() string {
	return fmt.Sprintf("ruddr.Client{baseURL: %q, authorization: %s}", c.baseURL, c.authorization)
}

func (c *Client) GoString() string {
	return c.String()
}
