package ruddr

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-openapi/runtime"
	"github.com/rs/zerolog"
)

// Option configures a Client.
//
// Invalid values are ignored and the default is retained.
type Option func(*options)

type options struct {
	token      *string
	lookup     LookupFunc
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     zerolog.Logger
	decoder    runtime.Consumer
	userAgent  string
}

func newOptions() *options {
	return &options{
		baseURL:   DefaultBaseURL,
		timeout:   defaultTimeout,
		logger:    zerolog.Nop(),
		decoder:   JSONConsumer(),
		userAgent: DefaultUserAgent(),
	}
}

// WithToken sets the API token explicitly. It takes precedence over any
// lookup installed with [WithTokenLookup], and is used verbatim even when
// empty.
func WithToken(token string) Option {
	return func(o *options) {
		o.token = &token
	}
}

// WithTokenLookup installs the fallback source consulted for
// [TokenEnvVar] when no explicit token is given. Pass [os.LookupEnv] to read
// the process environment, or use [NewFromEnv].
func WithTokenLookup(lookup LookupFunc) Option {
	return func(o *options) {
		if lookup != nil {
			o.lookup = lookup
		}
	}
}

// WithBaseURL overrides the API base URL. Trailing slashes are dropped.
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
		if baseURL != "" {
			o.baseURL = baseURL
		}
	}
}

// WithTimeout sets the per-request timeout. The request context still
// applies when its deadline is shorter.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithHTTPClient sets the underlying HTTP client, for custom transports or
// proxies. The client is copied: the copy's Timeout is replaced by the
// client timeout, and a cookie jar set on it is kept.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *options) {
		if httpClient != nil {
			o.httpClient = httpClient
		}
	}
}

// WithLogger sets the logger used for request tracing at debug level.
// Headers are never logged.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithDecoder replaces the response body decoder. The default is
// [JSONConsumer].
func WithDecoder(decoder runtime.Consumer) Option {
	return func(o *options) {
		if decoder != nil {
			o.decoder = decoder
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(o *options) {
		if userAgent = strings.TrimSpace(userAgent); userAgent != "" {
			o.userAgent = userAgent
		}
	}
}
