package ruddr

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-openapi/runtime"
)

// maxErrorBodySize limits how much of an error response body is copied into
// the error message.
const maxErrorBodySize = 4096

// JSONConsumer decodes exactly one JSON document, with numbers kept as
// [json.Number] like runtime.JSONConsumer. Anything but whitespace after the
// document is an error.
func JSONConsumer() runtime.Consumer {
	return runtime.ConsumerFunc(func(r io.Reader, v any) error {
		if r == nil {
			return errors.New("JSONConsumer requires a reader")
		}
		dec := json.NewDecoder(r)
		dec.UseNumber()
		if err := dec.Decode(v); err != nil {
			return err
		}
		var extra json.RawMessage
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return errors.New("unexpected data after JSON document")
		}
		return nil
	})
}

// Get executes req with c and decodes a success response body into T.
//
// A non-2xx status is a [KindTransport] error carrying the status code; the
// body is never decoded in that case. A success body that does not match T
// is a [KindDecode] error. Nothing is retried.
//
// Example:
//
//	req, _ := client.NewRequest("members", "limit=10")
//	page, err := ruddr.Get[ruddr.List[ruddr.Member]](ctx, client, req)
//	if errors.Is(err, ruddr.ErrUnauthorized) {
//	    log.Fatal("check RUDDR_TOKEN")
//	}
func Get[T any](ctx context.Context, c *Client, req *Request) (T, error) {
	var out T
	if c == nil {
		return out, configError(codeNilClient, "client is nil", nil)
	}
	if req == nil || req.url == "" {
		return out, validationError(codeEmptyEndpoint, "request is empty", nil)
	}

	start := time.Now()
	c.logger.Debug().
		Str("method", http.MethodGet).
		Str("url", req.url).
		Msg("ruddr request")

	resp, err := c.rc.R().SetContext(ctx).Get(req.url)
	if err != nil {
		c.logger.Debug().
			Err(err).
			Str("url", req.url).
			Dur("elapsed", time.Since(start)).
			Msg("ruddr request failed")
		return out, newError(KindTransport, codeRequestFailed, "request failed", 0, err)
	}

	status := resp.StatusCode()
	c.logger.Debug().
		Str("method", http.MethodGet).
		Str("url", req.url).
		Int("status", status).
		Dur("elapsed", time.Since(start)).
		Msg("ruddr response")

	if !resp.IsSuccess() {
		return out, statusError(status, resp.Body())
	}

	if err := c.decoder.Consume(bytes.NewReader(resp.Body()), &out); err != nil {
		var zero T
		return zero, newError(KindDecode, codeDecodeFailed, fmt.Sprintf("cannot decode response from %s as %T", req.url, zero), 0, err)
	}
	return out, nil
}

// Read builds a request for endpoint and query on c's base URL and runs
// [Get] with it.
func Read[T any](ctx context.Context, c *Client, endpoint, query string) (T, error) {
	req, err := c.NewRequest(endpoint, query)
	if err != nil {
		var zero T
		return zero, err
	}
	return Get[T](ctx, c, req)
}

// statusError turns a non-success response into a transport error. The
// body excerpt goes into the message as is.
func statusError(status int, body []byte) *Error {
	if len(body) > maxErrorBodySize {
		body = body[:maxErrorBodySize]
	}
	msg := fmt.Sprintf("unexpected status %d %s", status, http.StatusText(status))
	if excerpt := strings.TrimSpace(string(body)); excerpt != "" {
		msg += ": " + excerpt
	}
	return newError(KindTransport, statusCode(status), msg, status, nil)
}

func statusCode(status int) string {
	switch status {
	case ErrUnauthorized.Status:
		return ErrUnauthorized.Code
	case ErrForbidden.Status:
		return ErrForbidden.Code
	case ErrNotFound.Status:
		return ErrNotFound.Code
	case ErrRateLimited.Status:
		return ErrRateLimited.Code
	case ErrInternal.Status:
		return ErrInternal.Code
	default:
		return codeHTTPStatus
	}
}
