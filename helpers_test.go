package ruddr_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tomblancdev/ruddr-go"
)

const (
	testToken    = "test-token"
	testBasePath = "/api/workspace"

	memberID   = "3f3df320-dd95-4a42-8eae-99243fb2ea86"
	projectID  = "095e0780-48bf-472c-8deb-2fc3ebc7d90c"
	customerID = "4cacdf11-71d1-4fbb-90ee-b091803581b0"
)

// mustEncode encodes v as JSON and writes it to w.
// Panics on error - safe in tests since errors indicate test bugs.
func mustEncode(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		panic("failed to encode response: " + err.Error())
	}
}

// mustWrite writes a raw JSON body with the given status.
func mustWrite(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		panic("failed to write response: " + err.Error())
	}
}

// newTestServer starts a server for handler and a client pointed at it
// under the workspace base path.
func newTestServer(t *testing.T, handler http.HandlerFunc, opts ...ruddr.Option) *ruddr.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	opts = append([]ruddr.Option{
		ruddr.WithToken(testToken),
		ruddr.WithBaseURL(server.URL + testBasePath),
	}, opts...)

	client, err := ruddr.New(opts...)
	require.NoError(t, err)
	return client
}

func mustID(t *testing.T, s string) ruddr.Identifier {
	t.Helper()
	id, err := ruddr.ParseIdentifier(s)
	require.NoError(t, err)
	return id
}

func mustDate(t *testing.T, s string) ruddr.Date {
	t.Helper()
	d, err := ruddr.ParseDate(s)
	require.NoError(t, err)
	return d
}

// requireKind asserts err is a *ruddr.Error of the given kind and returns it.
func requireKind(t *testing.T, err error, kind ruddr.Kind) *ruddr.Error {
	t.Helper()
	require.Error(t, err)
	var rerr *ruddr.Error
	require.ErrorAs(t, err, &rerr)
	require.Equal(t, kind, rerr.Kind, "unexpected error: %v", err)
	return rerr
}
