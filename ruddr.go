// Package ruddr provides a read-only Go client for the Ruddr workspace API.
//
// Ruddr is a professional services automation platform. This package reads
// workspace members, projects, clients, time entries, allocations, project
// roles, cost and utilization target periods, and expense reports and items.
//
// # Installation
//
// To install the SDK, use go get:
//
//	go get github.com/tomblancdev/ruddr-go
//
// # Quick Start
//
// Create a client and list members:
//
//	package main
//
//	import (
//	    "context"
//	    "fmt"
//	    "log"
//
//	    "github.com/tomblancdev/ruddr-go"
//	)
//
//	func main() {
//	    // Token from RUDDR_TOKEN
//	    client, err := ruddr.NewFromEnv()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    members, err := client.Members(context.Background(), ruddr.ListOptions{})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    for _, m := range members.Results {
//	        fmt.Println(m.ID, m.Name)
//	    }
//	}
//
// # Client Configuration
//
// The client can be configured using functional options:
//
//	client, err := ruddr.New(
//	    ruddr.WithToken(token),
//	    ruddr.WithTimeout(10*time.Second),
//	    ruddr.WithLogger(logger),
//	)
//
// [New] never reads the process environment. Use [NewFromEnv], or pass
// [os.LookupEnv] to [WithTokenLookup], to fall back to RUDDR_TOKEN.
//
// # Scalars
//
// Ids, dates, timestamps and slugs are validated types: [Identifier],
// [Date], [Timestamp] and [Slug]. Build them with [ParseIdentifier] and
// friends; decoding a response validates them too.
//
// # Error Handling
//
// Every error is an [*Error] whose [Kind] says which stage failed:
//
//	project, err := client.Project(ctx, id)
//	switch {
//	case errors.Is(err, ruddr.ErrNotFound):
//	    // Handle not found
//	case errors.Is(err, ruddr.ErrTransport):
//	    // Network failure or other non-2xx status; retry is up to you
//	case errors.Is(err, ruddr.ErrDecode):
//	    // Response did not match the record type
//	}
//
// # Low-level Access
//
// [Read] and [Get] fetch any endpoint into any type:
//
//	raw, err := ruddr.Read[map[string]any](ctx, client, "members", "limit=5")
//
// # Thread Safety
//
// The [Client] is safe for concurrent use by multiple goroutines.
// Each method call is independent and does not share state.
package ruddr
