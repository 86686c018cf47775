// Package nocodb provides types, interfaces, and helpers for working with the
// NocoDB v2 meta API.
//
// # Overview
//
// The nocodb package defines the resource views (Base, Table, Column), the
// typed error hierarchy, and the interfaces for the resource-oriented clients
// (BasesClient, TablesClient). A concrete implementation of these clients is
// provided by the nococlient package, which wires configuration and transport.
// Most consumers should import nococlient to construct a client and then
// interact with the resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/hydrantlabs/nocodb-go/pkg/nocodb"
//	  "github.com/hydrantlabs/nocodb-go/pkg/nococlient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := nococlient.New(&nocodb.Config{
//	    BaseURL:  "https://app.nocodb.example",
//	    APIToken: "xc-token-value",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  bases, err := cli.Bases().List(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = bases
//	}
//
// # Sessions
//
// A client can be carried implicitly through a context.Context. Install one
// with NewContext (or let nococlient.WithSession do it for the duration of a
// function), and resolve it with FromContext, BasesFrom, or TablesFrom.
// Because the client rides on the context chain, nested sessions shadow the
// outer one and the outer context keeps resolving the outer client; separate
// goroutines with separate contexts never observe each other's session.
//
//	err := nococlient.WithSession(ctx, cfg, func(ctx context.Context) error {
//	  bases, err := nocodb.BasesFrom(ctx)
//	  if err != nil { return err }
//	  all, err := bases.List(ctx)
//	  if err != nil { return err }
//	  _ = all
//	  return nil
//	})
//
// # Errors
//
// All failures surface as one of four kinds: ErrNoSession (no client in the
// context), *ConfigError (missing BaseURL or APIToken), *ConnectionError
// (transport-level failure, wraps the underlying error), and *APIError
// (non-success upstream response, carries the HTTP status and a detail string
// extracted from the response body). Use the Is* predicates or errors.As to
// branch on them.
//
// The library never retries a request. Callers that want retry behavior can
// wrap calls themselves; see examples/schema for one way to do it.
package nocodb
