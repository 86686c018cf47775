// Package nococlient provides the primary entry point for constructing a
// NocoDB API client that implements the nocodb.Client interface.
//
// It layers configuration and HTTP transport on top of the resource
// interfaces and types defined in the nocodb package. Most applications
// should import nococlient to build a client, then use the returned
// nocodb.Client to access the Bases() and Tables() resource clients.
//
// Quick start
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
//
//	  cli, err := nococlient.NewWithToken("https://app.nocodb.example", "xc-token-value")
//	  if err != nil { log.Fatal(err) }
//
//	  bases, err := cli.Bases().List(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = bases
//	}
//
// For session-style usage, WithSession builds a client, installs it in a
// derived context for the duration of the callback, and lets accessors be
// resolved through nocodb.FromContext, nocodb.BasesFrom, and
// nocodb.TablesFrom.
package nococlient
