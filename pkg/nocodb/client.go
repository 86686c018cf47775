package nocodb

import (
	"context"
)

// BasesClient provides read access to bases.
type BasesClient interface {
	// List lists bases from the global meta endpoint.
	List(ctx context.Context) ([]Base, error)

	// ListWorkspace lists bases scoped to one workspace.
	ListWorkspace(ctx context.Context, workspaceID string) ([]Base, error)

	// Get fetches one base by id.
	Get(ctx context.Context, baseID string) (*Base, error)

	// Schema fetches the base, its tables, and each table's detailed schema.
	// Requests are sequential; a base with N tables costs 2+N requests.
	Schema(ctx context.Context, baseID string) (*BaseSchema, error)
}

// TablesClient provides read access to tables.
type TablesClient interface {
	// ListByBase lists the tables under a base.
	ListByBase(ctx context.Context, baseID string) ([]Table, error)

	// Get fetches one table with its detailed schema. Results are never
	// cached; repeated calls repeat the request.
	Get(ctx context.Context, tableID string) (*Table, error)

	// Columns fetches the table schema and projects its columns. Absent
	// columns yield an empty slice, not an error.
	Columns(ctx context.Context, tableID string) ([]Column, error)
}

// Client is the top-level NocoDB API client.
type Client interface {
	Bases() BasesClient
	Tables() TablesClient

	// VerifyConnection probes the instance with several auth header schemes.
	// It reports rather than fails: the result is always non-nil and no error
	// is returned.
	VerifyConnection(ctx context.Context) *ConnectionCheck
}
