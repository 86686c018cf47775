package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hydrantlabs/nocodb-go/internal/constants"
	"github.com/hydrantlabs/nocodb-go/internal/http"
	"github.com/hydrantlabs/nocodb-go/pkg/nocodb"
)

// baseListKeys are the envelope keys observed on base-listing endpoints.
var baseListKeys = []string{"list", "bases", "data"}

// BasesClient implements nocodb.BasesClient.
type BasesClient struct {
	httpClient *http.Client
	tables     *TablesClient
}

// NewBasesClient creates a new bases client. The tables client is needed for
// the schema fan-out.
func NewBasesClient(httpClient *http.Client, tables *TablesClient) *BasesClient {
	return &BasesClient{
		httpClient: httpClient,
		tables:     tables,
	}
}

// List implements nocodb.BasesClient.List.
func (c *BasesClient) List(ctx context.Context) ([]nocodb.Base, error) {
	return c.list(ctx, constants.MetaBasesPath)
}

// ListWorkspace implements nocodb.BasesClient.ListWorkspace.
func (c *BasesClient) ListWorkspace(ctx context.Context, workspaceID string) ([]nocodb.Base, error) {
	return c.list(ctx, constants.WorkspacesPath+"/"+workspaceID+"/bases")
}

func (c *BasesClient) list(ctx context.Context, path string) ([]nocodb.Base, error) {
	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing bases: %w", err)
	}

	items := nocodb.UnwrapList(resp.Body, baseListKeys...)
	bases := make([]nocodb.Base, 0, len(items))

	for _, item := range items {
		var base nocodb.Base

		err = json.Unmarshal(item, &base)
		if err != nil {
			return nil, fmt.Errorf("parsing base: %w", err)
		}

		bases = append(bases, base)
	}

	return bases, nil
}

// Get implements nocodb.BasesClient.Get.
func (c *BasesClient) Get(ctx context.Context, baseID string) (*nocodb.Base, error) {
	resp, err := c.httpClient.Get(ctx, constants.MetaBasesPath+"/"+baseID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting base: %w", err)
	}

	var base nocodb.Base

	err = json.Unmarshal(resp.Body, &base)
	if err != nil {
		return nil, fmt.Errorf("parsing base: %w", err)
	}

	return &base, nil
}

// Schema implements nocodb.BasesClient.Schema. The per-table fetches are
// sequential; a base with N tables costs 2+N requests.
func (c *BasesClient) Schema(ctx context.Context, baseID string) (*nocodb.BaseSchema, error) {
	base, err := c.Get(ctx, baseID)
	if err != nil {
		return nil, err
	}

	tables, err := c.tables.ListByBase(ctx, baseID)
	if err != nil {
		return nil, err
	}

	detailed := make([]nocodb.Table, 0, len(tables))

	for _, table := range tables {
		full, err := c.tables.Get(ctx, table.ID)
		if err != nil {
			return nil, err
		}

		detailed = append(detailed, *full)
	}

	return &nocodb.BaseSchema{Base: *base, Tables: detailed}, nil
}
