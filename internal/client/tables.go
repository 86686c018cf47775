package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hydrantlabs/nocodb-go/internal/constants"
	"github.com/hydrantlabs/nocodb-go/internal/http"
	"github.com/hydrantlabs/nocodb-go/pkg/nocodb"
)

// tableListKeys are the envelope keys observed on table-listing endpoints.
var tableListKeys = []string{"list", "tables", "data"}

// TablesClient implements nocodb.TablesClient.
type TablesClient struct {
	httpClient *http.Client
}

// NewTablesClient creates a new tables client.
func NewTablesClient(httpClient *http.Client) *TablesClient {
	return &TablesClient{
		httpClient: httpClient,
	}
}

// ListByBase implements nocodb.TablesClient.ListByBase.
func (c *TablesClient) ListByBase(ctx context.Context, baseID string) ([]nocodb.Table, error) {
	resp, err := c.httpClient.Get(ctx, constants.MetaBasesPath+"/"+baseID+"/tables", nil)
	if err != nil {
		return nil, fmt.Errorf("listing tables: %w", err)
	}

	items := nocodb.UnwrapList(resp.Body, tableListKeys...)
	tables := make([]nocodb.Table, 0, len(items))

	for _, item := range items {
		var table nocodb.Table

		err = json.Unmarshal(item, &table)
		if err != nil {
			return nil, fmt.Errorf("parsing table: %w", err)
		}

		tables = append(tables, table)
	}

	return tables, nil
}

// Get implements nocodb.TablesClient.Get. Each call issues a fresh request;
// the detailed schema is never cached.
func (c *TablesClient) Get(ctx context.Context, tableID string) (*nocodb.Table, error) {
	resp, err := c.httpClient.Get(ctx, constants.MetaTablesPath+"/"+tableID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting table: %w", err)
	}

	var table nocodb.Table

	err = json.Unmarshal(resp.Body, &table)
	if err != nil {
		return nil, fmt.Errorf("parsing table: %w", err)
	}

	return &table, nil
}

// Columns implements nocodb.TablesClient.Columns.
func (c *TablesClient) Columns(ctx context.Context, tableID string) ([]nocodb.Column, error) {
	table, err := c.Get(ctx, tableID)
	if err != nil {
		return nil, err
	}

	if table.Columns == nil {
		return []nocodb.Column{}, nil
	}

	return table.Columns, nil
}
