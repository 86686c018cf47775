// Package client implements the nocodb.Client interface over the internal
// HTTP transport.
package client

import (
	"context"

	"github.com/hydrantlabs/nocodb-go/internal/constants"
	"github.com/hydrantlabs/nocodb-go/internal/http"
	"github.com/hydrantlabs/nocodb-go/pkg/nocodb"
)

// Client implements the nocodb.Client interface.
type Client struct {
	httpClient *http.Client
	token      string

	bases  *BasesClient
	tables *TablesClient
}

// New creates a new NocoDB API client from a validated configuration.
func New(config *nocodb.Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	httpClient := http.NewClient(config.NormalizedBaseURL(), config.APIToken, httpOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		token:      config.APIToken,
	}

	client.tables = NewTablesClient(httpClient)
	client.bases = NewBasesClient(httpClient, client.tables)

	return client, nil
}

// httpOptions builds transport options from config.
func httpOptions(config *nocodb.Config) []http.Option {
	var opts []http.Option

	if config.Timeout > 0 {
		opts = append(opts, http.WithTimeout(config.Timeout))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if config.TLSVerify {
		opts = append(opts, http.WithTLSVerification(true))
	}

	if config.RetryMax > 0 {
		waitMin := config.RetryWaitMin
		if waitMin <= 0 {
			waitMin = constants.DefaultRetryWaitMin
		}

		waitMax := config.RetryWaitMax
		if waitMax <= 0 {
			waitMax = constants.DefaultRetryWaitMax
		}

		opts = append(opts, http.WithRetryConfig(config.RetryMax, waitMin, waitMax))
	}

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	return opts
}

// Bases implements nocodb.Client.Bases.
func (c *Client) Bases() nocodb.BasesClient {
	return c.bases
}

// Tables implements nocodb.Client.Tables.
func (c *Client) Tables() nocodb.TablesClient {
	return c.tables
}

// VerifyConnection implements nocodb.Client.VerifyConnection.
func (c *Client) VerifyConnection(ctx context.Context) *nocodb.ConnectionCheck {
	return verifyConnection(ctx, c.httpClient, c.token)
}
