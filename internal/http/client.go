// Package http implements the authenticated HTTP transport for the NocoDB
// API, including response normalization into typed errors.
package http

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	stdhttp "net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/hydrantlabs/nocodb-go/internal/constants"
	"github.com/hydrantlabs/nocodb-go/pkg/nocodb"
)

// TokenHeader is the NocoDB API token header.
const TokenHeader = "xc-token"

const defaultUserAgent = "nocodb-go"

// detailKeys are scanned in order when extracting an error detail from a
// structured response body.
var detailKeys = []string{"detail", "details", "message", "error", "msg"}

// Logger interface for HTTP client logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Client is an HTTP client for the NocoDB API. It is immutable after
// construction and safe for concurrent use.
type Client struct {
	baseURL    string
	token      string
	httpClient *retryablehttp.Client
	userAgent  string
	logger     Logger
	debug      bool
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout overrides the default per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithRetryConfig enables retries for failed requests. The default is zero
// retries: every failure surfaces to the caller on the first attempt.
func WithRetryConfig(maxRetries int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = maxRetries
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithTLSVerification enables TLS certificate verification. Verification is
// off by default to accommodate self-hosted instances with self-signed
// certificates.
func WithTLSVerification(verify bool) Option {
	return func(c *Client) {
		transport, ok := c.httpClient.HTTPClient.Transport.(*stdhttp.Transport)
		if ok && transport.TLSClientConfig != nil {
			transport.TLSClientConfig.InsecureSkipVerify = !verify
		}
	}
}

// NewClient creates a new NocoDB HTTP client. A single trailing slash is
// stripped from baseURL so that "https://h/" and "https://h" build identical
// request URLs.
func NewClient(baseURL, token string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	// Hand the final response back instead of a "giving up" error so the
	// normalizer can turn non-2xx statuses into typed API errors.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.HTTPClient.Timeout = constants.DefaultRequestTimeout
	retryClient.HTTPClient.Transport = &stdhttp.Transport{
		//nolint:gosec // insecure by default for self-hosted instances, see WithTLSVerification
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
	}

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		httpClient: retryClient,
		userAgent:  defaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Request represents an HTTP request to the API.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string

	// NoAuth suppresses the default token header. Used by the connection
	// probe, which supplies its own auth header per attempt.
	NoAuth bool
}

// Response represents a successfully received HTTP response.
type Response struct {
	StatusCode int
	Headers    stdhttp.Header
	Body       []byte
}

// Do executes a request. Transport-level failures return a
// *nocodb.ConnectionError; non-2xx responses return the response together
// with a *nocodb.APIError carrying the status and extracted detail.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var bodyReader io.Reader

	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		bodyReader = bytes.NewReader(data)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if !req.NoAuth && c.token != "" {
		httpReq.Header.Set(TokenHeader, c.token)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &nocodb.ConnectionError{Op: req.Method, URL: fullURL, Err: err}
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &nocodb.ConnectionError{Op: req.Method, URL: fullURL, Err: err}
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": httpResp.StatusCode,
			"url":    fullURL,
		})
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return resp, nocodb.NewAPIError(httpResp.StatusCode, ExtractDetail(body))
	}

	return resp, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: stdhttp.MethodGet, Path: path, Query: query})
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: stdhttp.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: stdhttp.MethodPut, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: stdhttp.MethodDelete, Path: path})
}

// ExtractDetail pulls a human-readable detail string out of an error response
// body. If the body is a JSON object the keys detail, details, message,
// error, and msg are scanned in order; the first present value wins,
// stringified if it is not already a string. Otherwise the non-empty body
// text itself is the detail.
func ExtractDetail(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(body, &parsed); err == nil {
		for _, key := range detailKeys {
			value, ok := parsed[key]
			if !ok || value == nil {
				continue
			}

			if s, ok := value.(string); ok {
				return s
			}

			encoded, err := json.Marshal(value)
			if err == nil {
				return string(encoded)
			}
		}
	}

	return strings.TrimSpace(string(body))
}
